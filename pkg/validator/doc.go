// Package validator provides composable, rule-based input validation.
//
// Rules are plain values built by constructor functions; Apply runs them and
// aggregates failures into a ValidationErrors collection that implements
// error and keeps per-field messages for structured API responses.
//
//	err := validator.Apply(
//		validator.ValidEmail("email", req.Email),
//		validator.MinLenString("password", req.Password, 6),
//	)
package validator
