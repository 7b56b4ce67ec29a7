// Package handler provides type-safe HTTP request handling for the JSON API.
//
// Handlers are generic functions from a typed request to a Response; Wrap
// converts them to http.HandlerFunc, running configured binders first and
// routing binding or rendering failures through an error handler. All
// responses share the `{data, meta, error}` envelope; errors carry a stable
// code, a human-readable message, and optional per-field details for
// validation failures.
package handler
