package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown emails and wrong passwords,
	// so a login response never reveals whether an email is registered.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrAccountDisabled is returned when the account exists but is inactive.
	ErrAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidToken is returned when a presented token fails decoding,
	// signature verification, or has expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWrongTokenType is returned when a token is valid but of the wrong
	// kind for the operation, e.g. an access token sent to refresh.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrUnknownAccount is returned when a valid token references an
	// account that no longer exists.
	ErrUnknownAccount = errors.New("user not found")

	// ErrNothingToUpdate is returned for profile patches with no fields set.
	ErrNothingToUpdate = errors.New("no fields to update")
)
