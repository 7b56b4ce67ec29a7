package jwt

import "errors"

var (
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
	ErrMissingSubject          = errors.New("jwt: missing subject")
	ErrMalformed               = errors.New("jwt: malformed token")
	ErrBadSignature            = errors.New("jwt: invalid signature")
	ErrExpired                 = errors.New("jwt: token is expired")
	ErrInvalidTokenType        = errors.New("jwt: invalid token type")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
