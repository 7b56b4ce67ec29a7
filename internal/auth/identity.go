package auth

import "github.com/habitd/habitd/internal/account"

// IdentityState classifies the credential attached to a request.
type IdentityState int

const (
	// IdentityAnonymous means the request carried no credential.
	IdentityAnonymous IdentityState = iota
	// IdentityInvalid means a credential was presented but failed to resolve.
	IdentityInvalid
	// IdentityAuthenticated means the credential resolved to an active account.
	IdentityAuthenticated
)

// Identity is the result of optional credential resolution. Account is
// only populated when State is IdentityAuthenticated.
type Identity struct {
	State   IdentityState
	Account account.Account
}

// Authenticated reports whether the identity carries a resolved account.
func (i Identity) Authenticated() bool {
	return i.State == IdentityAuthenticated
}
