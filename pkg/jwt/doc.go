// Package jwt implements the stateless token codec used for session
// credentials: compact HMAC-SHA256 signed tokens carrying a subject,
// an absolute expiry, and a closed access/refresh type tag.
//
// Tokens are self-contained; there is no server-side revocation list.
// Logout is client-side token discard.
//
// # Usage
//
//	svc, err := jwt.NewFromString(cfg.SigningKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	access, _ := svc.Issue(accountID, jwt.TokenAccess, 30*time.Minute)
//
//	claims, err := svc.Decode(access)
//	switch {
//	case errors.Is(err, jwt.ErrExpired):
//		// ask the client to refresh
//	case err != nil:
//		// reject
//	}
//
// Decode validates signature, algorithm, and expiry. It does not decide
// whether the token type is acceptable for the current operation; that
// check belongs to the caller, which knows whether it requires an access
// or a refresh token.
package jwt
