// Package auth implements registration, password login, and the JWT
// access/refresh token lifecycle, plus the HTTP middleware that resolves
// bearer tokens to accounts.
package auth
