package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/habitd/habitd/handler"
	"github.com/habitd/habitd/internal/account"
)

type ctxKey int

const (
	accountCtxKey ctxKey = iota
	identityCtxKey
)

// RequireAuth rejects requests without a valid bearer access token and
// stores the resolved account in the request context.
func RequireAuth(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				renderAuthError(w, r, handler.ErrUnauthorized.WithMessage("not authenticated"))
				return
			}

			acc, err := svc.Resolve(r.Context(), token)
			if err != nil {
				renderAuthError(w, r, resolveErrorToHTTP(err))
				return
			}

			ctx := context.WithValue(r.Context(), accountCtxKey, acc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the bearer token when present but never rejects
// the request. Handlers read the result via CurrentIdentity.
func OptionalAuth(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := bearerToken(r)
			identity := svc.ResolveOptional(r.Context(), token)
			ctx := context.WithValue(r.Context(), identityCtxKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithAccount returns a context carrying the account, exactly as
// RequireAuth stores it. Useful for handlers invoked outside the
// middleware chain.
func WithAccount(ctx context.Context, acc account.Account) context.Context {
	return context.WithValue(ctx, accountCtxKey, acc)
}

// CurrentAccount returns the account stored by RequireAuth.
func CurrentAccount(ctx context.Context) (account.Account, bool) {
	acc, ok := ctx.Value(accountCtxKey).(account.Account)
	return acc, ok
}

// CurrentIdentity returns the identity stored by OptionalAuth. Requests
// outside the middleware are reported as anonymous.
func CurrentIdentity(ctx context.Context) Identity {
	if identity, ok := ctx.Value(identityCtxKey).(Identity); ok {
		return identity
	}
	return Identity{State: IdentityAnonymous}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func resolveErrorToHTTP(err error) error {
	switch {
	case errors.Is(err, ErrAccountDisabled):
		return handler.ErrForbidden.WithMessage(ErrAccountDisabled.Error())
	case errors.Is(err, ErrUnknownAccount):
		return handler.ErrUnauthorized.WithMessage(ErrUnknownAccount.Error())
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrWrongTokenType):
		return handler.ErrUnauthorized.WithMessage(ErrInvalidToken.Error())
	default:
		return err
	}
}

func renderAuthError(w http.ResponseWriter, r *http.Request, err error) {
	_ = handler.JSONError(err).Render(w, r)
}
