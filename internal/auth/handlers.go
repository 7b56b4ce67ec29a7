package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/habitd/habitd/handler"
	"github.com/habitd/habitd/internal/account"
	"github.com/habitd/habitd/pkg/binder"
	"github.com/habitd/habitd/pkg/validator"
)

// Module bundles the auth HTTP endpoints.
type Module struct {
	svc *Service
}

// NewModule creates the auth HTTP module.
func NewModule(svc *Service) *Module {
	return &Module{svc: svc}
}

// Handle returns the auth sub-router, mounted under /auth.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handler.Wrap(m.register,
		handler.WithBinders[handler.Context, RegisterRequest](binder.JSON()),
	))
	r.Post("/login", handler.Wrap(m.login,
		handler.WithBinders[handler.Context, LoginRequest](binder.JSON()),
	))
	r.Post("/refresh", handler.Wrap(m.refresh,
		handler.WithBinders[handler.Context, RefreshRequest](binder.JSON()),
	))

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(m.svc))
		r.Get("/me", handler.Wrap(m.me))
		r.Patch("/me", handler.Wrap(m.updateMe,
			handler.WithBinders[handler.Context, UpdateProfileRequest](binder.JSON()),
		))
	})

	return r
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validator.Apply(
		validator.RequiredString("email", r.Email),
		validator.ValidEmail("email", r.Email),
		validator.MinLenString("name", r.Name, 1),
		validator.MaxLenString("name", r.Name, 100),
		validator.MinLenString("password", r.Password, 6),
	)
}

func (m *Module) register(ctx handler.Context, req RegisterRequest) handler.Response {
	if err := req.Validate(); err != nil {
		return handler.JSONError(err)
	}

	acc, err := m.svc.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			return handler.JSONError(handler.ErrBadRequest.WithMessage("email already registered"))
		}
		return handler.JSONError(err)
	}
	return handler.JSON(acc, handler.WithJSONStatus(http.StatusCreated))
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validator.Apply(
		validator.RequiredString("email", r.Email),
		validator.ValidEmail("email", r.Email),
		validator.RequiredString("password", r.Password),
	)
}

func (m *Module) login(ctx handler.Context, req LoginRequest) handler.Response {
	if err := req.Validate(); err != nil {
		return handler.JSONError(err)
	}

	pair, err := m.svc.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return handler.JSONError(handler.ErrUnauthorized.WithMessage(ErrInvalidCredentials.Error()))
	case errors.Is(err, ErrAccountDisabled):
		return handler.JSONError(handler.ErrForbidden.WithMessage(ErrAccountDisabled.Error()))
	case err != nil:
		return handler.JSONError(err)
	}
	return handler.JSON(pair)
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (m *Module) refresh(ctx handler.Context, req RefreshRequest) handler.Response {
	if err := validator.Apply(
		validator.RequiredString("refresh_token", req.RefreshToken),
	); err != nil {
		return handler.JSONError(err)
	}

	pair, err := m.svc.Refresh(ctx, req.RefreshToken)
	switch {
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrWrongTokenType):
		return handler.JSONError(handler.ErrUnauthorized.WithMessage("invalid refresh token"))
	case errors.Is(err, ErrUnknownAccount), errors.Is(err, ErrAccountDisabled):
		return handler.JSONError(handler.ErrUnauthorized.WithMessage("user not found or inactive"))
	case err != nil:
		return handler.JSONError(err)
	}
	return handler.JSON(pair)
}

func (m *Module) me(ctx handler.Context, _ struct{}) handler.Response {
	acc, ok := CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	return handler.JSON(acc)
}

// UpdateProfileRequest is the body of PATCH /auth/me. Absent fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r UpdateProfileRequest) Validate() error {
	return validator.Apply(
		validator.When(r.Name != nil, validator.MinLenString("name", deref(r.Name), 1)),
		validator.When(r.Name != nil, validator.MaxLenString("name", deref(r.Name), 100)),
		validator.When(r.Email != nil, validator.ValidEmail("email", deref(r.Email))),
	)
}

func (m *Module) updateMe(ctx handler.Context, req UpdateProfileRequest) handler.Response {
	acc, ok := CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}

	if err := req.Validate(); err != nil {
		return handler.JSONError(err)
	}

	updated, err := m.svc.UpdateProfile(ctx, acc.ID, account.Patch{
		Name:  req.Name,
		Email: req.Email,
	})
	switch {
	case errors.Is(err, ErrNothingToUpdate):
		return handler.JSONError(handler.ErrBadRequest.WithMessage(ErrNothingToUpdate.Error()))
	case errors.Is(err, account.ErrEmailTaken):
		return handler.JSONError(handler.ErrBadRequest.WithMessage("email already in use"))
	case errors.Is(err, account.ErrNotFound):
		return handler.JSONError(handler.ErrNotFound.WithMessage(ErrUnknownAccount.Error()))
	case err != nil:
		return handler.JSONError(err)
	}
	return handler.JSON(updated)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
