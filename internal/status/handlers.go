package status

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/habitd/habitd/handler"
	"github.com/habitd/habitd/internal/auth"
	"github.com/habitd/habitd/pkg/binder"
	"github.com/habitd/habitd/pkg/logger"
	"github.com/habitd/habitd/pkg/validator"
)

// Storage defines the persistence operations the module needs.
type Storage interface {
	Insert(ctx context.Context, check Check) error
	List(ctx context.Context) ([]Check, error)
}

// Module bundles the public status check endpoints.
type Module struct {
	storage Storage
	log     *slog.Logger
}

// ModuleOption configures a Module during construction.
type ModuleOption func(*Module)

// WithLogger sets a custom logger for the module.
func WithLogger(log *slog.Logger) ModuleOption {
	return func(m *Module) {
		if log != nil {
			m.log = log
		}
	}
}

// NewModule creates the status HTTP module.
func NewModule(storage Storage, opts ...ModuleOption) *Module {
	m := &Module{
		storage: storage,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle returns the status sub-router, mounted under /status. The routes
// are public; an identity is still resolved when a token is present so the
// log records which client account, if any, is pinging.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(m.list))
	r.Post("/", handler.Wrap(m.create,
		handler.WithBinders[handler.Context, CreateCheckRequest](binder.JSON()),
	))

	return r
}

func (m *Module) list(ctx handler.Context, _ struct{}) handler.Response {
	checks, err := m.storage.List(ctx)
	if err != nil {
		return handler.JSONError(err)
	}
	if checks == nil {
		checks = []Check{}
	}
	return handler.JSON(checks)
}

// CreateCheckRequest is the body of POST /status.
type CreateCheckRequest struct {
	ClientName string `json:"client_name"`
}

func (m *Module) create(ctx handler.Context, req CreateCheckRequest) handler.Response {
	if err := validator.Apply(
		validator.RequiredString("client_name", req.ClientName),
	); err != nil {
		return handler.JSONError(err)
	}

	check := Check{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := m.storage.Insert(ctx, check); err != nil {
		return handler.JSONError(err)
	}

	attrs := []any{slog.String("client_name", check.ClientName)}
	if identity := auth.CurrentIdentity(ctx); identity.Authenticated() {
		attrs = append(attrs, logger.AccountID(identity.Account.ID))
	}
	m.log.InfoContext(ctx, "status check recorded", attrs...)

	return handler.JSON(check)
}
