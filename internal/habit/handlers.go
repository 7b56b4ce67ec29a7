package habit

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/habitd/habitd/handler"
	"github.com/habitd/habitd/internal/auth"
	"github.com/habitd/habitd/pkg/binder"
	"github.com/habitd/habitd/pkg/validator"
)

var (
	dateRe         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reminderTimeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Module bundles the habit HTTP endpoints. All routes require an
// authenticated account; the auth middleware is applied by the caller.
type Module struct {
	svc *Service
}

// NewModule creates the habit HTTP module.
func NewModule(svc *Service) *Module {
	return &Module{svc: svc}
}

// Handle returns the habit sub-router, mounted under /habits.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(m.list))
	r.Post("/", handler.Wrap(m.create,
		handler.WithBinders[handler.Context, CreateHabitRequest](binder.JSON()),
	))

	// Static segments registered before the wildcard so chi routes
	// completion endpoints past the {habit_id} pattern.
	r.Post("/completions/toggle", handler.Wrap(m.toggle,
		handler.WithBinders[handler.Context, ToggleCompletionRequest](binder.JSON()),
	))
	r.Get("/completions/{habit_id}", handler.Wrap(m.completions,
		handler.WithBinders[handler.Context, HabitIDRequest](binder.Path()),
	))

	r.Get("/{habit_id}", handler.Wrap(m.get,
		handler.WithBinders[handler.Context, HabitIDRequest](binder.Path()),
	))
	r.Patch("/{habit_id}", handler.Wrap(m.update,
		handler.WithBinders[handler.Context, UpdateHabitRequest](binder.Path(), binder.JSON()),
	))
	r.Delete("/{habit_id}", handler.Wrap(m.delete,
		handler.WithBinders[handler.Context, HabitIDRequest](binder.Path()),
	))

	return r
}

func (m *Module) list(ctx handler.Context, _ struct{}) handler.Response {
	acc, ok := auth.CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	habits, err := m.svc.List(ctx, acc.ID)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(habits)
}

// CreateHabitRequest is the body of POST /habits.
type CreateHabitRequest struct {
	Name              string    `json:"name"`
	Color             string    `json:"color"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	Frequency         Frequency `json:"frequency"`
	TargetDaysPerWeek int       `json:"target_days_per_week"`
	ReminderTime      string    `json:"reminder_time"`
	ReminderEnabled   bool      `json:"reminder_enabled"`
}

func (r CreateHabitRequest) Validate() error {
	return validator.Apply(
		validator.MinLenString("name", r.Name, 1),
		validator.MaxLenString("name", r.Name, 100),
		validator.MaxLenString("color", r.Color, 50),
		validator.MaxLenString("category", r.Category, 50),
		validator.MaxLenString("description", r.Description, 500),
		validator.When(r.Frequency != "",
			validator.OneOf("frequency", r.Frequency, FrequencyDaily, FrequencyWeekly, FrequencyCustom)),
		validator.When(r.TargetDaysPerWeek != 0,
			validator.BetweenNum("target_days_per_week", r.TargetDaysPerWeek, 1, 7)),
		validator.When(r.ReminderTime != "",
			validator.Matches("reminder_time", r.ReminderTime, reminderTimeRe, "must be in HH:MM form")),
	)
}

func (m *Module) create(ctx handler.Context, req CreateHabitRequest) handler.Response {
	acc, ok := auth.CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	if err := req.Validate(); err != nil {
		return handler.JSONError(err)
	}

	created, err := m.svc.Create(ctx, Habit{
		UserID:            acc.ID,
		Name:              req.Name,
		Color:             req.Color,
		Category:          req.Category,
		Description:       req.Description,
		Frequency:         req.Frequency,
		TargetDaysPerWeek: req.TargetDaysPerWeek,
		ReminderTime:      req.ReminderTime,
		ReminderEnabled:   req.ReminderEnabled,
	})
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(created, handler.WithJSONStatus(http.StatusCreated))
}

// HabitIDRequest binds the habit_id path segment.
type HabitIDRequest struct {
	HabitID string `path:"habit_id"`
}

func (m *Module) get(ctx handler.Context, req HabitIDRequest) handler.Response {
	acc, ok := auth.CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	h, err := m.svc.Get(ctx, acc.ID, req.HabitID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return handler.JSONError(handler.ErrNotFound.WithMessage(ErrNotFound.Error()))
		}
		return handler.JSONError(err)
	}
	return handler.JSON(h)
}

// UpdateHabitRequest is the body of PATCH /habits/{habit_id}. Absent
// fields are left unchanged.
type UpdateHabitRequest struct {
	HabitID           string     `path:"habit_id" json:"-"`
	Name              *string    `json:"name"`
	Color             *string    `json:"color"`
	Category          *string    `json:"category"`
	Description       *string    `json:"description"`
	Frequency         *Frequency `json:"frequency"`
	TargetDaysPerWeek *int       `json:"target_days_per_week"`
	ReminderTime      *string    `json:"reminder_time"`
	ReminderEnabled   *bool      `json:"reminder_enabled"`
	IsArchived        *bool      `json:"is_archived"`
}

func (r UpdateHabitRequest) Validate() error {
	return validator.Apply(
		validator.When(r.Name != nil, validator.MinLenString("name", deref(r.Name), 1)),
		validator.When(r.Name != nil, validator.MaxLenString("name", deref(r.Name), 100)),
		validator.When(r.Color != nil, validator.MaxLenString("color", deref(r.Color), 50)),
		validator.When(r.Category != nil, validator.MaxLenString("category", deref(r.Category), 50)),
		validator.When(r.Description != nil, validator.MaxLenString("description", deref(r.Description), 500)),
		validator.When(r.Frequency != nil,
			validator.OneOf("frequency", derefFreq(r.Frequency), FrequencyDaily, FrequencyWeekly, FrequencyCustom)),
		validator.When(r.TargetDaysPerWeek != nil,
			validator.BetweenNum("target_days_per_week", derefInt(r.TargetDaysPerWeek), 1, 7)),
		validator.When(r.ReminderTime != nil,
			validator.Matches("reminder_time", deref(r.ReminderTime), reminderTimeRe, "must be in HH:MM form")),
	)
}

func (r UpdateHabitRequest) patch() Patch {
	return Patch{
		Name:              r.Name,
		Color:             r.Color,
		Category:          r.Category,
		Description:       r.Description,
		Frequency:         r.Frequency,
		TargetDaysPerWeek: r.TargetDaysPerWeek,
		ReminderTime:      r.ReminderTime,
		ReminderEnabled:   r.ReminderEnabled,
		IsArchived:        r.IsArchived,
	}
}

func (m *Module) update(ctx handler.Context, req UpdateHabitRequest) handler.Response {
	acc, ok := auth.CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	if err := req.Validate(); err != nil {
		return handler.JSONError(err)
	}

	updated, err := m.svc.Update(ctx, acc.ID, req.HabitID, req.patch())
	switch {
	case errors.Is(err, ErrNothingToUpdate):
		return handler.JSONError(handler.ErrBadRequest.WithMessage(ErrNothingToUpdate.Error()))
	case errors.Is(err, ErrNotFound):
		return handler.JSONError(handler.ErrNotFound.WithMessage(ErrNotFound.Error()))
	case err != nil:
		return handler.JSONError(err)
	}
	return handler.JSON(updated)
}

func (m *Module) delete(ctx handler.Context, req HabitIDRequest) handler.Response {
	acc, ok := auth.CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	if err := m.svc.Delete(ctx, acc.ID, req.HabitID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return handler.JSONError(handler.ErrNotFound.WithMessage(ErrNotFound.Error()))
		}
		return handler.JSONError(err)
	}
	return handler.NoContent()
}

// ToggleCompletionRequest is the body of POST /habits/completions/toggle.
type ToggleCompletionRequest struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

func (r ToggleCompletionRequest) Validate() error {
	return validator.Apply(
		validator.RequiredString("habit_id", r.HabitID),
		validator.Matches("date", r.Date, dateRe, "must be in YYYY-MM-DD form"),
	)
}

func (m *Module) toggle(ctx handler.Context, req ToggleCompletionRequest) handler.Response {
	acc, ok := auth.CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	if err := req.Validate(); err != nil {
		return handler.JSONError(err)
	}

	rec, err := m.svc.Toggle(ctx, acc.ID, req.HabitID, req.Date)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(rec)
}

func (m *Module) completions(ctx handler.Context, req HabitIDRequest) handler.Response {
	acc, ok := auth.CurrentAccount(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	recs, err := m.svc.Completions(ctx, acc.ID, req.HabitID)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(recs)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFreq(f *Frequency) Frequency {
	if f == nil {
		return ""
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
