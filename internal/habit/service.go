package habit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habitd/habitd/pkg/logger"
)

// Storage defines the persistence operations the service needs. All
// lookups are scoped by the owning user.
type Storage interface {
	CreateHabit(ctx context.Context, h Habit) error
	ListHabits(ctx context.Context, userID string) ([]Habit, error)
	GetHabit(ctx context.Context, userID, habitID string) (Habit, error)
	UpdateHabit(ctx context.Context, userID, habitID string, patch Patch) (Habit, error)
	DeleteHabit(ctx context.Context, userID, habitID string) error

	GetCompletion(ctx context.Context, userID, habitID, date string) (CompletionRecord, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	InsertCompletion(ctx context.Context, rec CompletionRecord) error
	ListCompletions(ctx context.Context, userID, habitID string) ([]CompletionRecord, error)
	DeleteCompletionsByHabit(ctx context.Context, userID, habitID string) error
}

// Service implements habit CRUD and per-date completion toggling.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a habit service on top of the given storage.
func NewService(storage Storage, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new habit for the owner, filling in the ID, creation
// time, and defaults for unset presentation fields.
func (s *Service) Create(ctx context.Context, h Habit) (Habit, error) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	h.IsArchived = false
	if h.Color == "" {
		h.Color = "primary"
	}
	if h.Frequency == "" {
		h.Frequency = FrequencyDaily
	}
	if h.TargetDaysPerWeek == 0 {
		h.TargetDaysPerWeek = 7
	}

	if err := s.storage.CreateHabit(ctx, h); err != nil {
		return Habit{}, err
	}
	s.log.InfoContext(ctx, "habit created", logger.HabitID(h.ID), logger.AccountID(h.UserID))
	return h, nil
}

// List returns all habits owned by the user. The result is never nil.
func (s *Service) List(ctx context.Context, userID string) ([]Habit, error) {
	habits, err := s.storage.ListHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	if habits == nil {
		habits = []Habit{}
	}
	return habits, nil
}

// Get fetches a single habit owned by the user.
func (s *Service) Get(ctx context.Context, userID, habitID string) (Habit, error) {
	return s.storage.GetHabit(ctx, userID, habitID)
}

// Update applies a partial update and returns the updated habit. Empty
// patches are rejected with ErrNothingToUpdate.
func (s *Service) Update(ctx context.Context, userID, habitID string, patch Patch) (Habit, error) {
	if patch.IsEmpty() {
		return Habit{}, ErrNothingToUpdate
	}
	return s.storage.UpdateHabit(ctx, userID, habitID, patch)
}

// Delete removes a habit and then its completion records. The cascade is
// not transactional: a failure after the habit delete leaves orphaned
// completions, which are invisible through the API and harmless.
func (s *Service) Delete(ctx context.Context, userID, habitID string) error {
	if err := s.storage.DeleteHabit(ctx, userID, habitID); err != nil {
		return err
	}
	if err := s.storage.DeleteCompletionsByHabit(ctx, userID, habitID); err != nil {
		s.log.ErrorContext(ctx, "completion cleanup failed after habit delete",
			logger.HabitID(habitID), logger.Error(err))
		return err
	}
	s.log.InfoContext(ctx, "habit deleted", logger.HabitID(habitID), logger.AccountID(userID))
	return nil
}

// Toggle flips the completion state of a habit for a calendar date. The
// first toggle for a date creates a completed record; each subsequent
// toggle inverts it. The habit itself is not required to exist, matching
// the record-keeping nature of completions.
func (s *Service) Toggle(ctx context.Context, userID, habitID, date string) (CompletionRecord, error) {
	existing, err := s.storage.GetCompletion(ctx, userID, habitID, date)
	if err == nil {
		existing.Completed = !existing.Completed
		if err := s.storage.SetCompleted(ctx, existing.ID, existing.Completed); err != nil {
			return CompletionRecord{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, ErrCompletionNotFound) {
		return CompletionRecord{}, err
	}

	rec := CompletionRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		HabitID:   habitID,
		Date:      date,
		Completed: true,
	}
	if err := s.storage.InsertCompletion(ctx, rec); err != nil {
		return CompletionRecord{}, err
	}
	return rec, nil
}

// Completions returns all completion records for a habit owned by the
// user. The result is never nil.
func (s *Service) Completions(ctx context.Context, userID, habitID string) ([]CompletionRecord, error) {
	recs, err := s.storage.ListCompletions(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []CompletionRecord{}
	}
	return recs, nil
}
