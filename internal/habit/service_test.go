package habit_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitd/habitd/internal/habit"
)

// fakeStorage is an in-memory Storage implementation for tests.
type fakeStorage struct {
	mu          sync.Mutex
	habits      map[string]habit.Habit
	completions map[string]habit.CompletionRecord
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		habits:      make(map[string]habit.Habit),
		completions: make(map[string]habit.CompletionRecord),
	}
}

func (f *fakeStorage) CreateHabit(_ context.Context, h habit.Habit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.habits[h.ID] = h
	return nil
}

func (f *fakeStorage) ListHabits(_ context.Context, userID string) ([]habit.Habit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []habit.Habit
	for _, h := range f.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetHabit(_ context.Context, userID, habitID string) (habit.Habit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return habit.Habit{}, habit.ErrNotFound
	}
	return h, nil
}

func (f *fakeStorage) UpdateHabit(_ context.Context, userID, habitID string, patch habit.Patch) (habit.Habit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return habit.Habit{}, habit.ErrNotFound
	}
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	if patch.Color != nil {
		h.Color = *patch.Color
	}
	if patch.Category != nil {
		h.Category = *patch.Category
	}
	if patch.Description != nil {
		h.Description = *patch.Description
	}
	if patch.Frequency != nil {
		h.Frequency = *patch.Frequency
	}
	if patch.TargetDaysPerWeek != nil {
		h.TargetDaysPerWeek = *patch.TargetDaysPerWeek
	}
	if patch.ReminderTime != nil {
		h.ReminderTime = *patch.ReminderTime
	}
	if patch.ReminderEnabled != nil {
		h.ReminderEnabled = *patch.ReminderEnabled
	}
	if patch.IsArchived != nil {
		h.IsArchived = *patch.IsArchived
	}
	f.habits[habitID] = h
	return h, nil
}

func (f *fakeStorage) DeleteHabit(_ context.Context, userID, habitID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return habit.ErrNotFound
	}
	delete(f.habits, habitID)
	return nil
}

func (f *fakeStorage) GetCompletion(_ context.Context, userID, habitID, date string) (habit.CompletionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.completions {
		if rec.UserID == userID && rec.HabitID == habitID && rec.Date == date {
			return rec, nil
		}
	}
	return habit.CompletionRecord{}, habit.ErrCompletionNotFound
}

func (f *fakeStorage) SetCompleted(_ context.Context, id string, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.completions[id]
	if !ok {
		return habit.ErrCompletionNotFound
	}
	rec.Completed = completed
	f.completions[id] = rec
	return nil
}

func (f *fakeStorage) InsertCompletion(_ context.Context, rec habit.CompletionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completions[rec.ID] = rec
	return nil
}

func (f *fakeStorage) ListCompletions(_ context.Context, userID, habitID string) ([]habit.CompletionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []habit.CompletionRecord
	for _, rec := range f.completions {
		if rec.UserID == userID && rec.HabitID == habitID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStorage) DeleteCompletionsByHabit(_ context.Context, userID, habitID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, rec := range f.completions {
		if rec.UserID == userID && rec.HabitID == habitID {
			delete(f.completions, id)
		}
	}
	return nil
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults for unset fields", func(t *testing.T) {
		t.Parallel()
		svc := habit.NewService(newFakeStorage())

		created, err := svc.Create(context.Background(), habit.Habit{
			UserID: "user-1",
			Name:   "Read",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "primary", created.Color)
		assert.Equal(t, habit.FrequencyDaily, created.Frequency)
		assert.Equal(t, 7, created.TargetDaysPerWeek)
		assert.False(t, created.IsArchived)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("keeps explicit fields", func(t *testing.T) {
		t.Parallel()
		svc := habit.NewService(newFakeStorage())

		created, err := svc.Create(context.Background(), habit.Habit{
			UserID:            "user-1",
			Name:              "Run",
			Color:             "green",
			Frequency:         habit.FrequencyWeekly,
			TargetDaysPerWeek: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "green", created.Color)
		assert.Equal(t, habit.FrequencyWeekly, created.Frequency)
		assert.Equal(t, 3, created.TargetDaysPerWeek)
	})
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := habit.NewService(storage)

	_, err := svc.Create(context.Background(), habit.Habit{UserID: "alice", Name: "Read"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), habit.Habit{UserID: "bob", Name: "Swim"})
	require.NoError(t, err)

	t.Run("is scoped to the owner", func(t *testing.T) {
		habits, err := svc.List(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, habits, 1)
		assert.Equal(t, "Read", habits[0].Name)
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		habits, err := svc.List(context.Background(), "nobody")
		require.NoError(t, err)
		assert.NotNil(t, habits)
		assert.Empty(t, habits)
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := habit.NewService(storage)
	created, err := svc.Create(context.Background(), habit.Habit{UserID: "alice", Name: "Read"})
	require.NoError(t, err)

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("empty patch is rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "alice", created.ID, habit.Patch{})
		assert.ErrorIs(t, err, habit.ErrNothingToUpdate)
	})

	t.Run("applies partial update", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), "alice", created.ID, habit.Patch{
			Name:       strPtr("Read more"),
			IsArchived: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "Read more", updated.Name)
		assert.True(t, updated.IsArchived)
		assert.Equal(t, created.Color, updated.Color)
	})

	t.Run("other owners cannot update", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "bob", created.ID, habit.Patch{Name: strPtr("x")})
		assert.ErrorIs(t, err, habit.ErrNotFound)
	})
}

func TestServiceToggle(t *testing.T) {
	t.Parallel()

	t.Run("first toggle creates a completed record", func(t *testing.T) {
		t.Parallel()
		svc := habit.NewService(newFakeStorage())

		rec, err := svc.Toggle(context.Background(), "alice", "habit-1", "2026-08-28")
		require.NoError(t, err)
		assert.True(t, rec.Completed)
		assert.Equal(t, "alice", rec.UserID)
		assert.Equal(t, "habit-1", rec.HabitID)
		assert.Equal(t, "2026-08-28", rec.Date)
	})

	t.Run("second toggle flips the same record back", func(t *testing.T) {
		t.Parallel()
		svc := habit.NewService(newFakeStorage())

		first, err := svc.Toggle(context.Background(), "alice", "habit-1", "2026-08-28")
		require.NoError(t, err)
		second, err := svc.Toggle(context.Background(), "alice", "habit-1", "2026-08-28")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.False(t, second.Completed)

		third, err := svc.Toggle(context.Background(), "alice", "habit-1", "2026-08-28")
		require.NoError(t, err)
		assert.True(t, third.Completed)
	})

	t.Run("dates toggle independently", func(t *testing.T) {
		t.Parallel()
		svc := habit.NewService(newFakeStorage())

		_, err := svc.Toggle(context.Background(), "alice", "habit-1", "2026-08-27")
		require.NoError(t, err)
		rec, err := svc.Toggle(context.Background(), "alice", "habit-1", "2026-08-28")
		require.NoError(t, err)
		assert.True(t, rec.Completed)

		recs, err := svc.Completions(context.Background(), "alice", "habit-1")
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("owners toggle independently", func(t *testing.T) {
		t.Parallel()
		svc := habit.NewService(newFakeStorage())

		_, err := svc.Toggle(context.Background(), "alice", "habit-1", "2026-08-28")
		require.NoError(t, err)
		rec, err := svc.Toggle(context.Background(), "bob", "habit-1", "2026-08-28")
		require.NoError(t, err)
		assert.True(t, rec.Completed)
	})
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("cascades to completion records", func(t *testing.T) {
		t.Parallel()
		storage := newFakeStorage()
		svc := habit.NewService(storage)

		created, err := svc.Create(context.Background(), habit.Habit{UserID: "alice", Name: "Read"})
		require.NoError(t, err)
		_, err = svc.Toggle(context.Background(), "alice", created.ID, "2026-08-27")
		require.NoError(t, err)
		_, err = svc.Toggle(context.Background(), "alice", created.ID, "2026-08-28")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), "alice", created.ID))

		_, err = svc.Get(context.Background(), "alice", created.ID)
		assert.ErrorIs(t, err, habit.ErrNotFound)
		recs, err := svc.Completions(context.Background(), "alice", created.ID)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("missing habit returns not found", func(t *testing.T) {
		t.Parallel()
		svc := habit.NewService(newFakeStorage())
		err := svc.Delete(context.Background(), "alice", "ghost")
		assert.ErrorIs(t, err, habit.ErrNotFound)
	})
}
