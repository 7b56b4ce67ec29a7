package habit

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	habitsCollection      = "habits"
	completionsCollection = "completions"
)

// Store persists habits and completion records in MongoDB.
type Store struct {
	habits      *mongo.Collection
	completions *mongo.Collection
}

// NewStore creates a habit store backed by the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		habits:      db.Collection(habitsCollection),
		completions: db.Collection(completionsCollection),
	}
}

// EnsureIndexes creates the owner and per-date lookup indexes. Safe to
// call on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.habits.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create habits index: %w", err)
	}

	_, err = s.completions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "habit_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create completions index: %w", err)
	}
	return nil
}

func (s *Store) CreateHabit(ctx context.Context, h Habit) error {
	if _, err := s.habits.InsertOne(ctx, h); err != nil {
		return fmt.Errorf("insert habit: %w", err)
	}
	return nil
}

func (s *Store) ListHabits(ctx context.Context, userID string) ([]Habit, error) {
	cur, err := s.habits.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find habits: %w", err)
	}
	var habits []Habit
	if err := cur.All(ctx, &habits); err != nil {
		return nil, fmt.Errorf("decode habits: %w", err)
	}
	return habits, nil
}

func (s *Store) GetHabit(ctx context.Context, userID, habitID string) (Habit, error) {
	var h Habit
	err := s.habits.FindOne(ctx, bson.M{"_id": habitID, "user_id": userID}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Habit{}, ErrNotFound
	}
	if err != nil {
		return Habit{}, fmt.Errorf("find habit: %w", err)
	}
	return h, nil
}

func (s *Store) UpdateHabit(ctx context.Context, userID, habitID string, patch Patch) (Habit, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Frequency != nil {
		set["frequency"] = *patch.Frequency
	}
	if patch.TargetDaysPerWeek != nil {
		set["target_days_per_week"] = *patch.TargetDaysPerWeek
	}
	if patch.ReminderTime != nil {
		set["reminder_time"] = *patch.ReminderTime
	}
	if patch.ReminderEnabled != nil {
		set["reminder_enabled"] = *patch.ReminderEnabled
	}
	if patch.IsArchived != nil {
		set["is_archived"] = *patch.IsArchived
	}

	var h Habit
	err := s.habits.FindOneAndUpdate(ctx,
		bson.M{"_id": habitID, "user_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Habit{}, ErrNotFound
	}
	if err != nil {
		return Habit{}, fmt.Errorf("update habit: %w", err)
	}
	return h, nil
}

func (s *Store) DeleteHabit(ctx context.Context, userID, habitID string) error {
	res, err := s.habits.DeleteOne(ctx, bson.M{"_id": habitID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetCompletion(ctx context.Context, userID, habitID, date string) (CompletionRecord, error) {
	var rec CompletionRecord
	err := s.completions.FindOne(ctx, bson.M{
		"user_id":  userID,
		"habit_id": habitID,
		"date":     date,
	}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return CompletionRecord{}, ErrCompletionNotFound
	}
	if err != nil {
		return CompletionRecord{}, fmt.Errorf("find completion: %w", err)
	}
	return rec, nil
}

func (s *Store) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := s.completions.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"completed": completed}},
	)
	if err != nil {
		return fmt.Errorf("set completed: %w", err)
	}
	return nil
}

func (s *Store) InsertCompletion(ctx context.Context, rec CompletionRecord) error {
	if _, err := s.completions.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert completion: %w", err)
	}
	return nil
}

func (s *Store) ListCompletions(ctx context.Context, userID, habitID string) ([]CompletionRecord, error) {
	cur, err := s.completions.Find(ctx, bson.M{"user_id": userID, "habit_id": habitID})
	if err != nil {
		return nil, fmt.Errorf("find completions: %w", err)
	}
	var recs []CompletionRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode completions: %w", err)
	}
	return recs, nil
}

func (s *Store) DeleteCompletionsByHabit(ctx context.Context, userID, habitID string) error {
	_, err := s.completions.DeleteMany(ctx, bson.M{"user_id": userID, "habit_id": habitID})
	if err != nil {
		return fmt.Errorf("delete completions: %w", err)
	}
	return nil
}
