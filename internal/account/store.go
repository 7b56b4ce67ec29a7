package account

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "users"

// Store persists accounts in MongoDB.
type Store struct {
	coll *mongo.Collection
}

// NewStore creates an account store backed by the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique email index. Safe to call on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// Create inserts a new account. Returns ErrEmailTaken if the email is
// already registered.
func (s *Store) Create(ctx context.Context, acc Account) error {
	err := s.coll.FindOne(ctx, bson.M{"email": acc.Email}).Err()
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check email uniqueness: %w", err)
	}

	if _, err := s.coll.InsertOne(ctx, acc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (Account, error) {
	var acc Account
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("find account by id: %w", err)
	}
	return acc, nil
}

// GetByEmail fetches an account by email.
func (s *Store) GetByEmail(ctx context.Context, email string) (Account, error) {
	var acc Account
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("find account by email: %w", err)
	}
	return acc, nil
}

// Update applies a partial update and returns the updated account.
// Changing the email to one held by another account returns ErrEmailTaken.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (Account, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		err := s.coll.FindOne(ctx, bson.M{
			"email": *patch.Email,
			"_id":   bson.M{"$ne": id},
		}).Err()
		if err == nil {
			return Account{}, ErrEmailTaken
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return Account{}, fmt.Errorf("check email uniqueness: %w", err)
		}
		set["email"] = *patch.Email
	}

	var acc Account
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("update account: %w", err)
	}
	return acc, nil
}
