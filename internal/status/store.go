package status

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "status_checks"

// Store persists status checks in MongoDB.
type Store struct {
	coll *mongo.Collection
}

// NewStore creates a status check store backed by the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

func (s *Store) Insert(ctx context.Context, check Check) error {
	if _, err := s.coll.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]Check, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}
	var checks []Check
	if err := cur.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}
	return checks, nil
}
