package account

import "time"

// Account is a registered user of the service. The ID is a UUID string
// rather than a Mongo ObjectID so it round-trips through JWT subjects
// and JSON payloads unchanged.
type Account struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash []byte    `bson:"hashed_password" json:"-"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Patch describes a partial account update. Nil fields are left untouched.
type Patch struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil
}
