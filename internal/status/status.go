package status

import "time"

// Check is a client-reported liveness ping, kept for monitoring history.
type Check struct {
	ID         string    `bson:"_id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
