package models

import "time"

// Log is one audit entry. Append-only; never updated or deleted via the API.
type Log struct {
	User        string    `bson:"user" json:"user"`
	Description string    `bson:"description" json:"description"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
