package audit

import (
	"context"
	"log"
	"time"

	"inkwell/db"
	"inkwell/models"
)

// Record appends one audit entry. State-changing handlers call this before
// replying and surface a server error to the caller if the append fails,
// even though their primary write already committed.
func Record(ctx context.Context, userID, description string) error {
	now := time.Now()
	_, err := db.LogsCollection.InsertOne(ctx, models.Log{
		User:        userID,
		Description: description,
		Timestamp:   now,
		CreatedAt:   now,
	})
	return err
}

// RecordAsync appends an entry after the response has been sent. Best-effort:
// a failure is logged, never surfaced. Used by read/list handlers whose audit
// trail is advisory.
func RecordAsync(userID, description string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Record(ctx, userID, description); err != nil {
			log.Printf("audit: record failed for %s (%s): %v", userID, description, err)
		}
	}()
}
