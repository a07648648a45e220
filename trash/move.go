package trash

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/db"
	"inkwell/models"
)

var ErrNotFound = errors.New("source document not found")

// Move archives a document: insert the trash record, delete the original.
// Both writes run inside one transaction when the deployment supports it
// (replica set / mongos); on a standalone server the driver rejects
// transactions and the move falls back to sequential writes, where a failed
// source delete leaves both copies live; that partial state is named in the
// returned error instead of being swallowed.
func Move(ctx context.Context, source *mongo.Collection, filter bson.M, record models.Trash) error {
	session, err := db.Client.StartSession()
	if err != nil {
		return moveSequential(ctx, source, filter, record)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		if _, err := db.TrashCollection.InsertOne(sc, record); err != nil {
			return nil, err
		}
		res, err := source.DeleteOne(sc, filter)
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	})
	if err != nil && transactionsUnsupported(err) {
		return moveSequential(ctx, source, filter, record)
	}
	return err
}

func moveSequential(ctx context.Context, source *mongo.Collection, filter bson.M, record models.Trash) error {
	if _, err := db.TrashCollection.InsertOne(ctx, record); err != nil {
		return err
	}
	res, err := source.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("trash record %s written but source delete failed, both copies live: %w", record.TrashID, err)
	}
	if res.DeletedCount == 0 {
		// The source was never there, so the trash record just written is an
		// orphan. Remove it before reporting not-found.
		if _, derr := db.TrashCollection.DeleteOne(ctx, bson.M{"trashid": record.TrashID}); derr != nil {
			return fmt.Errorf("source document missing and orphan trash record %s could not be removed: %w", record.TrashID, derr)
		}
		return ErrNotFound
	}
	return nil
}

func transactionsUnsupported(err error) bool {
	// Standalone servers report "Transaction numbers are only allowed on a
	// replica set member or mongos" with code 20 (IllegalOperation).
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 20 {
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers")
}
