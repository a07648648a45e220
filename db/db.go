package db

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client          *mongo.Client
	UserCollection  *mongo.Collection
	PostsCollection *mongo.Collection
	TrashCollection *mongo.Collection
	LogsCollection  *mongo.Collection
)

// Init connects to MongoDB and wires the collection globals. Call once from
// main after the env file has been loaded.
func Init() error {
	uri := os.Getenv("CONNECTION")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	database := client.Database("blogdb")
	UserCollection = database.Collection("users")
	PostsCollection = database.Collection("posts")
	TrashCollection = database.Collection("trash")
	LogsCollection = database.Collection("logs")
	return nil
}

// Close disconnects the client; used during graceful shutdown.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
