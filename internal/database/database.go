package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the Mongo client and the application database so callers get an
// explicit handle instead of package-level state.
type DB struct {
	client   *mongo.Client
	Database *mongo.Database
}

// Connect dials MongoDB, pings it and returns the handle for dbName.
func Connect(uri, dbName string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &DB{
		client:   client,
		Database: client.Database(dbName),
	}, nil
}

// Disconnect closes the underlying client.
func (d *DB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

// EnsureUserIndexes creates the unique indexes on email and phone. The
// application pre-checks uniqueness for friendly messages, but these indexes
// are what actually prevent a duplicate slipping in between the check and
// the write.
func EnsureUserIndexes(ctx context.Context, db *DB) error {
	col := db.Database.Collection("users")

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_unique_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetName("idx_unique_phone").SetUnique(true),
		},
	}

	for _, m := range models {
		if _, err := col.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
