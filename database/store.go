package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotConnected is returned by every operation on a Disconnected store.
var ErrNotConnected = errors.New("database not connected")

// Store is the document store handed to handlers at construction time.
type Store interface {
	// Available reports whether the store can serve requests at all.
	Available() bool
	// Name returns the database name, empty when disconnected.
	Name() string
	Collection(name string) Collection
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Collection covers the operations this service needs from a collection.
type Collection interface {
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	InsertOne(ctx context.Context, doc any) (string, error)
	InsertMany(ctx context.Context, docs []any) error
}

// Disconnected is the Store used when no connection string is configured.
// Handlers check Available and degrade instead of failing.
type Disconnected struct{}

func (Disconnected) Available() bool { return false }

func (Disconnected) Name() string { return "" }

func (Disconnected) Collection(string) Collection { return disconnectedCollection{} }

func (Disconnected) ListCollectionNames(context.Context) ([]string, error) {
	return nil, ErrNotConnected
}

type disconnectedCollection struct{}

func (disconnectedCollection) CountDocuments(context.Context, bson.M) (int64, error) {
	return 0, ErrNotConnected
}

func (disconnectedCollection) Find(context.Context, bson.M) ([]bson.M, error) {
	return nil, ErrNotConnected
}

func (disconnectedCollection) InsertOne(context.Context, any) (string, error) {
	return "", ErrNotConnected
}

func (disconnectedCollection) InsertMany(context.Context, []any) error {
	return ErrNotConnected
}
