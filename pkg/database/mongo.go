package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds MongoDB connection configuration
type MongoConfig struct {
	URI      string
	Database string

	// ConnectTimeout bounds the startup reachability probe. A store that does
	// not answer within this window is treated as unavailable.
	ConnectTimeout time.Duration
}

// DefaultMongoConfig returns default configuration
func DefaultMongoConfig() *MongoConfig {
	return &MongoConfig{
		URI:            "mongodb://localhost:27017",
		Database:       "okgaadi",
		ConnectTimeout: 2 * time.Second,
	}
}

// MongoDB wraps a mongo client bound to one database
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	config *MongoConfig
}

// NewMongo connects to MongoDB and verifies reachability with a single
// bounded ping. There is no retry: an unreachable store within the timeout is
// an error, and the caller decides whether to fall back.
func NewMongo(ctx context.Context, cfg *MongoConfig) (*MongoDB, error) {
	if cfg == nil {
		cfg = DefaultMongoConfig()
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 2 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo unreachable at %s: %w", cfg.URI, err)
	}

	return &MongoDB{
		client: client,
		db:     client.Database(cfg.Database),
		config: cfg,
	}, nil
}

// Database returns the bound database handle
func (m *MongoDB) Database() *mongo.Database {
	return m.db
}

// Collection returns a collection handle from the bound database
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping checks if the store connection is alive
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close releases the client connection
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
