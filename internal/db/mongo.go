// Package db owns the MongoDB connection and the aggregation pipeline
// builder shared by the repositories.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Collection names used by the application. Users and sessions belong to the
// account surface and are not queried here.
const (
	CollMovies   = "movies"
	CollComments = "comments"
	CollUsers    = "users"
	CollSessions = "sessions"
)

// Config holds connection settings. Pool sizing and the write timeout are
// explicit configuration, not ambient driver defaults.
type Config struct {
	URI          string
	Database     string
	MaxPoolSize  uint64
	WriteTimeout time.Duration
}

// Store is the shared MongoDB handle injected into the repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    Config
}

// Status reports the effective client configuration.
type Status struct {
	MaxPoolSize  uint64        `json:"max_pool_size"`
	WriteTimeout time.Duration `json:"write_timeout"`
	WriteConcern string        `json:"write_concern"`
}

// NewStore connects to MongoDB with a bounded pool and a majority write
// concern capped by the configured write timeout.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	wc := writeconcern.Majority()
	wc.WTimeout = cfg.WriteTimeout

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetWriteConcern(wc)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
		cfg:    cfg,
	}, nil
}

// WaitForReady pings the primary until it answers or the timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}

// Movies returns the movies collection.
func (s *Store) Movies() *mongo.Collection {
	return s.db.Collection(CollMovies)
}

// Comments returns the comments collection with its default read concern,
// used for writes.
func (s *Store) Comments() *mongo.Collection {
	return s.db.Collection(CollComments)
}

// CommentsMajority returns a comments handle pinned to majority read
// concern. Analytics reads must not under- or over-count recent activity,
// so they never run weaker than majority.
func (s *Store) CommentsMajority() *mongo.Collection {
	return s.db.Collection(CollComments,
		options.Collection().SetReadConcern(readconcern.Majority()))
}

// Status reports the configured pool size and write-concern settings.
func (s *Store) Status() Status {
	return Status{
		MaxPoolSize:  s.cfg.MaxPoolSize,
		WriteTimeout: s.cfg.WriteTimeout,
		WriteConcern: "majority",
	}
}
