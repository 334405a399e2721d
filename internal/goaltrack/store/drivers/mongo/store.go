// Package mongo implements the goaltrack store on MongoDB. Uniqueness of
// usernames and emails is enforced by unique indexes created in
// ApplyMigrations, mirroring the sqlite driver's schema migrations.
package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"go.mongodb.org/mongo-driver/bson"
)

const connectTimeout = 10 * time.Second

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Users() store.Users           { return &usersRepo{col: s.db.Collection("users")} }
func (s *Store) Tasks() store.Tasks           { return &tasksRepo{col: s.db.Collection("tasks")} }
func (s *Store) Objectives() store.Objectives { return &objectivesRepo{col: s.db.Collection("objectives")} }

// ApplyMigrations ensures the unique indexes the service relies on. Index
// creation is idempotent, so this is safe to run on every startup.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	unique := options.Index().SetUnique(true)

	_, err := s.db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("tasks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapConflict(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func nowUTC() time.Time { return time.Now().UTC() }
