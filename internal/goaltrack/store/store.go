package store

import (
	"context"
	"errors"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. Every operation here touches a single document and uniqueness is
// enforced by indexes, so there is no transaction surface; concurrent writes
// to the same task are last-write-wins.
type Store interface {
	Users() Users
	Tasks() Tasks
	Objectives() Objectives

	// ApplyMigrations brings the schema (or index set, for document stores)
	// up to date. Must be called before serving traffic.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and registration conflict checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
}

type Tasks interface {
	// GetTaskByID returns a task by id.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// ListTasksByUser returns every task owned by userID in storage order.
	ListTasksByUser(ctx context.Context, userID string) ([]domain.Task, error)

	// CreateTask inserts a new task.
	CreateTask(ctx context.Context, t domain.Task) error

	// UpdateTask replaces the mutable fields (title, description, date,
	// completed, departmental goal) of the task with the given id.
	UpdateTask(ctx context.Context, t domain.Task) error

	// SetTaskCompleted updates only the completion flag.
	SetTaskCompleted(ctx context.Context, id string, completed bool) error

	// DeleteTask removes a task by id. Returns ErrNotFound if absent.
	DeleteTask(ctx context.Context, id string) error
}

type Objectives interface {
	// ListObjectives returns the full catalog ordered by id.
	ListObjectives(ctx context.Context) ([]domain.Objective, error)

	// UpsertObjective inserts or replaces a catalog entry. Used by the
	// startup catalog sync; the catalog has no other writers in this service.
	UpsertObjective(ctx context.Context, o domain.Objective) error
}
