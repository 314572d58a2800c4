package store

import (
	"context"
	"errors"

	"github.com/toolshed/handyman/internal/handyman/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Projects() Projects
	Materials() Materials
	Laborers() Laborers

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run the ownership-check-then-mutate pairs the
	// services are built from.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during sign-in. The lookup is an exact,
	// case-sensitive match.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Projects interface {
	// CreateProject inserts a new project owned by p.UserID.
	CreateProject(ctx context.Context, p domain.Project) error

	// GetProject returns a project only when it exists AND belongs to
	// userID; anything else is ErrNotFound. This is the ownership gate
	// every nested mutation goes through. Materials and laborers are not
	// hydrated.
	GetProject(ctx context.Context, userID, projectID string) (domain.Project, error)

	// ListProjects returns the user's projects in creation order, fully
	// hydrated with their materials and laborers.
	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)

	// UpdateProjectInfo overwrites name/memo of the identified project.
	UpdateProjectInfo(ctx context.Context, userID, projectID, name, memo string) error

	// UpdateProjectPay overwrites jobPay of the identified project.
	UpdateProjectPay(ctx context.Context, userID, projectID string, jobPay float64) error

	// DeleteProject removes the project and, via FK cascade, its
	// materials and laborers.
	DeleteProject(ctx context.Context, userID, projectID string) error
}

type Materials interface {
	CreateMaterial(ctx context.Context, m domain.Material) error

	// UpdateMaterial overwrites all mutable fields of the material
	// identified by m.ID within m.ProjectID.
	UpdateMaterial(ctx context.Context, m domain.Material) error

	DeleteMaterial(ctx context.Context, projectID, materialID string) error
}

type Laborers interface {
	CreateLaborer(ctx context.Context, l domain.Laborer) error

	UpdateLaborer(ctx context.Context, l domain.Laborer) error

	DeleteLaborer(ctx context.Context, projectID, laborerID string) error
}
