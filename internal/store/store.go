// ABOUTME: Store interface and data types for portfolio backend persistence
// ABOUTME: Defines AdminAccount, Project structs and the store interfaces

package store

import (
	"context"
	"errors"
	"time"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// ErrAccountExists is returned when a signup collides with an existing
// mobile number or email address.
var ErrAccountExists = errors.New("account already exists")

// ErrProjectNotFound is returned when a requested project does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ErrProjectExists is returned when a project URL is already taken.
var ErrProjectExists = errors.New("project already exists")

// AdminAccount is an administrator identity record. PasswordHash holds the
// bcrypt digest, never the raw password. Accounts are created on signup and
// never mutated afterward.
type AdminAccount struct {
	ID           string
	Name         string
	Mobile       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Project is a portfolio entry shown on the public listing. ProjectURL doubles
// as the natural key used for deletion.
type Project struct {
	ID           string
	ProjectName  string
	ProjectURL   string
	GitLink      string
	PreviewImage string
	CreatedAt    time.Time
}

// AdminStore defines the interface for admin credential persistence.
type AdminStore interface {
	CreateAdmin(ctx context.Context, admin *AdminAccount) error
	GetAdminByContact(ctx context.Context, contact string) (*AdminAccount, error)
	CountAdmins(ctx context.Context) (int, error)
}

// ProjectStore defines the interface for project record persistence.
type ProjectStore interface {
	CreateProject(ctx context.Context, project *Project) error
	GetProjectByURL(ctx context.Context, projectURL string) (*Project, error)
	DeleteProjectByURL(ctx context.Context, projectURL string) error
	ListProjects(ctx context.Context) ([]*Project, error)
}

// Store combines all persistence interfaces backed by a single database.
type Store interface {
	AdminStore
	ProjectStore

	// Close releases any resources held by the store
	Close() error
}
