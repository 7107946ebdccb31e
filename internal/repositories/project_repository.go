package repositories

import (
	"context"
	"errors"

	"changemakers-go/internal/model"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// ProjectRepository stores the project catalog. List returns projects in
// the order they were first stored.
type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id string) (model.Project, error)
	// Create stores a new project and fails with ErrAlreadyExists when the
	// ID is taken.
	Create(ctx context.Context, p model.Project) error
	// Upsert stores p and returns the version it replaced, if any.
	Upsert(ctx context.Context, p model.Project) (previous *model.Project, created bool, err error)
}
