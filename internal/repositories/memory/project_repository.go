package memory

import (
	"context"
	"fmt"
	"sync"

	"changemakers-go/internal/model"
	"changemakers-go/internal/repositories"
)

type ProjectRepository struct {
	mu       sync.RWMutex
	projects []model.Project
	index    map[string]int
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{index: map[string]int{}}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (model.Project, error) {
	if err := ctx.Err(); err != nil {
		return model.Project{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.Project{}, fmt.Errorf("project %s: %w", id, repositories.ErrNotFound)
	}
	return r.projects[i], nil
}

func (r *ProjectRepository) Create(ctx context.Context, p model.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[p.ID]; ok {
		return fmt.Errorf("project %s: %w", p.ID, repositories.ErrAlreadyExists)
	}
	r.index[p.ID] = len(r.projects)
	r.projects = append(r.projects, p)
	return nil
}

func (r *ProjectRepository) Upsert(ctx context.Context, p model.Project) (*model.Project, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if p.ID == "" {
		return nil, false, fmt.Errorf("project id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[p.ID]; ok {
		previous := r.projects[i]
		r.projects[i] = p
		return &previous, false, nil
	}
	r.index[p.ID] = len(r.projects)
	r.projects = append(r.projects, p)
	return nil, true, nil
}
