// Package explore serves the explore screen: the filtered project list and
// per-client filter selections.
package explore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"changemakers-go/internal/filter"
	"changemakers-go/internal/model"
	"changemakers-go/internal/repositories"
)

var ErrSessionNotFound = errors.New("explore session not found")

// Session is one client's filter selection.
type Session struct {
	ID          string          `json:"id"`
	Selection   model.Selection `json:"selection"`
	ActiveCount int             `json:"activeFilters"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type session struct {
	state     filter.State
	updatedAt time.Time
}

type Service struct {
	repo   repositories.ProjectRepository
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewService(repo repositories.ProjectRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		logger:   logger,
		now:      time.Now,
		sessions: map[string]*session{},
	}
}

func (s *Service) Catalog() []model.FilterGroup {
	return model.Catalog()
}

// Search runs q over the whole catalog. The selection is validated first.
func (s *Service) Search(ctx context.Context, q filter.Query) ([]model.Project, error) {
	if _, err := filter.StateFrom(q.Selection); err != nil {
		return nil, err
	}
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return filter.Run(projects, q), nil
}

func (s *Service) Project(ctx context.Context, id string) (model.Project, error) {
	return s.repo.Get(ctx, id)
}

// NewProject is the input of the create-project screen. ID is optional; a
// UUID is assigned when it is empty.
type NewProject struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	FundingGoal float64 `json:"fundingGoal"`
}

// Create validates in and stores it as a new project with no funding,
// progress or volunteers yet.
func (s *Service) Create(ctx context.Context, in NewProject) (model.Project, error) {
	project := model.Project{
		ID:          strings.TrimSpace(in.ID),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Location:    strings.TrimSpace(in.Location),
		FundingGoal: in.FundingGoal,
	}
	if err := validateProject(project); err != nil {
		return model.Project{}, err
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return model.Project{}, err
	}
	s.logger.Info("project created", zap.String("project", project.ID), zap.String("title", project.Title))
	return project, nil
}

func validateProject(p model.Project) error {
	fields := map[string]string{}
	if p.Title == "" {
		fields["title"] = "Title is required"
	}
	if p.Description == "" {
		fields["description"] = "Description is required"
	}
	if p.Category == "" {
		fields["category"] = "Category is required"
	}
	if p.Location == "" {
		fields["location"] = "Location is required"
	}
	if p.FundingGoal <= 0 {
		fields["fundingGoal"] = "Funding goal must be greater than zero"
	}
	if len(fields) > 0 {
		return &model.ValidationError{Kind: "project", Fields: fields}
	}
	return nil
}

func (s *Service) NewSession() Session {
	id := uuid.NewString()
	sess := &session{state: filter.NewState(), updatedAt: s.now().UTC()}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Debug("explore session created", zap.String("session", id))
	return sess.view(id)
}

// Session returns the session's state. Reading a session counts as
// activity and keeps it from being pruned.
func (s *Service) Session(id string) (Session, error) {
	return s.update(id, func(st filter.State) (filter.State, error) {
		return st, nil
	})
}

// Select changes one dimension of the session's selection.
func (s *Service) Select(id string, d model.Dimension, option string) (Session, error) {
	return s.update(id, func(st filter.State) (filter.State, error) {
		return st.Select(d, option)
	})
}

func (s *Service) Reset(id string) (Session, error) {
	return s.update(id, func(st filter.State) (filter.State, error) {
		return st.Reset(), nil
	})
}

func (s *Service) CloseSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// SessionProjects applies the session's selection and search to the catalog.
func (s *Service) SessionProjects(ctx context.Context, id, search string) ([]model.Project, error) {
	sess, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	return s.Search(ctx, filter.Query{Selection: sess.Selection, Search: search})
}

// Prune drops sessions idle for longer than maxIdle and returns how many.
func (s *Service) Prune(maxIdle time.Duration) int {
	cutoff := s.now().UTC().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.updatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Service) update(id string, apply func(filter.State) (filter.State, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	next, err := apply(sess.state)
	if err != nil {
		return Session{}, err
	}
	sess.state = next
	sess.updatedAt = s.now().UTC()
	return sess.view(id), nil
}

func (s *session) view(id string) Session {
	return Session{
		ID:          id,
		Selection:   s.state.Selection(),
		ActiveCount: s.state.ActiveCount(),
		UpdatedAt:   s.updatedAt,
	}
}
