package feedsync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"changemakers-go/internal/model"
	"changemakers-go/internal/providers/common"
	"changemakers-go/internal/repositories"
)

// Service copies projects from every source into the repository and
// announces funding milestones.
type Service struct {
	repo     repositories.ProjectRepository
	notifier Notifier
	sources  []Source
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	closed  bool

	// Background runs started by Trigger share bgCtx and are joined by Close.
	bgCtx    context.Context
	bgCancel context.CancelFunc
	bg       sync.WaitGroup
}

func NewService(repo repositories.ProjectRepository, notifier Notifier, sources []Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		repo:     repo,
		notifier: notifier,
		sources:  sources,
		logger:   logger,
		bgCtx:    ctx,
		bgCancel: cancel,
	}
}

// Trigger starts a sync in the background and reports whether it did. It
// returns false once the service is closed.
func (s *Service) Trigger() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		s.Run(s.bgCtx)
	}()
	return true
}

// Close cancels background syncs started by Trigger and waits for them.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.bgCancel()
	s.bg.Wait()
}

// Run performs one sync. Overlapping calls return immediately.
func (s *Service) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Info("sync already running; skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if _, err := s.Sync(ctx); err != nil {
		s.logger.Error("sync failed", zap.Error(err))
	}
}

// Stats counts what one sync did for a single source.
type Stats struct {
	Fetched   int `json:"fetched"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// Sync fetches all sources concurrently and stores the results in source
// order. A failing source is logged and skipped.
func (s *Service) Sync(ctx context.Context) (map[string]*Stats, error) {
	s.logger.Info("sync started", zap.Int("sources", len(s.sources)))

	fetched := make([][]model.Project, len(s.sources))
	group, gctx := errgroup.WithContext(ctx)

	for i, source := range s.sources {
		i, src := i, source
		group.Go(func() error {
			projects, err := src.Fetch(gctx)
			if err != nil {
				s.logger.Warn("source fetch failed", zap.String("source", src.Name()), zap.Error(err))
				return nil
			}
			s.logger.Info("source fetched", zap.String("source", src.Name()), zap.Int("projects", len(projects)))
			fetched[i] = projects
			return nil
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("sync group error", zap.Error(err))
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}

	stats := map[string]*Stats{}
	for i, projects := range fetched {
		source := s.sources[i].Name()
		st := stats[source]
		if st == nil {
			st = &Stats{}
			stats[source] = st
		}
		st.Fetched += len(projects)

		for _, project := range projects {
			previous, created, err := s.repo.Upsert(ctx, project)
			if err != nil {
				st.Failed++
				s.logger.Warn("upsert failed", zap.String("source", source), zap.String("project", project.ID), zap.Error(err))
				continue
			}
			switch {
			case created:
				st.Created++
			case *previous == project:
				st.Unchanged++
			default:
				st.Updated++
				s.announceMilestone(*previous, project)
			}
		}
	}

	for source, st := range stats {
		s.logger.Info("sync summary",
			zap.String("source", source),
			zap.Int("fetched", st.Fetched),
			zap.Int("created", st.Created),
			zap.Int("updated", st.Updated),
			zap.Int("unchanged", st.Unchanged),
			zap.Int("failed", st.Failed),
		)
	}

	return stats, nil
}

func (s *Service) announceMilestone(previous, current model.Project) {
	if s.notifier == nil {
		return
	}
	milestone, ok := model.CrossedMilestone(previous, current)
	if !ok {
		return
	}

	message := fmt.Sprintf("%s has reached %d%% of its funding goal!", current.Title, milestone)
	if milestone == 100 {
		message = fmt.Sprintf("%s is fully funded with %s raised!", current.Title, common.FormatUSD(current.FundingRaised))
	}
	s.notifier.Notify(model.Notification{
		Type:    model.NotificationProjectUpdate,
		Title:   "Milestone Reached! 🎉",
		Message: message,
		Project: &model.Ref{Name: current.Title},
	})
	s.logger.Info("milestone reached", zap.String("project", current.ID), zap.Int("milestone", milestone))
}
