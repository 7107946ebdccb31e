package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Syncer is the job run on the sync schedule.
type Syncer interface {
	Run(ctx context.Context)
}

// Pruner drops idle explore sessions.
type Pruner interface {
	Prune(maxIdle time.Duration) int
}

type Scheduler struct {
	cron       *cron.Cron
	syncer     Syncer
	pruner     Pruner
	spec       string
	sessionTTL time.Duration
	logger     *zap.Logger
}

func New(spec string, syncer Syncer, pruner Pruner, sessionTTL time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:       cron.New(),
		syncer:     syncer,
		pruner:     pruner,
		spec:       spec,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.logger.Info("scheduled sync triggered")
		s.syncer.Run(context.Background())
	})
	if err != nil {
		return err
	}

	if s.pruner != nil && s.sessionTTL > 0 {
		_, err = s.cron.AddFunc("@every 15m", func() {
			if removed := s.pruner.Prune(s.sessionTTL); removed > 0 {
				s.logger.Info("idle explore sessions pruned", zap.Int("removed", removed))
			}
		})
		if err != nil {
			return err
		}
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
