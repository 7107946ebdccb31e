package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"changemakers-go/internal/config"
	"changemakers-go/internal/notifications"
	"changemakers-go/internal/profile"
	"changemakers-go/internal/repositories"
	"changemakers-go/internal/scheduler"
	"changemakers-go/internal/services/explore"
	"changemakers-go/internal/services/feedsync"
	"changemakers-go/internal/telegram"
)

type App struct {
	Config        *config.Config
	Logger        *zap.Logger
	Pool          *pgxpool.Pool
	Repo          repositories.ProjectRepository
	Profiles      *profile.Store
	Notifications *notifications.Feed
	Notifier      feedsync.Notifier
	Telegram      *telegram.Sender
	Sources       []feedsync.Source
	SyncService   *feedsync.Service
	Explore       *explore.Service
	Scheduler     *scheduler.Scheduler
	Server        *http.Server

	ownsPool bool
}

// Start runs an initial sync, then starts the scheduler and HTTP server.
func (a *App) Start(ctx context.Context) error {
	a.SyncService.Run(ctx)

	if err := a.Scheduler.Start(); err != nil {
		return err
	}

	go func() {
		a.Logger.Info("HTTP server listening", zap.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Fatal("http server error", zap.Error(err))
		}
	}()

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.Scheduler.Stop()
	if err := a.Server.Shutdown(ctx); err != nil {
		return err
	}
	a.SyncService.Close()
	if a.Telegram != nil {
		a.Telegram.Close()
	}
	if a.ownsPool {
		a.Pool.Close()
	}
	return nil
}
