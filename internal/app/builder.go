package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"changemakers-go/internal/config"
	"changemakers-go/internal/db"
	"changemakers-go/internal/httpapi"
	"changemakers-go/internal/notifications"
	"changemakers-go/internal/profile"
	"changemakers-go/internal/providers/feed"
	"changemakers-go/internal/providers/seed"
	"changemakers-go/internal/repositories"
	"changemakers-go/internal/repositories/memory"
	"changemakers-go/internal/repositories/postgres"
	"changemakers-go/internal/scheduler"
	"changemakers-go/internal/services/explore"
	"changemakers-go/internal/services/feedsync"
	"changemakers-go/internal/telegram"
)

type Builder struct {
	cfg          *config.Config
	basePath     string
	ensureSchema bool
	logger       *zap.Logger

	pool     *pgxpool.Pool
	repo     repositories.ProjectRepository
	profiles *profile.Store
	feed     *notifications.Feed
	notifier feedsync.Notifier
	sources  []feedsync.Source
	client   *http.Client

	scheduler *scheduler.Scheduler
	server    *http.Server
}

type BuilderOption func(*Builder)

func NewBuilder(cfg *config.Config, options ...BuilderOption) *Builder {
	builder := &Builder{
		cfg:          cfg,
		ensureSchema: true,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func WithBasePath(basePath string) BuilderOption {
	return func(b *Builder) {
		b.basePath = basePath
	}
}

func WithEnsureSchema(enabled bool) BuilderOption {
	return func(b *Builder) {
		b.ensureSchema = enabled
	}
}

func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

func WithDBPool(pool *pgxpool.Pool) BuilderOption {
	return func(b *Builder) {
		b.pool = pool
	}
}

func WithRepository(repo repositories.ProjectRepository) BuilderOption {
	return func(b *Builder) {
		b.repo = repo
	}
}

func WithProfileStore(store *profile.Store) BuilderOption {
	return func(b *Builder) {
		b.profiles = store
	}
}

// WithNotificationFeed replaces the in-app feed, which otherwise starts with
// the sample inbox.
func WithNotificationFeed(feed *notifications.Feed) BuilderOption {
	return func(b *Builder) {
		b.feed = feed
	}
}

// WithNotifier adds an extra notifier alongside the in-app feed.
func WithNotifier(notifier feedsync.Notifier) BuilderOption {
	return func(b *Builder) {
		b.notifier = notifier
	}
}

func WithSources(sources []feedsync.Source) BuilderOption {
	return func(b *Builder) {
		b.sources = sources
	}
}

func WithHTTPClient(client *http.Client) BuilderOption {
	return func(b *Builder) {
		b.client = client
	}
}

func WithScheduler(scheduler *scheduler.Scheduler) BuilderOption {
	return func(b *Builder) {
		b.scheduler = scheduler
	}
}

func WithHTTPServer(server *http.Server) BuilderOption {
	return func(b *Builder) {
		b.server = server
	}
}

func (b *Builder) Build(ctx context.Context) (*App, error) {
	if b.cfg == nil {
		return nil, errors.New("config is required")
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	basePath := b.basePath
	if basePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		basePath = wd
	}
	basePath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	app := &App{Config: b.cfg, Logger: b.logger}

	if b.repo == nil {
		repo, err := b.buildRepository(ctx, app, basePath)
		if err != nil {
			return nil, err
		}
		b.repo = repo
	}
	app.Repo = b.repo

	if b.profiles == nil {
		b.profiles = profile.NewStore(profile.Sample(), b.logger.Named("profile"))
	}
	app.Profiles = b.profiles

	if b.feed == nil {
		b.feed = notifications.NewFeed(notifications.Sample(time.Now())...)
	}
	app.Notifications = b.feed
	fanout := notifications.Multi{app.Notifications}
	if b.notifier != nil {
		fanout = append(fanout, b.notifier)
	}
	if b.notifier == nil && b.cfg.TelegramEnabled() {
		app.Telegram = telegram.NewSender(b.cfg.TelegramToken, b.cfg.TelegramChat, b.cfg.TelegramThreadID,
			telegram.WithLogger(b.logger.Named("telegram")),
		)
		fanout = append(fanout, app.Telegram)
	}
	app.Notifier = fanout

	if b.client == nil {
		b.client = &http.Client{Timeout: 15 * time.Second}
	}

	if b.sources == nil {
		seedPath := b.cfg.SeedPath
		if !filepath.IsAbs(seedPath) {
			seedPath = filepath.Join(basePath, seedPath)
		}
		b.sources = []feedsync.Source{seed.NewSource(seedPath)}
		if b.cfg.FeedURL != "" {
			b.sources = append(b.sources, feed.NewSource(b.client, b.cfg.FeedURL, b.logger.Named("feed")))
		}
	}
	app.Sources = b.sources

	app.SyncService = feedsync.NewService(app.Repo, app.Notifier, app.Sources, b.logger.Named("sync"))
	app.Explore = explore.NewService(app.Repo, b.logger.Named("explore"))

	if b.scheduler == nil {
		b.scheduler = scheduler.New(b.cfg.SyncCron, app.SyncService, app.Explore, b.cfg.SessionTTL, b.logger.Named("scheduler"))
	}
	app.Scheduler = b.scheduler

	if b.server == nil {
		handler := httpapi.NewHandler(app.Explore, app.Profiles, app.Notifications, app.SyncService, b.logger.Named("http"))
		b.server = &http.Server{
			Addr:              ":" + b.cfg.HTTPPort,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	app.Server = b.server

	return app, nil
}

func (b *Builder) buildRepository(ctx context.Context, app *App, basePath string) (repositories.ProjectRepository, error) {
	if b.cfg.Storage != config.StoragePostgres {
		return memory.NewProjectRepository(), nil
	}

	if b.pool == nil {
		pool, err := db.NewPool(ctx, b.cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		b.pool = pool
		app.ownsPool = true
	}
	app.Pool = b.pool

	if b.ensureSchema {
		if err := db.EnsureSchema(ctx, b.pool, basePath); err != nil {
			if app.ownsPool {
				b.pool.Close()
			}
			return nil, err
		}
	}
	return postgres.NewProjectRepository(b.pool), nil
}
