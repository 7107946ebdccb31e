package httpapi

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"changemakers-go/internal/notifications"
	"changemakers-go/internal/profile"
	"changemakers-go/internal/services/explore"
)

// Syncer starts a background sync. Trigger reports false when syncing has
// been shut down.
type Syncer interface {
	Trigger() bool
}

type Handler struct {
	explore       *explore.Service
	profiles      *profile.Store
	notifications *notifications.Feed
	syncer        Syncer
	logger        *zap.Logger
}

func NewHandler(explore *explore.Service, profiles *profile.Store, feed *notifications.Feed, syncer Syncer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		explore:       explore,
		profiles:      profiles,
		notifications: feed,
		syncer:        syncer,
		logger:        logger,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/sync", h.handleSync)

	r.Get("/filters", h.handleFilters)
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.handleListProjects)
		r.Post("/", h.handleCreateProject)
		r.Get("/{id}", h.handleGetProject)
	})
	r.Route("/explore/sessions", func(r chi.Router) {
		r.Post("/", h.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Delete("/", h.handleCloseSession)
			r.Put("/filters/{dimension}", h.handleSelectFilter)
			r.Delete("/filters", h.handleResetFilters)
			r.Get("/projects", h.handleSessionProjects)
		})
	})
	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.handleGetProfile)
		r.Patch("/", h.handlePatchProfile)
		r.Post("/interests", h.handleAddInterest)
		r.Delete("/interests/{interest}", h.handleRemoveInterest)
	})
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleListNotifications)
		r.Post("/read", h.handleMarkAllRead)
		r.Post("/{id}/read", h.handleMarkRead)
	})

	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", pprof.Index)
		r.Get("/cmdline", pprof.Cmdline)
		r.Get("/profile", pprof.Profile)
		r.Get("/symbol", pprof.Symbol)
		r.Post("/symbol", pprof.Symbol)
		r.Get("/trace", pprof.Trace)
		r.Get("/allocs", pprof.Handler("allocs").ServeHTTP)
		r.Get("/block", pprof.Handler("block").ServeHTTP)
		r.Get("/goroutine", pprof.Handler("goroutine").ServeHTTP)
		r.Get("/heap", pprof.Handler("heap").ServeHTTP)
		r.Get("/mutex", pprof.Handler("mutex").ServeHTTP)
		r.Get("/threadcreate", pprof.Handler("threadcreate").ServeHTTP)
	})
	return r
}

func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	if !h.syncer.Trigger() {
		respondError(w, h.logger, http.StatusServiceUnavailable, "sync is shutting down")
		return
	}
	respondJSON(w, h.logger, http.StatusAccepted, map[string]string{"message": "Sync started"})
}
