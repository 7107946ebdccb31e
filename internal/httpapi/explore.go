package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"changemakers-go/internal/filter"
	"changemakers-go/internal/model"
)

type selectRequest struct {
	Option string `json:"option"`
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusCreated, h.explore.NewSession())
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.explore.Session(chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, sess)
}

func (h *Handler) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	h.explore.CloseSession(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSelectFilter(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "dimension")
	dim, ok := model.ParseDimension(raw)
	if !ok {
		h.respondErr(w, fmt.Errorf("%w: %q", filter.ErrUnknownDimension, raw))
		return
	}

	var req selectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.explore.Select(chi.URLParam(r, "id"), dim, req.Option)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, sess)
}

func (h *Handler) handleResetFilters(w http.ResponseWriter, r *http.Request) {
	sess, err := h.explore.Reset(chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, sess)
}

func (h *Handler) handleSessionProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.explore.SessionProjects(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("q"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, projectList{Projects: projects, Count: len(projects)})
}
