package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"changemakers-go/internal/filter"
	"changemakers-go/internal/model"
	"changemakers-go/internal/services/explore"
)

type projectList struct {
	Projects []model.Project `json:"projects"`
	Count    int             `json:"count"`
}

func (h *Handler) handleFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.explore.Catalog())
}

// handleListProjects reads one query parameter per dimension plus q.
func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sel := model.DefaultSelection()
	for _, d := range model.Dimensions {
		if v := query.Get(string(d)); v != "" {
			sel[d] = v
		}
	}

	projects, err := h.explore.Search(r.Context(), filter.Query{Selection: sel, Search: query.Get("q")})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, projectList{Projects: projects, Count: len(projects)})
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.explore.Project(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, project)
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in explore.NewProject
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.explore.Create(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, project)
}
