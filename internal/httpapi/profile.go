package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"changemakers-go/internal/profile"
)

type interestRequest struct {
	Interest string `json:"interest"`
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.profiles.Snapshot())
}

func (h *Handler) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	var patch profile.Patch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.profiles.Update(patch)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *Handler) handleAddInterest(w http.ResponseWriter, r *http.Request) {
	var req interestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.profiles.AddInterest(req.Interest)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *Handler) handleRemoveInterest(w http.ResponseWriter, r *http.Request) {
	updated, err := h.profiles.RemoveInterest(chi.URLParam(r, "interest"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, updated)
}
