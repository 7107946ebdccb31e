package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"changemakers-go/internal/filter"
	"changemakers-go/internal/model"
	"changemakers-go/internal/notifications"
	"changemakers-go/internal/repositories"
	"changemakers-go/internal/services/explore"
)

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("encode response", zap.Error(err))
	}
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, errorBody{Error: message})
}

// respondErr maps domain errors to HTTP status codes.
func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, h.logger, http.StatusUnprocessableEntity, errorBody{Error: "invalid " + verr.Kind, Fields: verr.Fields})
	case errors.Is(err, repositories.ErrAlreadyExists):
		respondError(w, h.logger, http.StatusConflict, err.Error())
	case errors.Is(err, filter.ErrUnknownDimension), errors.Is(err, filter.ErrUnknownOption):
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, explore.ErrSessionNotFound),
		errors.Is(err, notifications.ErrNotFound):
		respondError(w, h.logger, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
