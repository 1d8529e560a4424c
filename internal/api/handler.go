// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/winexplorer/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	explorer *service.ExplorerService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(explorer *service.ExplorerService, logger *slog.Logger) *Handler {
	return &Handler{
		explorer: explorer,
		logger:   logger,
	}
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Folder not found"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, ErrorResponse{Detail: detail})
}

// handleServiceError maps explorer errors onto HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, entity string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, service.ErrNotAFolder):
		respondError(w, http.StatusBadRequest, "Item is not a folder")
	default:
		h.logger.Error("explorer error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
