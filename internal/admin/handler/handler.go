package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cora/pkg/platform/httputil"
)

// Service defines the interface for administrative operations.
type Service interface {
	ResetDashboard(ctx context.Context)
}

// Handler handles administrative endpoints. The router mounts it behind the
// admin-key middleware.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new admin Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the admin routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/reset", h.handleReset)
}

type resetResponse struct {
	Status string `json:"status"`
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.service.ResetDashboard(r.Context())
	httputil.WriteJSON(w, http.StatusOK, resetResponse{Status: "reset"})
}
