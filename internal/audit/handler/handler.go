package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cora/internal/audit"
	"cora/pkg/platform/httputil"
	"cora/pkg/requestcontext"
)

const defaultLimit = 50
const maxLimit = 200

// Store defines the trail reads the handler needs.
type Store interface {
	Recent(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler serves the recent-activity view of the audit trail.
type Handler struct {
	logger *slog.Logger
	store  Store
}

// New creates a new audit Handler.
func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, store: store}
}

// Register registers the audit routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/recent", h.handleRecent)
}

type recentResponse struct {
	Events []audit.Event `json:"events"`
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = min(n, maxLimit)
		}
	}

	events, err := h.store.Recent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read audit trail",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, recentResponse{Events: events})
}
