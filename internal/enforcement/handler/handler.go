package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cora/internal/enforcement"
	"cora/internal/incident"
	"cora/pkg/platform/httputil"
	"cora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the interface for decision operations.
type Service interface {
	Decide(ctx context.Context, incidentID string, action enforcement.Action) (incident.Incident, error)
}

// Handler handles decision endpoints. The router mounts it behind reviewer
// authentication.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new enforcement Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the decision routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/incidents/{id}/decision", h.handleDecide)
}

type decisionRequest struct {
	Action string `json:"action"`
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	incidentID := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[decisionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	action, err := enforcement.ParseAction(req.Action)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	inc, err := h.service.Decide(ctx, incidentID, action)
	if err != nil {
		h.logger.WarnContext(ctx, "decision rejected",
			"request_id", requestID,
			"incident_id", incidentID,
			"action", action,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, inc)
}
