package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cora/internal/incident"
	"cora/pkg/platform/httputil"
	"cora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the interface for scan operations.
type Service interface {
	Run(ctx context.Context) ([]incident.Incident, error)
}

// Handler handles the scan trigger endpoint.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new scan Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the scan routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/scan/run", h.handleRun)
}

type runResponse struct {
	Incidents []incident.Incident `json:"incidents"`
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	batch, err := h.service.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "simulated scan failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if batch == nil {
		batch = []incident.Incident{}
	}
	httputil.WriteJSON(w, http.StatusCreated, runResponse{Incidents: batch})
}
