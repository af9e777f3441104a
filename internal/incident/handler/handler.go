package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cora/internal/classifier"
	"cora/internal/incident"
	"cora/pkg/platform/httputil"
	"cora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the interface for incident operations.
type Service interface {
	Ingest(ctx context.Context, raw incident.RawDetection) (incident.Incident, error)
	List(ctx context.Context) []incident.Incident
	Get(ctx context.Context, id string) (incident.Incident, error)
}

// Handler handles incident endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new incident Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the incident routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/incidents", h.handleList)
	r.Get("/incidents/{id}", h.handleGet)
	r.Post("/incidents", h.handleReport)
}

type listResponse struct {
	Incidents []incident.Incident `json:"incidents"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	incidents := h.service.List(r.Context())
	if incidents == nil {
		incidents = []incident.Incident{}
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse{Incidents: incidents})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	inc, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inc)
}

// reportRequest is a manually logged hit. Field names mirror the original
// simulation form.
type reportRequest struct {
	Platform     string `json:"platform"`
	Asset        string `json:"asset"`
	MarkerID     string `json:"markerId"`
	Uploader     string `json:"uploader"`
	Type         string `json:"type"`
	Authenticity string `json:"authenticity"`
	SourceURL    string `json:"sourceUrl"`
	ContentType  string `json:"contentType"`
	Notes        string `json:"notes"`
}

// cueFromReport maps the report's free-form authenticity and type fields to
// a classifier cue. Synthetic signals outrank a generic spoof suspicion.
func cueFromReport(reportType, authenticity string) classifier.Cue {
	switch authenticity {
	case "Synthetic / deepfake risk":
		return classifier.CueSyntheticRender
	case "Original":
		return classifier.CueMarkerConfirmed
	}
	if reportType == "Spoof suspected" {
		return classifier.CueMarkerMismatch
	}
	return classifier.CueNone
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[reportRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	inc, err := h.service.Ingest(ctx, incident.RawDetection{
		MarkerID:    req.MarkerID,
		AssetName:   req.Asset,
		Platform:    req.Platform,
		Uploader:    req.Uploader,
		SourceURL:   req.SourceURL,
		ContentType: req.ContentType,
		Cue:         cueFromReport(req.Type, req.Authenticity),
		Notes:       req.Notes,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "manual report ingestion failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "manual report ingested",
		"request_id", requestID,
		"incident_id", inc.ID,
		"status", inc.Status,
	)
	httputil.WriteJSON(w, http.StatusCreated, inc)
}
