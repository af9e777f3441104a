package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cora/internal/allowlist"
	"cora/pkg/platform/httputil"
	"cora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the interface for trust store operations.
type Service interface {
	Add(ctx context.Context, input allowlist.AddInput) (allowlist.Entry, error)
	Remove(ctx context.Context, id string)
	List(ctx context.Context) []allowlist.Entry
}

// Handler handles trust store endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new allowlist Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the allowlist routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/allowlist", h.handleList)
	r.Post("/allowlist", h.handleAdd)
	r.Delete("/allowlist/{id}", h.handleRemove)
}

type listResponse struct {
	Entries []allowlist.Entry `json:"entries"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	entries := h.service.List(r.Context())
	if entries == nil {
		entries = []allowlist.Entry{}
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse{Entries: entries})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	input, ok := httputil.DecodeAndPrepare[allowlist.AddInput](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	entry, err := h.service.Add(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "allowlist add rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "uploader allowlisted",
		"request_id", requestID,
		"entry_id", entry.ID,
		"platform", entry.Platform,
	)
	httputil.WriteJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.service.Remove(ctx, chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
