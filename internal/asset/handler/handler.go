package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"cora/internal/asset"
	dErrors "cora/pkg/domainerrors"
	"cora/pkg/platform/httputil"
	"cora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the interface for registry operations.
type Service interface {
	Register(ctx context.Context, input asset.RegisterInput) (asset.Asset, string, error)
	GenerateMarker(ctx context.Context, name string) (asset.MarkerPreview, error)
	List(ctx context.Context) []asset.Asset
	Get(ctx context.Context, id string) (asset.Asset, error)
}

// Handler handles asset registry endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new registry Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the registry routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/assets", h.handleList)
	r.Post("/assets", h.handleRegister)
	r.Get("/assets/{id}", h.handleGet)
	r.Post("/markers/generate", h.handleGenerateMarker)
}

type listResponse struct {
	Assets []asset.Asset `json:"assets"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	assets := h.service.List(r.Context())
	if assets == nil {
		assets = []asset.Asset{}
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse{Assets: assets})
}

type registerResponse struct {
	asset.Asset
	QRURL string `json:"qrUrl"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	input, ok := httputil.DecodeAndPrepare[asset.RegisterInput](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	created, qrURL, err := h.service.Register(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "asset registration rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "asset registered",
		"request_id", requestID,
		"asset_id", created.ID,
		"priority", created.Priority,
	)
	httputil.WriteJSON(w, http.StatusCreated, registerResponse{Asset: created, QRURL: qrURL})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

type generateMarkerRequest struct {
	AssetName string `json:"assetName"`
}

func (h *Handler) handleGenerateMarker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[generateMarkerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	preview, err := h.service.GenerateMarker(ctx, req.AssetName)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeBadRequest) {
			h.logger.WarnContext(ctx, "marker generation rejected",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, preview)
}
