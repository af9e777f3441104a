package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cora/internal/asset"
	dErrors "cora/pkg/domainerrors"
)

type stubService struct {
	registerFn       func(ctx context.Context, input asset.RegisterInput) (asset.Asset, string, error)
	generateMarkerFn func(ctx context.Context, name string) (asset.MarkerPreview, error)
	listFn           func(ctx context.Context) []asset.Asset
	getFn            func(ctx context.Context, id string) (asset.Asset, error)
}

func (s stubService) Register(ctx context.Context, input asset.RegisterInput) (asset.Asset, string, error) {
	return s.registerFn(ctx, input)
}

func (s stubService) GenerateMarker(ctx context.Context, name string) (asset.MarkerPreview, error) {
	return s.generateMarkerFn(ctx, name)
}

func (s stubService) List(ctx context.Context) []asset.Asset { return s.listFn(ctx) }

func (s stubService) Get(ctx context.Context, id string) (asset.Asset, error) {
	return s.getFn(ctx, id)
}

func newRouter(svc Service) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func TestHandleRegister(t *testing.T) {
	created := asset.Asset{
		ID:        "CORA-REAL-TEST-1234",
		Name:      "Test villa",
		Type:      asset.TypeRealEstate,
		Priority:  asset.PriorityInstantAuto,
		MarkerID:  "CORA-REAL-TEST-1234",
		CreatedAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
	r := newRouter(stubService{
		registerFn: func(_ context.Context, input asset.RegisterInput) (asset.Asset, string, error) {
			assert.Equal(t, "Test villa", input.Name)
			return created, "https://qr.test/CORA-REAL-TEST-1234", nil
		},
	})

	body, _ := json.Marshal(map[string]string{"name": "Test villa", "type": "Real estate"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/assets", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CORA-REAL-TEST-1234", resp["id"])
	assert.Equal(t, "https://qr.test/CORA-REAL-TEST-1234", resp["qrUrl"])
}

func TestHandleRegisterRejectsBadInput(t *testing.T) {
	r := newRouter(stubService{
		registerFn: func(context.Context, asset.RegisterInput) (asset.Asset, string, error) {
			return asset.Asset{}, "", dErrors.New(dErrors.CodeBadRequest, "unknown asset type")
		},
	})

	body, _ := json.Marshal(map[string]string{"type": "Spaceship"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/assets", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleList(t *testing.T) {
	r := newRouter(stubService{
		listFn: func(context.Context) []asset.Asset { return nil },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"assets":[]}`, w.Body.String())
}

func TestHandleGet(t *testing.T) {
	r := newRouter(stubService{
		getFn: func(_ context.Context, id string) (asset.Asset, error) {
			if id != "CORA-ART-PICASSO-BLUE-01" {
				return asset.Asset{}, dErrors.New(dErrors.CodeNotFound, "asset not found")
			}
			return asset.Asset{ID: id, Name: "Picasso – Blue Period work"}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/CORA-ART-PICASSO-BLUE-01", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/CORA-MISSING", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGenerateMarker(t *testing.T) {
	r := newRouter(stubService{
		generateMarkerFn: func(_ context.Context, name string) (asset.MarkerPreview, error) {
			if name == "" {
				return asset.MarkerPreview{}, dErrors.New(dErrors.CodeBadRequest, "asset name is required")
			}
			return asset.MarkerPreview{MarkerID: "CORA-GEN-POP-UP-1234", QRURL: "https://qr.test/x"}, nil
		},
	})

	body, _ := json.Marshal(map[string]string{"assetName": "Pop-up"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/markers/generate", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"markerId":"CORA-GEN-POP-UP-1234","qrUrl":"https://qr.test/x"}`, w.Body.String())

	body, _ = json.Marshal(map[string]string{"assetName": ""})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/markers/generate", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
