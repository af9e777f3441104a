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

	"cora/internal/allowlist"
	dErrors "cora/pkg/domainerrors"
)

type stubService struct {
	addFn    func(ctx context.Context, input allowlist.AddInput) (allowlist.Entry, error)
	removeFn func(ctx context.Context, id string)
	listFn   func(ctx context.Context) []allowlist.Entry
}

func (s stubService) Add(ctx context.Context, input allowlist.AddInput) (allowlist.Entry, error) {
	return s.addFn(ctx, input)
}

func (s stubService) Remove(ctx context.Context, id string) { s.removeFn(ctx, id) }

func (s stubService) List(ctx context.Context) []allowlist.Entry { return s.listFn(ctx) }

func newRouter(svc Service) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func TestHandleAdd(t *testing.T) {
	r := newRouter(stubService{
		addFn: func(_ context.Context, input allowlist.AddInput) (allowlist.Entry, error) {
			assert.Equal(t, "@official_press", input.Handle)
			return allowlist.Entry{
				ID:        "ALW-1767260401234-0042",
				Handle:    input.Handle,
				Platform:  allowlist.PlatformInstagram,
				CreatedAt: time.Date(2026, time.January, 1, 10, 0, 1, 0, time.UTC),
			}, nil
		},
	})

	body, _ := json.Marshal(map[string]string{"handle": "@official_press", "platform": "Instagram"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/allowlist", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var entry allowlist.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "ALW-1767260401234-0042", entry.ID)
}

func TestHandleAddDuplicate(t *testing.T) {
	r := newRouter(stubService{
		addFn: func(context.Context, allowlist.AddInput) (allowlist.Entry, error) {
			return allowlist.Entry{}, dErrors.New(dErrors.CodeDuplicateEntry, "this uploader is already on your allowlist for this platform")
		},
	})

	body, _ := json.Marshal(map[string]string{"handle": "@official_press"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/allowlist", bytes.NewReader(body)))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleRemove(t *testing.T) {
	var removed string
	r := newRouter(stubService{
		removeFn: func(_ context.Context, id string) { removed = id },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/allowlist/ALW-1-0001", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "ALW-1-0001", removed)
}

func TestHandleListEmpty(t *testing.T) {
	r := newRouter(stubService{
		listFn: func(context.Context) []allowlist.Entry { return nil },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/allowlist", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
}
