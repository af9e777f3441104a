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

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cora/internal/enforcement"
	"cora/internal/incident"
	dErrors "cora/pkg/domainerrors"
)

type stubService struct {
	decideFn func(ctx context.Context, incidentID string, action enforcement.Action) (incident.Incident, error)
}

func (s stubService) Decide(ctx context.Context, incidentID string, action enforcement.Action) (incident.Incident, error) {
	return s.decideFn(ctx, incidentID, action)
}

func newRouter(svc Service) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func postDecision(r chi.Router, incidentID, action string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"action": action})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/incidents/"+incidentID+"/decision", bytes.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestHandleDecide(t *testing.T) {
	r := newRouter(stubService{
		decideFn: func(_ context.Context, incidentID string, action enforcement.Action) (incident.Incident, error) {
			assert.Equal(t, "INC-1", incidentID)
			assert.Equal(t, enforcement.ActionFileTakedown, action)
			return incident.Incident{
				ID:          incidentID,
				Status:      incident.StatusEscalatedTakedownFiled,
				StatusLabel: incident.StatusLabelEscalated,
			}, nil
		},
	})

	w := postDecision(r, "INC-1", "file_takedown")

	require.Equal(t, http.StatusOK, w.Code)
	var resp incident.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incident.StatusEscalatedTakedownFiled, resp.Status)
	assert.Equal(t, "Escalated – takedown filed", resp.StatusLabel)
}

func TestHandleDecideUnknownAction(t *testing.T) {
	r := newRouter(stubService{
		decideFn: func(context.Context, string, enforcement.Action) (incident.Incident, error) {
			t.Fatal("service must not be called for an unknown action")
			return incident.Incident{}, nil
		},
	})

	w := postDecision(r, "INC-1", "dismiss")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDecideOnFiledTakedown(t *testing.T) {
	r := newRouter(stubService{
		decideFn: func(context.Context, string, enforcement.Action) (incident.Incident, error) {
			return incident.Incident{}, dErrors.New(dErrors.CodeInvalidState, "a takedown has already been filed for this incident")
		},
	})

	w := postDecision(r, "INC-1", "keep_enforcement")
	assert.Equal(t, http.StatusConflict, w.Code)
}
