package asset

import (
	"context"
	"strings"

	"cora/internal/asset/metrics"
	"cora/internal/audit"
	dErrors "cora/pkg/domainerrors"
	"cora/pkg/requestcontext"
)

// UntitledName is used when an asset is registered without a name.
const UntitledName = "Untitled asset"

// QRRenderer turns a marker payload into a scannable image URL.
type QRRenderer interface {
	ImageURL(payload string, size int) string
}

// RegisterInput is the caller-supplied portion of a registration.
type RegisterInput struct {
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	Priority    Priority `json:"priority"`
	Description string   `json:"description"`
}

// MarkerPreview is the result of a standalone marker generation.
type MarkerPreview struct {
	MarkerID string `json:"markerId"`
	QRURL    string `json:"qrUrl"`
}

// Service owns the registry: marker generation, registration, and lookups
// used by incident ingestion.
type Service struct {
	repo    *Repository
	qr      QRRenderer
	metrics *metrics.Metrics
	auditor *audit.Publisher
}

func NewService(repo *Repository, qr QRRenderer, m *metrics.Metrics, auditor *audit.Publisher) *Service {
	return &Service{repo: repo, qr: qr, metrics: m, auditor: auditor}
}

// Register mints a marker for the asset and prepends it to the stored
// registry. Missing fields fall back to the most protective defaults.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Asset, string, error) {
	if input.Type == "" {
		input.Type = TypePerson
	}
	if !input.Type.Valid() {
		return Asset{}, "", dErrors.New(dErrors.CodeBadRequest, "unknown asset type")
	}
	if input.Priority == "" {
		input.Priority = PriorityInstantAuto
	}
	if !input.Priority.Valid() {
		return Asset{}, "", dErrors.New(dErrors.CodeBadRequest, "unknown enforcement priority")
	}

	now := requestcontext.Now(ctx)
	id := GenerateMarkerID(input.Name, input.Type, now)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = UntitledName
	}

	created := Asset{
		ID:          id,
		Name:        name,
		Type:        input.Type,
		Priority:    input.Priority,
		Description: input.Description,
		MarkerID:    id,
		CreatedAt:   now,
	}

	// Re-registering an id replaces the prior record wholesale.
	stored := s.repo.Stored(ctx)
	kept := make([]Asset, 0, len(stored)+1)
	kept = append(kept, created)
	for _, a := range stored {
		if a.ID != created.ID {
			kept = append(kept, a)
		}
	}
	s.repo.Replace(ctx, kept)

	s.metrics.IncrementRegistered(string(created.Type))
	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionAssetRegistered,
		Subject: created.ID,
		Details: map[string]string{"name": created.Name, "priority": string(created.Priority)},
	})

	return created, s.qr.ImageURL(id, 0), nil
}

// GenerateMarker mints a marker and QR image without touching the registry.
func (s *Service) GenerateMarker(ctx context.Context, name string) (MarkerPreview, error) {
	if strings.TrimSpace(name) == "" {
		return MarkerPreview{}, dErrors.New(dErrors.CodeBadRequest, "assetName is required")
	}

	id := GenerateMarkerID(name, "", requestcontext.Now(ctx))
	s.metrics.IncrementMarkersGenerated()
	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionMarkerGenerated,
		Subject: id,
		Details: map[string]string{"name": name},
	})

	return MarkerPreview{MarkerID: id, QRURL: s.qr.ImageURL(id, 0)}, nil
}

// List returns the merged registry, newest first.
func (s *Service) List(ctx context.Context) []Asset {
	return s.repo.List(ctx)
}

// Get returns one asset from the merged registry.
func (s *Service) Get(ctx context.Context, id string) (Asset, error) {
	a, ok := s.repo.Find(ctx, id)
	if !ok {
		return Asset{}, dErrors.New(dErrors.CodeNotFound, "asset not found")
	}
	return a, nil
}

// FindByName resolves an asset by display name, ignoring case and
// surrounding whitespace. Incident ingestion uses this to tie sightings
// back to registry entries.
func (s *Service) FindByName(ctx context.Context, name string) (Asset, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return Asset{}, false
	}
	for _, a := range s.repo.List(ctx) {
		if strings.ToLower(strings.TrimSpace(a.Name)) == want {
			return a, true
		}
	}
	return Asset{}, false
}

// Reset drops every user-registered asset. Seeds remain.
func (s *Service) Reset(ctx context.Context) {
	s.repo.Clear(ctx)
}
