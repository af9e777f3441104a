package incident

import (
	"context"
	"log/slog"

	"cora/internal/docstore"
	"cora/pkg/requestcontext"
)

// StorageKey is the fixed document key of the incident collection.
const StorageKey = "CORA_incidents_v1"

// Repository persists incidents as one whole document, newest first. A read
// that comes back absent, malformed, or empty reseeds the collection with
// the reference incidents.
type Repository struct {
	col    *docstore.Collection[Incident]
	logger *slog.Logger
}

func NewRepository(store docstore.Store, logger *slog.Logger) *Repository {
	return &Repository{
		col:    docstore.NewCollection[Incident](store, StorageKey, logger),
		logger: logger,
	}
}

// List returns the whole collection, seeding it first when empty.
func (r *Repository) List(ctx context.Context) []Incident {
	incidents := r.col.Load(ctx)
	if len(incidents) > 0 {
		return incidents
	}

	seeded := Seeds(requestcontext.Now(ctx))
	r.logger.InfoContext(ctx, "incident collection empty, seeding reference incidents",
		"count", len(seeded),
	)
	r.col.Replace(ctx, seeded)
	return seeded
}

// Find locates one incident by id.
func (r *Repository) Find(ctx context.Context, id string) (Incident, bool) {
	for _, inc := range r.List(ctx) {
		if inc.ID == id {
			return inc, true
		}
	}
	return Incident{}, false
}

// Prepend inserts new incidents at the head of the collection.
func (r *Repository) Prepend(ctx context.Context, incidents ...Incident) {
	existing := r.List(ctx)
	r.col.Replace(ctx, append(incidents, existing...))
}

// ReplaceAll writes the whole collection back. Enforcement transitions use
// this for their read-modify-write cycle.
func (r *Repository) ReplaceAll(ctx context.Context, incidents []Incident) {
	r.col.Replace(ctx, incidents)
}

// Reset drops the stored collection; the next read reseeds it.
func (r *Repository) Reset(ctx context.Context) {
	r.col.Clear(ctx)
}
