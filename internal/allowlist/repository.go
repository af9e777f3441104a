package allowlist

import (
	"context"
	"log/slog"

	"cora/internal/docstore"
)

// StorageKey is the fixed document key of the trust store collection.
const StorageKey = "CORA_allowlist_v1"

// Repository persists allowlist entries as one whole document.
type Repository struct {
	col *docstore.Collection[Entry]
}

func NewRepository(store docstore.Store, logger *slog.Logger) *Repository {
	return &Repository{col: docstore.NewCollection[Entry](store, StorageKey, logger)}
}

// List returns every entry, newest first as saved.
func (r *Repository) List(ctx context.Context) []Entry {
	return r.col.Load(ctx)
}

// Replace writes the entries back wholesale.
func (r *Repository) Replace(ctx context.Context, entries []Entry) {
	r.col.Replace(ctx, entries)
}

// Clear drops every entry.
func (r *Repository) Clear(ctx context.Context) {
	r.col.Clear(ctx)
}
