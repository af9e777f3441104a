package asset

import (
	"context"
	"log/slog"
	"sort"

	"cora/internal/docstore"
)

// StorageKey is the fixed document key of the registry collection.
const StorageKey = "cora_assets_registry_v1"

// Repository persists user-registered assets as one whole document and
// overlays the permanent seed entries at read time. Seeds are never written
// back, which is what lets them survive a reset of the stored document.
type Repository struct {
	col *docstore.Collection[Asset]
}

func NewRepository(store docstore.Store, logger *slog.Logger) *Repository {
	return &Repository{col: docstore.NewCollection[Asset](store, StorageKey, logger)}
}

// Stored returns only the user-registered entries, newest first as saved.
func (r *Repository) Stored(ctx context.Context) []Asset {
	return r.col.Load(ctx)
}

// Replace writes the user-registered entries back wholesale.
func (r *Repository) Replace(ctx context.Context, assets []Asset) {
	r.col.Replace(ctx, assets)
}

// Clear drops every user-registered entry. Seeds are unaffected.
func (r *Repository) Clear(ctx context.Context) {
	r.col.Clear(ctx)
}

// List merges seeds with stored entries and sorts newest first. Stored
// entries are saved newest first, so on a duplicate id the first occurrence
// is the latest registration and wins. A stored entry sharing a seed's
// identifier replaces the seed, but the id stays flagged permanent so it
// keeps surviving resets.
func (r *Repository) List(ctx context.Context) []Asset {
	byID := make(map[string]Asset)
	order := make([]string, 0, 8)

	seedIDs := make(map[string]bool, 5)
	for _, a := range Seeds() {
		byID[a.ID] = a
		order = append(order, a.ID)
		seedIDs[a.ID] = true
	}
	fromStored := make(map[string]bool)
	for _, a := range r.Stored(ctx) {
		if a.ID == "" || fromStored[a.ID] {
			continue
		}
		fromStored[a.ID] = true
		if _, seen := byID[a.ID]; !seen {
			order = append(order, a.ID)
		} else if seedIDs[a.ID] {
			a.IsDefault = true
		}
		byID[a.ID] = a
	}

	combined := make([]Asset, 0, len(order))
	for _, id := range order {
		combined = append(combined, byID[id])
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].CreatedAt.After(combined[j].CreatedAt)
	})
	return combined
}

// Find returns the asset with the given identifier from the merged view.
func (r *Repository) Find(ctx context.Context, id string) (Asset, bool) {
	for _, a := range r.List(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}
