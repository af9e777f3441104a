package docstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Collection binds one typed JSON-array collection to its key in a Store and
// carries the degradation rules shared by every repository:
//
//   - a missing document reads as an empty collection;
//   - a malformed document reads as an empty collection (logged, never
//     surfaced to the caller);
//   - an unreadable store falls back to the last snapshot seen this session;
//   - an unwritable store keeps the in-memory effect for the session and
//     loses the persisted effect with nothing but a diagnostic log.
//
// The last snapshot also makes the lost-update contract observable: Replace
// writes whatever the caller derived from its own Load, clobbering any
// concurrent writer's document wholesale.
type Collection[T any] struct {
	store  Store
	key    string
	logger *slog.Logger

	mu    sync.Mutex
	cache []T
}

// NewCollection binds a typed collection to its storage key.
func NewCollection[T any](store Store, key string, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{store: store, key: key, logger: logger}
}

// Key returns the fixed storage key of this collection.
func (c *Collection[T]) Key() string { return c.key }

// Load reads the whole collection. It never fails: storage problems degrade
// to the session snapshot or an empty slice per the package contract.
func (c *Collection[T]) Load(ctx context.Context) []T {
	doc, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		c.logger.ErrorContext(ctx, "collection store unreadable, serving session snapshot",
			"key", c.key,
			"error", err,
		)
		return c.snapshot()
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		c.logger.WarnContext(ctx, "collection document malformed, treating as empty",
			"key", c.key,
			"error", err,
		)
		return nil
	}

	c.mu.Lock()
	c.cache = items
	c.mu.Unlock()

	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Replace writes the whole collection back. The in-memory effect always
// sticks for this session; a failed write is logged and otherwise silent.
func (c *Collection[T]) Replace(ctx context.Context, items []T) {
	c.mu.Lock()
	c.cache = items
	c.mu.Unlock()

	doc, err := json.Marshal(items)
	if err != nil {
		c.logger.ErrorContext(ctx, "collection marshal failed, persisted effect lost",
			"key", c.key,
			"error", err,
		)
		return
	}
	if err := c.store.Save(ctx, c.key, doc); err != nil {
		c.logger.ErrorContext(ctx, "collection store unwritable, persisted effect lost",
			"key", c.key,
			"error", err,
		)
	}
}

// Clear removes the persisted document and the session snapshot.
func (c *Collection[T]) Clear(ctx context.Context) {
	c.mu.Lock()
	c.cache = nil
	c.mu.Unlock()

	if err := c.store.Delete(ctx, c.key); err != nil {
		c.logger.ErrorContext(ctx, "collection delete failed",
			"key", c.key,
			"error", err,
		)
	}
}

func (c *Collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.cache))
	copy(out, c.cache)
	return out
}
