package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cora/pkg/sentinel"
)

// Postgres keeps each collection as a single jsonb document in one row.
// The table is intentionally a key-value surface, not a relational model:
// callers get the same whole-document last-write-wins semantics as the
// Redis and in-memory backends.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database and ensures the collections table.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS collections (
			key        text PRIMARY KEY,
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure collections table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var doc []byte
	err := p.pool.QueryRow(ctx, `SELECT doc FROM collections WHERE key = $1`, key).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select collection %q: %w", key, errors.Join(sentinel.ErrUnavailable, err))
	}
	return doc, true, nil
}

func (p *Postgres) Save(ctx context.Context, key string, doc []byte) error {
	const query = `
		INSERT INTO collections (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`
	if _, err := p.pool.Exec(ctx, query, key, doc); err != nil {
		return fmt.Errorf("upsert collection %q: %w", key, errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM collections WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete collection %q: %w", key, errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
