package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"cora/pkg/sentinel"
)

var redisOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "cora_docstore_redis_op_duration_seconds",
	Help:    "Latency of whole-document load/save operations against Redis",
	Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
}, []string{"op"})

// Redis stores each collection as one value under its key, mirroring the
// localStorage model this store replaces. Documents never expire.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis constructs a Redis-backed document store. The prefix namespaces
// collection keys so several deployments can share one database.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	defer func() {
		redisOpDuration.WithLabelValues("load").Observe(time.Since(start).Seconds())
	}()

	doc, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, errors.Join(sentinel.ErrUnavailable, err))
	}
	return doc, true, nil
}

func (r *Redis) Save(ctx context.Context, key string, doc []byte) error {
	start := time.Now()
	defer func() {
		redisOpDuration.WithLabelValues("save").Observe(time.Since(start).Seconds())
	}()

	if err := r.client.Set(ctx, r.key(key), doc, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}
