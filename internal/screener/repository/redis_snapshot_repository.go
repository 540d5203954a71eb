package repository

import (
	"context"
	"errors"
	"fmt"

	"golang-stock-screener/pkg/logger"
	pkgredis "golang-stock-screener/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// redisSnapshotStore keeps the snapshot in a native Redis key. The stored bytes
// are identical to what the REST backend writes, so both can share a database.
type redisSnapshotStore struct {
	client *pkgredis.Client
	log    *logger.Logger
}

// NewRedisSnapshotStore creates a SnapshotStore backed by a Redis connection.
func NewRedisSnapshotStore(client *pkgredis.Client, log *logger.Logger) SnapshotStore {
	return &redisSnapshotStore{client: client, log: log}
}

func (r *redisSnapshotStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to get key from redis", logger.StringField("key", key), logger.ErrorField(err))
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

func (r *redisSnapshotStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.log.ErrorContext(ctx, "Failed to set key in redis", logger.StringField("key", key), logger.ErrorField(err))
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks the connection used by the store.
func (r *redisSnapshotStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}
