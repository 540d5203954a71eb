package repository

import (
	"context"

	"golang-stock-screener/internal/screener/config"
	"golang-stock-screener/pkg/common"
	"golang-stock-screener/pkg/logger"
	"golang-stock-screener/pkg/redis"
)

// SnapshotStore reads and writes string values under a key. Values are opaque to the store.
type SnapshotStore interface {
	// Get returns the value under key; found is false when the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key, value string) error
}

// Pinger is implemented by stores that hold a connection worth checking at startup.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewSnapshotStore builds the store selected by cfg.Backend. Without credentials it
// returns a store that fails every call; callers are expected to check
// cfg.Configured() before any I/O.
func NewSnapshotStore(cfg config.KV, log *logger.Logger) (SnapshotStore, error) {
	if !cfg.Configured() {
		return unconfiguredStore{}, nil
	}

	switch cfg.Backend {
	case common.KVBackendRedis:
		client, err := redis.NewClient(redis.Config{
			URL:      cfg.RestAPIURL,
			Password: cfg.RestAPIToken,
			PoolSize: cfg.PoolSize,
			Timeout:  cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return NewRedisSnapshotStore(client, log), nil
	default:
		return NewKVRestRepository(cfg, log), nil
	}
}

type unconfiguredStore struct{}

func (unconfiguredStore) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrStoreNotConfigured
}

func (unconfiguredStore) Set(context.Context, string, string) error {
	return ErrStoreNotConfigured
}
