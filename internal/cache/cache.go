// Package cache provides a response cache with pluggable backends.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/config"

	"go.uber.org/zap"
)

// Cache stores serialized analysis responses keyed by repository and kind.
type Cache interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// New constructs a cache backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Cache, error) {
	switch name {
	case "redis":
		return NewRedis(log, cfg.Redis), nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", name)
	}
}
