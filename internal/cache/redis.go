package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "analysis:"

// Redis caches responses in a redis instance.
type Redis struct {
	log    *zap.SugaredLogger
	cfg    config.RedisConfig
	client *redis.Client
}

var _ Cache = (*Redis)(nil)

// NewRedis creates a redis-backed cache.
func NewRedis(log *zap.SugaredLogger, cfg config.RedisConfig) *Redis {
	return &Redis{
		log: log.Named("cache.redis"),
		cfg: cfg,
	}
}

// OnStart connects and pings the redis server.
func (r *Redis) OnStart(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:        r.cfg.Addr(),
		Password:    r.cfg.Password,
		DB:          r.cfg.DB,
		DialTimeout: r.cfg.DialTimeout,
		ReadTimeout: r.cfg.ReadTimeout,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	r.client = client
	r.log.Infow("redis ready", "addr", r.cfg.Addr())
	return nil
}

// OnStop closes the client.
func (r *Redis) OnStop(_ context.Context) error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// Get returns the cached value and whether the key was present.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set stores a value under the key with a TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
