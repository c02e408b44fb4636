package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

const denylistPrefix = "scheduler:revoked:"

// Denylist records token ids invalidated by logout. Entries expire with
// the token so the set stays bounded.
type Denylist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDenylist builds a denylist backed by the given Redis connection.
// Returns nil when Redis is not configured; callers treat nil as "no
// revocation".
func (r *Redis) NewDenylist(ttl time.Duration) *Denylist {
	if r == nil || r.Client == nil {
		return nil
	}
	return &Denylist{client: r.Client, ttl: ttl}
}

// Revoke marks a token id as invalid.
func (d *Denylist) Revoke(ctx context.Context, tokenID string) error {
	if d == nil {
		return nil
	}
	return d.client.Set(ctx, denylistPrefix+tokenID, "1", d.ttl).Err()
}

// IsRevoked reports whether the token id has been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d == nil {
		return false, nil
	}
	n, err := d.client.Exists(ctx, denylistPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
