package refreshtokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "refresh:"

// RedisRepository implements the outstanding set on Redis. Keys carry the
// refresh lifetime as TTL, so revoked-by-expiry tokens leave the set without
// an explicit cleanup pass.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository constructs a repository bound to the given Redis client.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// Add records token for email with a TTL of validity.
func (r *RedisRepository) Add(ctx context.Context, email, token string, validity time.Duration) error {
	if err := r.client.Set(ctx, redisKeyPrefix+token, email, validity).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

// Contains reports whether token is in the outstanding set.
func (r *RedisRepository) Contains(ctx context.Context, token string) (bool, error) {
	if err := r.client.Get(ctx, redisKeyPrefix+token).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis error: %w", err)
	}
	return true, nil
}

// Remove deletes token from the outstanding set. Idempotent.
func (r *RedisRepository) Remove(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}
