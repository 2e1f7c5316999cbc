package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"comunidad/pkg/platform/sentinel"
)

const redisKeyPrefix = "comunidad:"

// Redis is a go-redis backed KV for deployments where the portal state lives
// in shared infrastructure. Keys are namespaced; values have no TTL because
// collections are durable.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Read(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: redis read %s: %v", sentinel.ErrUnavailable, key, err)
	}
	return value, true, nil
}

func (r *Redis) Write(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis write %s: %v", sentinel.ErrUnavailable, key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: redis delete %s: %v", sentinel.ErrUnavailable, key, err)
	}
	return nil
}
