package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/safenotes/safenotes/internal/common"
)

const keyPrefix = "page:"

// RedisRepository keeps pages in Redis; expiry rides on the key TTL, so no
// separate cleanup is needed.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// NewRedisClient connects to the page store.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func (r *RedisRepository) Save(ctx context.Context, id, html string, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+id, html, ttl).Err(); err != nil {
		return fmt.Errorf("error performing redis request: %w", err)
	}
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, id string) (string, error) {
	html, err := r.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("error performing redis request: %w", err)
	}
	return html, nil
}
