// Package tokenstore keeps the ids of live refresh tokens.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
)

const keyPrefix = "refresh:"

// commands is the part of *redis.Client the store uses.
type commands interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisStore struct {
	rdb commands
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Save records jti for userID until ttl elapses.
func (s *RedisStore) Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(jti), userID, ttl).Err()
}

// Consume deletes jti and returns its owner. A jti can be consumed once;
// unknown or already used ids give domain.ErrNotFound.
func (s *RedisStore) Consume(ctx context.Context, jti string) (uint, error) {
	val, err := s.rdb.GetDel(ctx, key(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("refresh token %s: bad owner %q: %w", jti, val, err)
	}
	return uint(id), nil
}

func (s *RedisStore) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, key(jti)).Err()
}

func key(jti string) string {
	return keyPrefix + jti
}
