package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis stores each document as a plain string value.
type Redis struct {
	conn *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{conn: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.conn.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return raw, err
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.conn.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Del(ctx context.Context, key string) error {
	return r.conn.Del(ctx, key).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx).Err()
}
