package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/config"
)

// NewRedisClient builds a client from cfg and pings it with a short timeout.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisStore implements Store on Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps client. Every key is written under prefix with ttl.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (s *RedisStore) generationKey() string {
	return s.prefix + ":gen"
}

func (s *RedisStore) generation(ctx context.Context) (int64, error) {
	gen, err := s.client.Get(ctx, s.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cache generation: %w", err)
	}
	return gen, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, int64, bool, error) {
	gen, err := s.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	value, err := s.client.Get(ctx, entryKey(s.prefix, gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, fmt.Errorf("read cache entry: %w", err)
	}
	return value, gen, true, nil
}

// SetAt writes under gen as given. After an Invalidate the key belongs to an
// old generation that readers no longer look up, and it expires with its TTL.
func (s *RedisStore) SetAt(ctx context.Context, gen int64, key string, value []byte) error {
	if err := s.client.Set(ctx, entryKey(s.prefix, gen, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Invalidate bumps the generation; stale entries expire on their own TTL.
func (s *RedisStore) Invalidate(ctx context.Context) error {
	gen, err := s.client.Incr(ctx, s.generationKey()).Result()
	if err != nil {
		return fmt.Errorf("bump cache generation: %w", err)
	}
	s.logger.Debug("cache invalidated", zap.Int64("generation", gen))
	return nil
}

func entryKey(prefix string, gen int64, key string) string {
	return fmt.Sprintf("%s:%d:%s", prefix, gen, key)
}
