package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/golang/snappy"
	"github.com/redis/go-redis/v9"
)

// RedisConfig represents Redis store configuration
type RedisConfig struct {
	URL       string // Redis URL (e.g. redis://localhost:6379)
	DB        int    // Database number when URL carries none
	KeyPrefix string // Prefix for curve keys (default: windpower)
}

// RedisStore implements Store using Redis. Curve payloads are JSON
// encoded and snappy compressed; an index set tracks stored names.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a new Redis-backed store and verifies the connection
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opts = &redis.Options{
			Addr: cfg.URL,
			DB:   cfg.DB,
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "windpower"
	}

	return &RedisStore{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

func (s *RedisStore) curveKey(name string) string {
	return fmt.Sprintf("%s:turbine:%s", s.keyPrefix, name)
}

func (s *RedisStore) indexKey() string {
	return fmt.Sprintf("%s:turbines", s.keyPrefix)
}

// Save stores or replaces a turbine curve
func (s *RedisStore) Save(ctx context.Context, tc TurbineCurve) error {
	payload, err := json.Marshal(tc)
	if err != nil {
		return fmt.Errorf("failed to encode turbine curve %s: %w", tc.Name, err)
	}

	compressed := snappy.Encode(nil, payload)

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.curveKey(tc.Name), compressed, 0)
	pipe.SAdd(ctx, s.indexKey(), tc.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save turbine curve %s: %w", tc.Name, err)
	}

	return nil
}

// Get returns a turbine curve by name
func (s *RedisStore) Get(ctx context.Context, name string) (TurbineCurve, error) {
	compressed, err := s.client.Get(ctx, s.curveKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return TurbineCurve{}, ErrNotFound
		}
		return TurbineCurve{}, fmt.Errorf("failed to read turbine curve %s: %w", name, err)
	}

	payload, err := snappy.Decode(nil, compressed)
	if err != nil {
		return TurbineCurve{}, fmt.Errorf("failed to decompress turbine curve %s: %w", name, err)
	}

	var tc TurbineCurve
	if err := json.Unmarshal(payload, &tc); err != nil {
		return TurbineCurve{}, fmt.Errorf("failed to decode turbine curve %s: %w", name, err)
	}

	return tc, nil
}

// List returns the names of all stored turbine curves, sorted
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list turbine curves: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// Delete removes a turbine curve by name
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	delCmd := pipe.Del(ctx, s.curveKey(name))
	pipe.SRem(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete turbine curve %s: %w", name, err)
	}

	if delCmd.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
