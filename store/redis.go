package store

import (
	"connectfour/game"
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the value table in a single redis hash, one field per state.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
	}
}

func (s *RedisStore) Save(ctx context.Context, values map[game.StateID]float64) error {
	fields := make(map[string]string, len(values))
	for state, value := range values {
		fields[string(state)] = strconv.FormatFloat(value, 'g', -1, 64)
	}

	// Delete and rewrite in one transaction so readers never see a mix of
	// old and new entries.
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(fields) > 0 {
			pipe.HSet(ctx, s.key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set value table: %w", err)
	}

	return nil
}

func (s *RedisStore) Load(ctx context.Context) (map[game.StateID]float64, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get value table: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.key)
	}

	values := make(map[game.StateID]float64, len(fields))
	for state, raw := range fields {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value for state %q: %w", state, err)
		}
		values[game.StateID(state)] = value
	}

	return values, nil
}
