package statistics

import (
	"context"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-combat/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-combat/internal/redis"
)

// Key pattern: statistics:{character_id}, one hash field per counter path
const statisticsKeyPrefix = "statistics:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client

	// TTL expires a character's counters after inactivity. Zero keeps them.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for counters
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Increment applies every amount in one transaction
func (r *redisRepository) Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if len(input.Amounts) == 0 {
		return nil, errors.InvalidArgument(errNoAmounts)
	}

	for path := range input.Amounts {
		if path == "" {
			return nil, errors.InvalidArgument(errPathEmpty)
		}
	}

	key := r.buildKey(input.CharacterID)
	results := make(map[string]*redis.FloatCmd, len(input.Amounts))

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for path, amount := range input.Amounts {
			results[path] = pipe.HIncrByFloat(ctx, key, path, amount)
		}
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to increment counters in Redis")
	}

	values := make(map[string]float64, len(results))
	for path, cmd := range results {
		values[path] = cmd.Val()
	}

	return &IncrementOutput{Values: values}, nil
}

// Get reads one hash field
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	value, err := r.client.HGet(ctx, r.buildKey(input.CharacterID), input.Path).Float64()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get counter from Redis")
	}

	return &GetOutput{Value: value}, nil
}

// List reads the whole hash and filters by prefix
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, r.buildKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list counters from Redis")
	}

	counters := make(map[string]float64)
	for path, raw := range fields {
		if !HasPrefix(path, input.Prefix) {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse counter %s", path)
		}
		counters[path] = value
	}

	return &ListOutput{Counters: counters}, nil
}

// Delete drops the hash
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := r.buildKey(input.CharacterID)

	var count *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.HLen(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete counters from Redis")
	}

	return &DeleteOutput{CountersDeleted: int(count.Val())}, nil
}

func (r *redisRepository) buildKey(characterID string) string {
	return statisticsKeyPrefix + characterID
}
