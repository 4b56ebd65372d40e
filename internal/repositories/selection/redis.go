package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	selectionKeyPrefix = "selection:"

	// defaultProfile is used when the caller does not name one
	defaultProfile = "default"
)

// ErrSelectionNotFound is returned when no selection has been stored
var ErrSelectionNotFound = errors.New("selection not found")

// Config holds configuration for the Redis selection repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed selection repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSelection persists a selection record to Redis
func (r *redisRepository) SaveSelection(ctx context.Context, input *SaveSelectionInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal selection record: %w", err)
	}

	key := selectionKey(input.Profile)
	if err := r.client.Set(ctx, key, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}

	return nil
}

// GetSelection retrieves the stored selection record from Redis
func (r *redisRepository) GetSelection(ctx context.Context, input *GetSelectionInput) (*Record, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := selectionKey(input.Profile)
	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selection record: %w", err)
	}

	return &record, nil
}

// ClearSelection removes the stored selection record from Redis
func (r *redisRepository) ClearSelection(ctx context.Context, input *ClearSelectionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	key := selectionKey(input.Profile)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}

	return nil
}

// selectionKey builds the Redis key for a profile
func selectionKey(profile string) string {
	if profile == "" {
		profile = defaultProfile
	}
	return fmt.Sprintf("%s%s", selectionKeyPrefix, profile)
}
