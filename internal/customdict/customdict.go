package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set holding user-added words.
const DefaultKey = "custom_dict"

// CustomDict wraps a Redis client to store custom dictionary words.
type CustomDict struct {
	client redis.UniversalClient
	key    string
}

// New creates a CustomDict on the given set key; an empty key means DefaultKey.
func New(client redis.UniversalClient, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	if err := cd.client.SAdd(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("customdict: add %q: %w", word, err)
	}
	return nil
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	if err := cd.client.SRem(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("customdict: remove %q: %w", word, err)
	}
	return nil
}

// All returns all words stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, fmt.Errorf("customdict: list: %w", err)
	}
	return words, nil
}

// Ping checks the Redis connection.
func (cd *CustomDict) Ping(ctx context.Context) error {
	return cd.client.Ping(ctx).Err()
}
