package customdict

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set holding the words.
const DefaultKey = "openform:custom_dict"

// CustomDict wraps a Redis client to store operator-supplied dictionary
// words. Words are read once when the model is built.
type CustomDict struct {
	client redis.UniversalClient
	key    string
}

// New creates a new CustomDict with the provided Redis client. An empty
// key selects DefaultKey.
func New(client redis.UniversalClient, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, normalize(word)).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, normalize(word)).Err()
}

// All returns all words stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}

// Ping checks the connection.
func (cd *CustomDict) Ping(ctx context.Context) error {
	return cd.client.Ping(ctx).Err()
}
