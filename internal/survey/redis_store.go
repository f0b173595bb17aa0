package survey

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const stateTTL = 24 * time.Hour

// RedisStore keeps conversation state as JSON blobs in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed StateStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func stateKey(chatID int64) string {
	return fmt.Sprintf("survey:state:%d", chatID)
}

// Get returns the chat's state, or nil when no survey is in progress.
func (r *RedisStore) Get(ctx context.Context, chatID int64) (*State, error) {
	data, err := r.client.Get(ctx, stateKey(chatID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get survey state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("decode survey state: %w", err)
	}
	return &state, nil
}

// Set stores the chat's state.
func (r *RedisStore) Set(ctx context.Context, chatID int64, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode survey state: %w", err)
	}
	if err := r.client.Set(ctx, stateKey(chatID), data, stateTTL).Err(); err != nil {
		return fmt.Errorf("set survey state: %w", err)
	}
	return nil
}

// Clear drops the chat's state.
func (r *RedisStore) Clear(ctx context.Context, chatID int64) error {
	if err := r.client.Del(ctx, stateKey(chatID)).Err(); err != nil {
		return fmt.Errorf("clear survey state: %w", err)
	}
	return nil
}
