package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "booking-otp:"

// RedisBroker implements Broker on a dedicated Redis database. The Redis TTL
// mirrors the entry's absolute expiry so abandoned entries are swept by the
// store itself.
type RedisBroker struct {
	Client *redis.Client
}

// NewRedisBroker creates a Broker backed by the given Redis client.
func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{Client: client}
}

func (b *RedisBroker) Stage(ctx context.Context, key string, entry StagedBooking, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal staged booking: %w", err)
	}
	if err := b.Client.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to stage booking for %s: %w", key, err)
	}
	return nil
}

func (b *RedisBroker) Get(ctx context.Context, key string) (*StagedBooking, error) {
	data, err := b.Client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staged booking for %s: %w", key, err)
	}
	var entry StagedBooking
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to parse staged booking for %s: %w", key, err)
	}
	return &entry, nil
}

func (b *RedisBroker) Delete(ctx context.Context, key string) error {
	if err := b.Client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete staged booking for %s: %w", key, err)
	}
	return nil
}
