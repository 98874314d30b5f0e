// Package redis keeps idempotent request state in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/payoffsim/internal/usecase"
)

const keyPrefix = "payoffsim:replay:"

// ReplayStore implements usecase.ReplayStore using Redis.
type ReplayStore struct {
	client *redis.Client
}

// NewReplayStore creates a new ReplayStore.
func NewReplayStore(client *redis.Client) *ReplayStore {
	return &ReplayStore{client: client}
}

// Reserve claims key with SETNX, returning the stored entry when the key is taken.
func (s *ReplayStore) Reserve(ctx context.Context, key string, entry usecase.ReplayEntry, ttl time.Duration) (*usecase.ReplayEntry, error) {
	entry.Pending = true
	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}

	// The existing key may expire between SETNX and GET; one more round settles it.
	for range 2 {
		set, err := s.client.SetNX(ctx, keyPrefix+key, payload, ttl).Result()
		if err != nil {
			return nil, err
		}
		if set {
			return nil, nil
		}

		raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}

		var existing usecase.ReplayEntry
		if err := json.Unmarshal(raw, &existing); err != nil {
			return nil, fmt.Errorf("corrupt replay entry for %s: %w", key, err)
		}
		return &existing, nil
	}

	return nil, fmt.Errorf("could not reserve replay key %s", key)
}

// Save stores the final response.
func (s *ReplayStore) Save(ctx context.Context, key string, entry usecase.ReplayEntry, ttl time.Duration) error {
	entry.Pending = false
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+key, payload, ttl).Err()
}

// Release deletes the reservation.
func (s *ReplayStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
