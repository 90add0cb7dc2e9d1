package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "oauth_state:"

// StateStore remembers OAuth state nonces until they are used once.
type StateStore interface {
	Save(ctx context.Context, nonce string, ttl time.Duration) error
	Consume(ctx context.Context, nonce string) (bool, error)
}

type redisStateStore struct {
	client *redis.Client
}

func NewStateStore(client *redis.Client) StateStore {
	return &redisStateStore{client: client}
}

func stateKey(nonce string) string {
	return fmt.Sprintf("%s%s", stateKeyPrefix, nonce)
}

func (s *redisStateStore) Save(ctx context.Context, nonce string, ttl time.Duration) error {
	return s.client.Set(ctx, stateKey(nonce), "1", ttl).Err()
}

// Consume deletes the nonce and reports whether it was still present.
// GETDEL makes a replayed state lose the race atomically.
func (s *redisStateStore) Consume(ctx context.Context, nonce string) (bool, error) {
	err := s.client.GetDel(ctx, stateKey(nonce)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
