package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_store_mock.go -package=mock
type Store interface {
	Load(ctx context.Context, userID string) ([]Line, error)
	Save(ctx context.Context, userID string, lines []Line) error
}

// RedisStore persists each user's cart lines as a JSON blob. The cart
// service treats the loaded value as opaque input; partial-write and
// retry concerns stay on this side of the boundary.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func (s *RedisStore) Load(ctx context.Context, userID string) ([]Line, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, lines []Line) error {
	if len(lines) == 0 {
		return s.client.Del(ctx, cartKey(userID)).Err()
	}

	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(userID), raw, 0).Err()
}

// MemoryStore keeps carts in process memory. Used in tests and when no
// Redis address is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Line)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) ([]Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := s.carts[userID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(lines) == 0 {
		delete(s.carts, userID)
		return nil
	}
	stored := make([]Line, len(lines))
	copy(stored, lines)
	s.carts[userID] = stored
	return nil
}
