package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=wishlist_store.go -destination=../mock/wishlist/wishlist_store_mock.go -package=mock
type Store interface {
	Load(ctx context.Context, userID string) ([]string, error)
	Save(ctx context.Context, userID string, productIDs []string) error
}

// RedisStore keeps the wishlist as an ordered JSON array of product
// IDs, so the saved-items screen shows products in the order they were
// added.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func wishlistKey(userID string) string {
	return fmt.Sprintf("wishlist:%s", userID)
}

func (s *RedisStore) Load(ctx context.Context, userID string) ([]string, error) {
	raw, err := s.client.Get(ctx, wishlistKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, productIDs []string) error {
	if len(productIDs) == 0 {
		return s.client.Del(ctx, wishlistKey(userID)).Err()
	}

	raw, err := json.Marshal(productIDs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wishlistKey(userID), raw, 0).Err()
}

// MemoryStore backs tests and broker-less local runs.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]string)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.lists[userID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, productIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(productIDs) == 0 {
		delete(s.lists, userID)
		return nil
	}
	stored := make([]string, len(productIDs))
	copy(stored, productIDs)
	s.lists[userID] = stored
	return nil
}
