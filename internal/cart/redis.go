package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Abandoned carts expire on their own rather than piling up in Redis.
const sessionTTL = 7 * 24 * time.Hour

// RedisStorage keeps each session's cart as a JSON value under cart:{session}.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func redisKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStorage) Load(ctx context.Context, sessionID string) ([]Item, error) {
	raw, err := s.client.Get(ctx, redisKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *RedisStorage) Save(ctx context.Context, sessionID string, items []Item) error {
	if len(items) == 0 {
		return s.Delete(ctx, sessionID)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(sessionID), raw, sessionTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// MemoryStorage is the fallback when no Redis address is configured; carts
// then live only as long as the process. Also used in tests.
type MemoryStorage struct {
	mu       sync.Mutex
	sessions map[string][]Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{sessions: make(map[string][]Item)}
}

func (s *MemoryStorage) Load(ctx context.Context, sessionID string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.sessions[sessionID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemoryStorage) Save(ctx context.Context, sessionID string, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Item, len(items))
	copy(cp, items)
	s.sessions[sessionID] = cp
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
