package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// StorageKey is the fixed store name; sessions namespace it.
const StorageKey = "cart-storage"

const StateVersion = 0

var (
	ErrNotFound = errors.New("cart state not found")
	// ErrCorrupt marks a stored value that no longer decodes as a cart.
	ErrCorrupt = errors.New("cart state corrupt")
)

// State is the persisted form of a cart.
type State struct {
	Lines   []Line `json:"lines"`
	Version int    `json:"version"`
}

type Storage interface {
	Load(ctx context.Context, key string) (State, error)
	Save(ctx context.Context, key string, st State) error
}

// Key builds the storage key of one session's cart.
func Key(sessionID string) string {
	return fmt.Sprintf("%s:%s", StorageKey, sessionID)
}

type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage keeps carts for ttl after their last change; ttl 0 means forever.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func (r *RedisStorage) Load(ctx context.Context, key string) (State, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("redis get failed: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("unmarshal cart failed: %w: %w", ErrCorrupt, err)
	}
	return st, nil
}

func (r *RedisStorage) Save(ctx context.Context, key string, st State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := r.client.Set(ctx, key, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// MemoryStorage keeps encoded states in process memory.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string][]byte{}}
}

func (m *MemoryStorage) Load(_ context.Context, key string) (State, error) {
	m.mu.RLock()
	b, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return State{}, ErrNotFound
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, fmt.Errorf("unmarshal cart failed: %w: %w", ErrCorrupt, err)
	}
	return st, nil
}

func (m *MemoryStorage) Save(_ context.Context, key string, st State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	m.mu.Lock()
	m.data[key] = b
	m.mu.Unlock()
	return nil
}
