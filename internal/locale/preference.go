package locale

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// PreferenceKey is the fixed name of the stored locale; sessions namespace it.
const PreferenceKey = "preferred-locale"

func Key(sessionID string) string {
	return fmt.Sprintf("%s:%s", PreferenceKey, sessionID)
}

type Preferences interface {
	Get(ctx context.Context, sessionID string) (Locale, error)
	Set(ctx context.Context, sessionID string, l Locale) error
}

// RedisPreferences stores the plain locale code.
type RedisPreferences struct {
	client *redis.Client
}

func NewRedisPreferences(client *redis.Client) *RedisPreferences {
	return &RedisPreferences{client: client}
}

// Get returns Default when nothing valid is stored.
func (r *RedisPreferences) Get(ctx context.Context, sessionID string) (Locale, error) {
	v, err := r.client.Get(ctx, Key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return Default, nil
	}
	if err != nil {
		return Default, fmt.Errorf("redis get failed: %w", err)
	}
	if l := Locale(v); l.Valid() {
		return l, nil
	}
	return Default, nil
}

func (r *RedisPreferences) Set(ctx context.Context, sessionID string, l Locale) error {
	if err := r.client.Set(ctx, Key(sessionID), string(l), 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

type MemoryPreferences struct {
	mu sync.RWMutex
	m  map[string]Locale
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{m: map[string]Locale{}}
}

func (p *MemoryPreferences) Get(_ context.Context, sessionID string) (Locale, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if l, ok := p.m[sessionID]; ok {
		return l, nil
	}
	return Default, nil
}

func (p *MemoryPreferences) Set(_ context.Context, sessionID string, l Locale) error {
	p.mu.Lock()
	p.m[sessionID] = l
	p.mu.Unlock()
	return nil
}
