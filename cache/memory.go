package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bluele/gcache"
)

// Memory is an in-process LRU cache.
type Memory struct {
	c gcache.Cache
}

// NewMemory creates an LRU holding up to size entries; ttl 0 disables expiry.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = 1
	}
	b := gcache.New(size).LRU()
	if ttl > 0 {
		b = b.Expiration(ttl)
	}
	return &Memory{c: b.Build()}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, err := m.c.Get(key)
	if errors.Is(err, gcache.KeyNotFoundError) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	b, ok := v.([]byte)
	return b, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	return m.c.Set(key, value)
}

// Len returns the number of live entries.
func (m *Memory) Len() int { return m.c.Len(true) }

func (m *Memory) Close() error {
	m.c.Purge()
	return nil
}
