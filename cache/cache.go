package cache

import (
	"bytes"
	"context"
	"fmt"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
)

// ResponseCache stores rendered responses.
type ResponseCache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// MemoKey joins key parts with '|'.
func MemoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// New builds the backend selected by cfg.Backend.
func New(cfg config.CacheConfig) (ResponseCache, error) {
	ttl := cfg.TTL()
	switch cfg.Backend {
	case "", "memory":
		return NewMemory(cfg.Size, ttl), nil
	case "redis":
		return NewRedis(cfg.RedisAddr, cfg.RedisPrefix, ttl), nil
	case "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, string, []byte) error { return nil }

func (Noop) Close() error { return nil }
