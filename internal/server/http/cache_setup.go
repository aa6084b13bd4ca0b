package httpserver

import (
	"context"
	"fmt"
	"strings"

	"contentd/internal/config"
	"contentd/pkg/cache"
)

// SetupCache builds the tag cache selected by cfg.Driver: "memory" (default),
// "redis", or "none". A nil Store means responses are never cached.
// Returns cleanup function (no-op if nothing to close).
func SetupCache(cfg config.Cache) (cache.Store, func(), error) {
	ttl := cache.ParseTTL(cfg.TTL)

	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "none", "off", "disabled":
		return nil, func() {}, nil
	case "redis":
		r, err := cache.Init(context.Background(), cache.Config{
			Addr:       fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Password:   cfg.Pass,
			DB:         cfg.Db,
			Prefix:     cfg.Prefix,
			DefaultTTL: int(ttl.Seconds()),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init redis cache: %w", err)
		}
		return r, func() { _ = r.Close() }, nil
	default:
		return cache.NewMemory(cache.WithMaxEntries(cfg.MaxEntries)), func() {}, nil
	}
}
