// Package cache stores upstream response bodies and groups them by tag so a
// single revalidation can drop every entry that depends on the same content.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Store is a tag-aware byte cache. Implementations are safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key and records key under each tag.
	// A ttl <= 0 means the entry only leaves the cache through its tags.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration, tags ...string) error
	// InvalidateTags removes every entry recorded under any of tags and
	// returns how many entries were dropped.
	InvalidateTags(ctx context.Context, tags ...string) (int, error)
}

// Key hashes parts into a fixed-length key under prefix.
func Key(prefix string, parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// ParseTTL accepts a Go duration ("5m") or a number of seconds ("300").
// Anything else yields zero.
func ParseTTL(val string) time.Duration {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return 0
}

func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
