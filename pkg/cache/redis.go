package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a redis server. Bodies live under
// <prefix>:<sha1(key)>, and every tag keeps a set of body keys under
// <prefix>:tag:<tag>.
type Redis struct {
	Cfg    Config
	Client *redis.Client
}

func Init(ctx context.Context, cfg Config) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return NewRedis(rdb, cfg), nil
}

// NewRedis wraps an existing client without checking connectivity.
func NewRedis(rdb *redis.Client, cfg Config) *Redis {
	if cfg.Prefix == "" {
		cfg.Prefix = "contentd"
	}
	return &Redis{Cfg: cfg, Client: rdb}
}

func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}

func (r *Redis) bodyKey(key string) string {
	return Key(r.Cfg.Prefix, key)
}

func (r *Redis) tagKey(tag string) string {
	return r.Cfg.Prefix + ":tag:" + tag
}

func (r *Redis) ttl(ttl time.Duration) time.Duration {
	if ttl <= 0 && r.Cfg.DefaultTTL > 0 {
		return time.Duration(r.Cfg.DefaultTTL) * time.Second
	}
	return ttl
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.Client.Get(ctx, r.bodyKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration, tags ...string) error {
	ttl = r.ttl(ttl)
	bk := r.bodyKey(key)

	_, err := r.Client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		// zero expiration keeps the key until a tag drops it
		p.Set(ctx, bk, data, ttl)
		for _, t := range uniqueTags(tags) {
			tk := r.tagKey(t)
			p.SAdd(ctx, tk, bk)
			if ttl > 0 {
				// the index must outlive the bodies it points to
				p.Expire(ctx, tk, 2*ttl)
			}
		}
		return nil
	})
	return err
}

func (r *Redis) InvalidateTags(ctx context.Context, tags ...string) (int, error) {
	n := 0
	for _, t := range uniqueTags(tags) {
		tk := r.tagKey(t)
		members, err := r.Client.SMembers(ctx, tk).Result()
		if err != nil {
			return n, err
		}

		keys := append(members, tk)
		deleted, err := r.Client.Del(ctx, keys...).Result()
		if err != nil {
			return n, err
		}
		// the tag set itself is not an entry
		if len(members) > 0 && deleted > 0 {
			deleted--
		}
		n += int(deleted)
	}
	return n, nil
}
