// Package store holds the hot-path caches for referral code lookups.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DiscountQuote is the cached answer for a code -> discount lookup. It only
// carries what the checkout flow needs, not the full ambassador record.
type DiscountQuote struct {
	AmbassadorId       string `json:"ambassador_id"`
	Code               string `json:"code"`
	DiscountPercentage string `json:"discount_percentage"`
	Valid              bool   `json:"valid"`
}

// IDiscountCache caches referral code lookups. Misses return (nil, nil) so a
// cold cache reads the same as a degraded one.
type IDiscountCache interface {
	Get(ctx context.Context, code string) (*DiscountQuote, error)
	Set(ctx context.Context, code string, quote *DiscountQuote) error
	Invalidate(ctx context.Context, code string) error
}

type redisDiscountCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDiscountCache(rdb *redis.Client, ttl time.Duration) IDiscountCache {
	return &redisDiscountCache{rdb: rdb, ttl: ttl}
}

func cacheKey(code string) string {
	return fmt.Sprintf("ambassador:discount:%s", code)
}

func (c *redisDiscountCache) Get(ctx context.Context, code string) (*DiscountQuote, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, cacheKey(code)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quote DiscountQuote
	if err := json.Unmarshal(data, &quote); err != nil {
		// Corrupt entries are dropped, not surfaced.
		_ = c.rdb.Del(ctx, cacheKey(code)).Err()
		return nil, nil
	}
	return &quote, nil
}

func (c *redisDiscountCache) Set(ctx context.Context, code string, quote *DiscountQuote) error {
	if c.rdb == nil {
		return nil
	}
	data, err := json.Marshal(quote)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(code), data, c.ttl).Err()
}

func (c *redisDiscountCache) Invalidate(ctx context.Context, code string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, cacheKey(code)).Err()
}
