package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Source is whatever the cache falls back to on a miss, normally the
// postgres instrument master.
type Source interface {
	Token(exchange, tradingsymbol string) (string, error)
}

// TokenCache keeps symbol-to-token lookups in redis so the instrument
// master is not hit on every quote. Tokens are stable within a trading
// day; the TTL covers the overnight refresh.
type TokenCache struct {
	client *redis.Client
	source Source
	ttl    time.Duration
}

func NewTokenCache(client *redis.Client, source Source, ttl time.Duration) *TokenCache {
	return &TokenCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (c *TokenCache) Token(exchange, tradingsymbol string) (string, error) {
	ctx := context.Background()
	key := fmt.Sprintf("instrument:%s:%s", exchange, tradingsymbol)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil && val != "" {
		return val, nil
	}

	token, err := c.source.Token(exchange, tradingsymbol)
	if err != nil {
		return "", err
	}

	// A failed cache write only costs the next lookup.
	_ = c.client.Set(ctx, key, token, c.ttl).Err()

	return token, nil
}
