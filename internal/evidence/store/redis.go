package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"velos/internal/evidence"
)

const (
	cacheKeyPrefix  = "evidence:q:"
	defaultCacheTTL = 10 * time.Minute
)

// RedisCache is a read-through cache over another evidence source. Search
// results are cached per candidate and query; documents are written straight
// through. Redis failures fall back to the backing source.
type RedisCache struct {
	client *redis.Client
	next   evidence.Source
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, next evidence.Source) *RedisCache {
	return &RedisCache{client: client, next: next, ttl: defaultCacheTTL}
}

func (c *RedisCache) AddDocument(ctx context.Context, candidateID, text, source string) error {
	// New material invalidates cached queries for this candidate.
	iter := c.client.Scan(ctx, 0, cacheKey(candidateID, "")+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	return c.next.AddDocument(ctx, candidateID, text, source)
}

func (c *RedisCache) Search(ctx context.Context, candidateID, query string, limit int) ([]evidence.Match, error) {
	key := cacheKey(candidateID, query)

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var matches []evidence.Match
		if json.Unmarshal(cached, &matches) == nil {
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			return matches, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Redis down; serve from the backing source.
		return c.next.Search(ctx, candidateID, query, limit)
	}

	matches, err := c.next.Search(ctx, candidateID, query, limit)
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(matches); err == nil {
		c.client.Set(ctx, key, body, c.ttl)
	}
	return matches, nil
}

func cacheKey(candidateID, query string) string {
	if query == "" {
		return cacheKeyPrefix + candidateID + ":"
	}
	sum := sha256.Sum256([]byte(query))
	return cacheKeyPrefix + candidateID + ":" + hex.EncodeToString(sum[:8])
}
