package pricecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/team-migration/pkg/adapters"
	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/models/store"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache shares offer quotes between service replicas.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisCache(cfg RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisCacheWithClient(rdb, cfg.TTL)
}

func NewRedisCacheWithClient(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, now: time.Now}
}

func (c *RedisCache) Get(ctx context.Context, key string) (domain.PriceQuotes, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PriceQuotes{}, false, nil
	}
	if err != nil {
		return domain.PriceQuotes{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var cached store.CachedPriceQuotes
	if err := json.Unmarshal(raw, &cached); err != nil {
		return domain.PriceQuotes{}, false, fmt.Errorf("failed to decode cached prices %s: %w", key, err)
	}
	return adapters.MapPriceQuotesStoreToDomain(cached), true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, quotes domain.PriceQuotes) error {
	raw, err := json.Marshal(adapters.MapPriceQuotesDomainToStore(quotes, c.now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to encode prices %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
