package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"restaurantes-api/internal/domain"

	"github.com/redis/go-redis/v9"
)

const rankingKeyPrefix = "ranking:mejor_calificados:"

type RedisRankingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRankingCache(client *redis.Client, ttl time.Duration) *RedisRankingCache {
	return &RedisRankingCache{Client: client, TTL: ttl}
}

func (c *RedisRankingCache) key(n int) string {
	return rankingKeyPrefix + strconv.Itoa(n)
}

func (c *RedisRankingCache) GetTopRated(ctx context.Context, n int) ([]domain.RestaurantSummary, bool) {
	payload, err := c.Client.Get(ctx, c.key(n)).Bytes()
	if err != nil {
		return nil, false
	}
	var summaries []domain.RestaurantSummary
	if err := json.Unmarshal(payload, &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (c *RedisRankingCache) SetTopRated(ctx context.Context, n int, summaries []domain.RestaurantSummary) error {
	payload, err := json.Marshal(summaries)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.key(n), payload, c.TTL).Err()
}

func (c *RedisRankingCache) Invalidate(ctx context.Context) error {
	keys, err := c.Client.Keys(ctx, rankingKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return err
	}
	return c.Client.Del(ctx, keys...).Err()
}
