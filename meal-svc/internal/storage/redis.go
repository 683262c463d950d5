package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bytebite/meal-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MealsKey(area string) string {
	return "meals:area:" + area
}

func (c *RedisCache) GetMeals(ctx context.Context, area string) ([]domain.Meal, bool, error) {
	payload, err := c.Client.Get(ctx, c.MealsKey(area)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var meals []domain.Meal
	if err := json.Unmarshal(payload, &meals); err != nil {
		return nil, false, err
	}
	return meals, true, nil
}

func (c *RedisCache) SetMeals(ctx context.Context, area string, meals []domain.Meal) error {
	payload, err := json.Marshal(meals)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MealsKey(area), payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, area string) error {
	return c.Client.Del(ctx, c.MealsKey(area)).Err()
}

// RedisPopularity keeps one sorted set per area scored by ordered quantity.
type RedisPopularity struct {
	Client *redis.Client
}

func NewRedisPopularity(client *redis.Client) *RedisPopularity {
	return &RedisPopularity{Client: client}
}

func (p *RedisPopularity) Key(area string) string {
	return "popular:area:" + area
}

func (p *RedisPopularity) IncrementDish(ctx context.Context, area, dishName string, quantity int) error {
	return p.Client.ZIncrBy(ctx, p.Key(area), float64(quantity), dishName).Err()
}

func (p *RedisPopularity) TopDishes(ctx context.Context, area string, limit int) ([]domain.PopularMeal, error) {
	entries, err := p.Client.ZRevRangeWithScores(ctx, p.Key(area), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	meals := make([]domain.PopularMeal, 0, len(entries))
	for _, e := range entries {
		name, _ := e.Member.(string)
		meals = append(meals, domain.PopularMeal{DishName: name, Ordered: int64(e.Score)})
	}
	return meals, nil
}
