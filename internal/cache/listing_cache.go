package cache

import (
	"context"
	"encoding/json"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const listingFeedKey = "jobboard:listings:feed"

// ListingCache - кэш публичной ленты вакансий. getAllJobListings - полный
// скан самой горячей таблицы, поэтому его результат держим в Redis и
// сбрасываем на каждой мутации вакансий. nil-кэш валиден и означает
// "всегда мимо".
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ListingCache{client: client, ttl: ttl}
}

// GetFeed возвращает закэшированную ленту; (nil, false) при промахе
func (c *ListingCache) GetFeed(ctx context.Context) ([]models.JobListing, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, listingFeedKey).Bytes()
	if err != nil {
		return nil, false
	}

	var listings []models.JobListing
	if err := json.Unmarshal(data, &listings); err != nil {
		logger.CtxWarn(ctx, "Corrupt listing feed in cache, dropping", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	if listings == nil {
		listings = make([]models.JobListing, 0)
	}
	return listings, true
}

// SetFeed кладет ленту в кэш; ошибки Redis не фатальны
func (c *ListingCache) SetFeed(ctx context.Context, listings []models.JobListing) {
	if c == nil {
		return
	}

	data, err := json.Marshal(listings)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listingFeedKey, data, c.ttl).Err(); err != nil {
		logger.CtxWarn(ctx, "Failed to cache listing feed", "error", err)
	}
}

// Invalidate сбрасывает ленту; вызывается на каждой мутации вакансий
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, listingFeedKey).Err(); err != nil {
		logger.CtxWarn(ctx, "Failed to invalidate listing feed", "error", err)
	}
}
