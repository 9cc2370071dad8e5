package cache

import (
	"context"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient поднимает клиент Redis из конфига.
// Пустой addr или недоступный сервер - возвращаем nil, и кэширование
// просто отключается: стор обязан работать и без Redis.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, listing cache disabled", "addr", cfg.Redis.Addr, "error", err)
		return nil
	}
	return client
}
