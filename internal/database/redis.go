package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"kanban-workspace-api/internal/config"
)

var redisClient *redis.Client

// InitRedis connects the pub/sub client used for event fan-out
func InitRedis(cfg config.RedisConfig, log *zap.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return nil
}

// GetRedis returns the shared client, or nil when Redis is not configured.
// Callers must handle nil so the API can run without the realtime layer.
func GetRedis() *redis.Client {
	return redisClient
}

// SubscribeTopic subscribes to an event topic channel. Returns nil when
// Redis is unavailable.
func SubscribeTopic(ctx context.Context, topic string) *redis.PubSub {
	client := GetRedis()
	if client == nil {
		return nil
	}
	return client.Subscribe(ctx, topic)
}
