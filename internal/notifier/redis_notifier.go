package notifier

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisNotifier publishes events to redis pub/sub channels. Channel names are
// the topic strings, so the websocket relay can subscribe with the same names.
type redisNotifier struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisNotifier creates a redis-backed Notifier
func NewRedisNotifier(client *redis.Client, logger *zap.Logger) Notifier {
	return &redisNotifier{client: client, logger: logger}
}

// Publish sends the event to the topic channel. Failures are logged and
// swallowed: notification delivery must never fail the committed mutation.
func (n *redisNotifier) Publish(ctx context.Context, topic string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("Failed to marshal event",
			zap.String("topic", topic),
			zap.String("type", string(event.Type)),
			zap.Error(err))
		return
	}

	if err := n.client.Publish(ctx, topic, payload).Err(); err != nil {
		n.logger.Warn("Failed to publish event",
			zap.String("topic", topic),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
