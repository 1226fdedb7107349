// Package notifications delivers domain events over Redis pub/sub for the
// external notification service to fan out.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"vendorhub.backend/internal/domain/events"
)

// DefaultChannelPrefix is the Redis channel namespace for status events
const DefaultChannelPrefix = "events"

// RedisPublisher implements events.Publisher over Redis pub/sub
type RedisPublisher struct {
	client        *redis.Client
	channelPrefix string
}

// NewRedisPublisher creates a new Redis event publisher
func NewRedisPublisher(client *redis.Client, channelPrefix string) *RedisPublisher {
	if channelPrefix == "" {
		channelPrefix = DefaultChannelPrefix
	}
	return &RedisPublisher{
		client:        client,
		channelPrefix: channelPrefix,
	}
}

// Publish sends the event as JSON on the per-entity-kind channel
func (p *RedisPublisher) Publish(ctx context.Context, event events.StatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}
	channel := fmt.Sprintf("%s:%s", p.channelPrefix, event.EntityKind)
	return p.client.Publish(ctx, channel, payload).Err()
}
