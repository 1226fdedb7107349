// Package events defines domain notification events emitted after a status
// transition commits. Delivery is fire-and-forget; the core never awaits
// delivery confirmation.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusChangedEvent is emitted once per committed status transition
type StatusChangedEvent struct {
	EntityKind string    `json:"entityKind"`
	EntityID   uuid.UUID `json:"entityId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher delivers domain events to the notification transport
type Publisher interface {
	Publish(ctx context.Context, event StatusChangedEvent) error
}

// NopPublisher discards events. Used when no notification transport is
// configured.
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(ctx context.Context, event StatusChangedEvent) error {
	return nil
}
