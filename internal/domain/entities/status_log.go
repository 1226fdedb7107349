package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantStatusLog is an immutable record of a merchant status change.
// Entries are created exactly once per successful transition and never
// mutated or deleted.
type MerchantStatusLog struct {
	ID            uuid.UUID   `json:"id"`
	MerchantID    uuid.UUID   `json:"merchantId"`
	FromStatus    null.String `json:"fromStatus,omitempty"`
	ToStatus      string      `json:"toStatus"`
	Reason        null.String `json:"reason,omitempty"`
	ChangedBy     *uuid.UUID  `json:"-"`
	ChangedByName string      `json:"-"`
	Metadata      null.JSON   `json:"metadata,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// TimelineEntry is the presentation shape of a status log entry
type TimelineEntry struct {
	ID         uuid.UUID   `json:"id"`
	FromStatus null.String `json:"fromStatus,omitempty"`
	ToStatus   string      `json:"toStatus"`
	Reason     null.String `json:"reason,omitempty"`
	ChangedBy  *Actor      `json:"changedBy,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Actor identifies the user credited with a status change
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToTimelineEntry converts a log record for timeline display
func (l *MerchantStatusLog) ToTimelineEntry() *TimelineEntry {
	entry := &TimelineEntry{
		ID:         l.ID,
		FromStatus: l.FromStatus,
		ToStatus:   l.ToStatus,
		Reason:     l.Reason,
		CreatedAt:  l.CreatedAt,
	}
	if l.ChangedBy != nil {
		entry.ChangedBy = &Actor{ID: *l.ChangedBy, Name: l.ChangedByName}
	}
	return entry
}
