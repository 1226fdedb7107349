package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// BookingStatus represents the booking lifecycle status
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// Booking represents a service booking placed with a merchant.
// Bookings are never deleted; cancellation is a terminal status.
type Booking struct {
	ID           uuid.UUID       `json:"id"`
	MerchantID   uuid.UUID       `json:"merchantId"`
	ServiceID    uuid.UUID       `json:"serviceId"`
	CustomerID   uuid.UUID       `json:"customerId"`
	Status       BookingStatus   `json:"status"`
	ServicePrice decimal.Decimal `json:"servicePrice"`
	FeeRate      decimal.Decimal `json:"feeRate"`
	FeeAmount    decimal.Decimal `json:"feeAmount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ScheduledAt  null.Time       `json:"scheduledAt,omitempty"`
	ConfirmedAt  null.Time       `json:"confirmedAt,omitempty"`
	CancelledAt  null.Time       `json:"cancelledAt,omitempty"`
	CompletedAt  null.Time       `json:"completedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// BookingCreateInput represents input for placing a booking
type BookingCreateInput struct {
	MerchantID   uuid.UUID `json:"merchantId" binding:"required"`
	ServiceID    uuid.UUID `json:"serviceId" binding:"required"`
	CustomerID   uuid.UUID `json:"customerId" binding:"required"`
	ServicePrice string    `json:"servicePrice" binding:"required"`
	ScheduledAt  null.Time `json:"scheduledAt,omitempty"`
}
