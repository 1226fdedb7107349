package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// ReservationStatus represents the unit rental lifecycle status
type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// Reservation represents a rental-unit reservation with a merchant
type Reservation struct {
	ID           uuid.UUID         `json:"id"`
	MerchantID   uuid.UUID         `json:"merchantId"`
	UnitID       uuid.UUID         `json:"unitId"`
	CustomerID   uuid.UUID         `json:"customerId"`
	Status       ReservationStatus `json:"status"`
	TotalPrice   decimal.Decimal   `json:"totalPrice"`
	FeeRate      decimal.Decimal   `json:"feeRate"`
	FeeAmount    decimal.Decimal   `json:"feeAmount"`
	TotalAmount  decimal.Decimal   `json:"totalAmount"`
	StartsAt     null.Time         `json:"startsAt,omitempty"`
	EndsAt       null.Time         `json:"endsAt,omitempty"`
	ConfirmedAt  null.Time         `json:"confirmedAt,omitempty"`
	CheckedInAt  null.Time         `json:"checkedInAt,omitempty"`
	CheckedOutAt null.Time         `json:"checkedOutAt,omitempty"`
	CancelledAt  null.Time         `json:"cancelledAt,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ReservationCreateInput represents input for placing a reservation
type ReservationCreateInput struct {
	MerchantID uuid.UUID `json:"merchantId" binding:"required"`
	UnitID     uuid.UUID `json:"unitId" binding:"required"`
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	TotalPrice string    `json:"totalPrice" binding:"required"`
	StartsAt   null.Time `json:"startsAt,omitempty"`
	EndsAt     null.Time `json:"endsAt,omitempty"`
}
