package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceID    uuid.UUID       `gorm:"type:uuid;not null"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status       string          `gorm:"type:varchar(50);not null;default:'pending'"`
	ServicePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FeeRate      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FeeAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ScheduledAt  *time.Time
	ConfirmedAt  *time.Time
	CancelledAt  *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Reservation struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID       uuid.UUID       `gorm:"type:uuid;not null"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status       string          `gorm:"type:varchar(50);not null;default:'pending'"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FeeRate      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FeeAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartsAt     *time.Time
	EndsAt       *time.Time
	ConfirmedAt  *time.Time
	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ServiceOrder struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceID   uuid.UUID       `gorm:"type:uuid;not null"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(50);not null;default:'pending'"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FeeRate     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FeeAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ReceivedAt  *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
