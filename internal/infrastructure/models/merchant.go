package models

import (
	"time"

	"github.com/google/uuid"
)

type Merchant struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ParentID        *uuid.UUID `gorm:"type:uuid;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	ContactPhone    string    `gorm:"type:varchar(50)"`
	MerchantType    string    `gorm:"type:varchar(50);not null"`
	BusinessTypeID  *uuid.UUID `gorm:"type:uuid"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending'"`
	StatusReason    *string   `gorm:"type:text"`
	StatusChangedAt *time.Time
	ApprovedAt      *time.Time
	AcceptedTermsAt *time.Time
	CanSellProducts bool `gorm:"not null;default:false"`
	CanTakeBookings bool `gorm:"not null;default:false"`
	CanRentUnits    bool `gorm:"not null;default:false"`
	LogoURL         *string `gorm:"type:text"`
	Documents       string  `gorm:"type:jsonb;default:'[]'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(255);not null"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
