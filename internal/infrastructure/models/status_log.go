package models

import (
	"time"

	"github.com/google/uuid"
)

// MerchantStatusLog rows are insert-only; no update or delete path exists.
type MerchantStatusLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromStatus *string    `gorm:"type:varchar(50)"`
	ToStatus   string     `gorm:"type:varchar(50);not null"`
	Reason     *string    `gorm:"type:text"`
	ChangedBy  *uuid.UUID `gorm:"type:uuid"`
	Metadata   string     `gorm:"type:jsonb;default:'{}'"`
	CreatedAt  time.Time  `gorm:"index"`
}
