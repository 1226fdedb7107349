package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents the account owning a merchant
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	EmailVerifiedAt null.Time `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsEmailVerified reports whether the user completed email verification
func (u *User) IsEmailVerified() bool {
	return u.EmailVerifiedAt.Valid
}
