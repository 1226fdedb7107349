package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantType represents merchant account types
type MerchantType string

const (
	MerchantTypeIndividual   MerchantType = "individual"
	MerchantTypeOrganization MerchantType = "organization"
)

// MerchantStatus represents the merchant onboarding status
type MerchantStatus string

const (
	MerchantStatusPending   MerchantStatus = "pending"
	MerchantStatusSubmitted MerchantStatus = "submitted"
	MerchantStatusApproved  MerchantStatus = "approved"
	MerchantStatusActive    MerchantStatus = "active"
	MerchantStatusRejected  MerchantStatus = "rejected"
	MerchantStatusSuspended MerchantStatus = "suspended"
)

// Merchant represents a vendor account. Merchants are never hard-deleted;
// suspended/rejected statuses represent deactivation.
type Merchant struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"userId"`
	ParentID        *uuid.UUID     `json:"parentId,omitempty"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	ContactPhone    string         `json:"contactPhone"`
	MerchantType    MerchantType   `json:"merchantType"`
	BusinessTypeID  *uuid.UUID     `json:"businessTypeId,omitempty"`
	Status          MerchantStatus `json:"status"`
	StatusReason    null.String    `json:"statusReason,omitempty"`
	StatusChangedAt null.Time      `json:"statusChangedAt,omitempty"`
	ApprovedAt      null.Time      `json:"approvedAt,omitempty"`
	AcceptedTermsAt null.Time      `json:"acceptedTermsAt,omitempty"`
	CanSellProducts bool           `json:"canSellProducts"`
	CanTakeBookings bool           `json:"canTakeBookings"`
	CanRentUnits    bool           `json:"canRentUnits"`
	LogoURL         null.String    `json:"logoUrl,omitempty"`
	Documents       null.JSON      `json:"documents,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// MerchantDocument is a single uploaded document stored in the documents JSON list
type MerchantDocument struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// MerchantRegisterInput represents input for merchant registration
type MerchantRegisterInput struct {
	UserID       uuid.UUID    `json:"userId" binding:"required"`
	ParentID     *uuid.UUID   `json:"parentId,omitempty"`
	Name         string       `json:"name" binding:"required,min=2,max=255"`
	Description  string       `json:"description,omitempty"`
	ContactPhone string       `json:"contactPhone,omitempty"`
	MerchantType MerchantType `json:"merchantType" binding:"required"`
}

// RequiredDocumentTypes returns the document types a merchant of the given
// type must upload before submitting for review.
func RequiredDocumentTypes(t MerchantType) []string {
	switch t {
	case MerchantTypeOrganization:
		return []string{"business_license"}
	default:
		return []string{"identity_document"}
	}
}
