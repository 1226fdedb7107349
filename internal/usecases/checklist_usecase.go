package usecases

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"
	"vendorhub.backend/internal/domain/entities"
	"vendorhub.backend/internal/domain/repositories"
)

// ChecklistUsecase derives the merchant onboarding checklist from the
// current merchant aggregate. The checklist gates the submit-for-review
// transition.
type ChecklistUsecase struct {
	merchantRepo repositories.MerchantRepository
	userRepo     repositories.UserRepository
}

// NewChecklistUsecase creates a new checklist usecase
func NewChecklistUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
) *ChecklistUsecase {
	return &ChecklistUsecase{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
	}
}

// Compute loads the merchant and its owning user and derives the checklist
func (u *ChecklistUsecase) Compute(ctx context.Context, merchantID uuid.UUID) (*entities.Checklist, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, merchant.UserID)
	if err != nil {
		return nil, err
	}
	return ComputeChecklist(merchant, user), nil
}

// ComputeChecklist derives the nine-item onboarding checklist from the
// merchant and owning user state.
func ComputeChecklist(merchant *entities.Merchant, user *entities.User) *entities.Checklist {
	items := []entities.ChecklistItem{
		{
			Key:       entities.ChecklistAccountCreated,
			Label:     "Account created",
			Completed: true, // existence of the merchant implies this
		},
		{
			Key:       entities.ChecklistEmailVerified,
			Label:     "Email verified",
			Completed: user != nil && user.IsEmailVerified(),
		},
		{
			Key:       entities.ChecklistBusinessTypeSelected,
			Label:     "Business type selected",
			Completed: merchant.BusinessTypeID != nil,
		},
		{
			Key:       entities.ChecklistCapabilitiesConfigured,
			Label:     "Capabilities configured",
			Completed: merchant.CanSellProducts || merchant.CanTakeBookings || merchant.CanRentUnits,
		},
		{
			Key:       entities.ChecklistBusinessDetailsCompleted,
			Label:     "Business details completed",
			Completed: hasBusinessDetails(merchant),
		},
		{
			Key:       entities.ChecklistLogoUploaded,
			Label:     "Logo uploaded",
			Completed: merchant.LogoURL.Valid && merchant.LogoURL.String != "",
		},
		{
			Key:       entities.ChecklistDocumentsUploaded,
			Label:     "Documents uploaded",
			Completed: hasRequiredDocument(merchant),
		},
		{
			Key:   entities.ChecklistApplicationSubmitted,
			Label: "Application submitted",
			Completed: merchant.Status == entities.MerchantStatusSubmitted ||
				merchant.Status == entities.MerchantStatusApproved ||
				merchant.Status == entities.MerchantStatusActive,
		},
		{
			Key:   entities.ChecklistAdminApproved,
			Label: "Approved by admin",
			Completed: merchant.Status == entities.MerchantStatusApproved ||
				merchant.Status == entities.MerchantStatusActive,
		},
	}

	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}

	return &entities.Checklist{
		Items:                items,
		CompletedCount:       completed,
		TotalCount:           len(items),
		CompletionPercentage: int(math.Round(float64(completed) / float64(len(items)) * 100)),
	}
}

// CanSubmit reports whether the merchant may be submitted for review:
// status must be pending or rejected, and every checklist item except
// application_submitted and admin_approved must be complete.
func CanSubmit(merchant *entities.Merchant, checklist *entities.Checklist) bool {
	if merchant.Status != entities.MerchantStatusPending && merchant.Status != entities.MerchantStatusRejected {
		return false
	}
	for _, item := range checklist.Items {
		if item.Key == entities.ChecklistApplicationSubmitted || item.Key == entities.ChecklistAdminApproved {
			continue
		}
		if !item.Completed {
			return false
		}
	}
	return true
}

func hasBusinessDetails(merchant *entities.Merchant) bool {
	return strings.TrimSpace(merchant.Name) != "" &&
		strings.TrimSpace(merchant.Description) != "" &&
		strings.TrimSpace(merchant.ContactPhone) != ""
}

func hasRequiredDocument(merchant *entities.Merchant) bool {
	if !merchant.Documents.Valid {
		return false
	}
	var docs []entities.MerchantDocument
	if err := json.Unmarshal(merchant.Documents.JSON, &docs); err != nil {
		return false
	}
	uploaded := make(map[string]bool, len(docs))
	for _, doc := range docs {
		if doc.URL != "" {
			uploaded[doc.Type] = true
		}
	}
	for _, required := range entities.RequiredDocumentTypes(merchant.MerchantType) {
		if uploaded[required] {
			return true
		}
	}
	return false
}
