package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"vendorhub.backend/internal/domain/entities"
	domainerrors "vendorhub.backend/internal/domain/errors"
	"vendorhub.backend/internal/domain/repositories"
	"vendorhub.backend/internal/domain/statemachine"
	"vendorhub.backend/pkg/metrics"
	"vendorhub.backend/pkg/utils"
)

// MerchantUsecase handles merchant registration, profile updates, the
// checklist-gated submission, and the audit timeline.
type MerchantUsecase struct {
	merchantRepo  repositories.MerchantRepository
	userRepo      repositories.UserRepository
	statusLogRepo repositories.MerchantStatusLogRepository
	uow           repositories.UnitOfWork
	checklist     *ChecklistUsecase
	transitions   *TransitionUsecase
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
	statusLogRepo repositories.MerchantStatusLogRepository,
	uow repositories.UnitOfWork,
	checklist *ChecklistUsecase,
	transitions *TransitionUsecase,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo:  merchantRepo,
		userRepo:      userRepo,
		statusLogRepo: statusLogRepo,
		uow:           uow,
		checklist:     checklist,
		transitions:   transitions,
	}
}

// Register creates a merchant in pending status and writes the initial audit
// entry (from_status null). One merchant per user.
func (u *MerchantUsecase) Register(ctx context.Context, input *entities.MerchantRegisterInput) (*entities.Merchant, error) {
	if input.MerchantType != entities.MerchantTypeIndividual &&
		input.MerchantType != entities.MerchantTypeOrganization {
		return nil, domainerrors.BadRequest("invalid merchant type")
	}

	user, err := u.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	existing, err := u.merchantRepo.GetByUserID(ctx, user.ID)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.NewAppError(409, "merchant already registered for user", domainerrors.ErrAlreadyExists)
	}

	now := time.Now()
	merchant := &entities.Merchant{
		UserID:          user.ID,
		ParentID:        input.ParentID,
		Name:            input.Name,
		Description:     input.Description,
		ContactPhone:    input.ContactPhone,
		MerchantType:    input.MerchantType,
		Status:          entities.MerchantStatusPending,
		StatusChangedAt: null.TimeFrom(now),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.merchantRepo.Create(txCtx, merchant); err != nil {
			return domainerrors.NewPersistenceError("merchant create", err)
		}
		return u.statusLogRepo.Create(txCtx, &entities.MerchantStatusLog{
			MerchantID: merchant.ID,
			ToStatus:   string(entities.MerchantStatusPending),
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(string(statemachine.KindMerchant)).Inc()
	return merchant, nil
}

// Get returns a merchant by id
func (u *MerchantUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	return u.merchantRepo.GetByID(ctx, id)
}

// MerchantProfileInput carries the mutable onboarding profile fields
type MerchantProfileInput struct {
	Name            *string     `json:"name,omitempty"`
	Description     *string     `json:"description,omitempty"`
	ContactPhone    *string     `json:"contactPhone,omitempty"`
	BusinessTypeID  *uuid.UUID  `json:"businessTypeId,omitempty"`
	CanSellProducts *bool       `json:"canSellProducts,omitempty"`
	CanTakeBookings *bool       `json:"canTakeBookings,omitempty"`
	CanRentUnits    *bool       `json:"canRentUnits,omitempty"`
	LogoURL         *string     `json:"logoUrl,omitempty"`
	Documents       interface{} `json:"documents,omitempty"`
	AcceptTerms     bool        `json:"acceptTerms,omitempty"`
}

// UpdateProfile applies partial profile updates. It never touches status;
// status changes go through the transition executor only.
func (u *MerchantUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, input *MerchantProfileInput) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		merchant.Name = *input.Name
	}
	if input.Description != nil {
		merchant.Description = *input.Description
	}
	if input.ContactPhone != nil {
		merchant.ContactPhone = *input.ContactPhone
	}
	if input.BusinessTypeID != nil {
		merchant.BusinessTypeID = input.BusinessTypeID
	}
	if input.CanSellProducts != nil {
		merchant.CanSellProducts = *input.CanSellProducts
	}
	if input.CanTakeBookings != nil {
		merchant.CanTakeBookings = *input.CanTakeBookings
	}
	if input.CanRentUnits != nil {
		merchant.CanRentUnits = *input.CanRentUnits
	}
	if input.LogoURL != nil {
		merchant.LogoURL = null.StringFrom(*input.LogoURL)
	}
	if input.Documents != nil {
		if err := merchant.Documents.Marshal(input.Documents); err != nil {
			return nil, domainerrors.BadRequest("invalid documents payload")
		}
	}
	if input.AcceptTerms && !merchant.AcceptedTermsAt.Valid {
		merchant.AcceptedTermsAt = null.TimeFrom(time.Now())
	}

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, domainerrors.NewPersistenceError("merchant update", err)
	}
	return merchant, nil
}

// SubmitForReview performs the checklist-gated pending/rejected -> submitted
// transition.
func (u *MerchantUsecase) SubmitForReview(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, merchant.UserID)
	if err != nil {
		return nil, err
	}

	checklist := ComputeChecklist(merchant, user)
	if !CanSubmit(merchant, checklist) {
		return nil, domainerrors.UnprocessableEntity(
			"onboarding checklist incomplete", domainerrors.ErrChecklistIncomplete)
	}

	// Rejected merchants resubmit through pending; both steps land in the
	// audit log.
	if merchant.Status == entities.MerchantStatusRejected {
		if _, err := u.transitions.Apply(ctx, statemachine.KindMerchant, id,
			string(entities.MerchantStatusPending), "", actorID); err != nil {
			return nil, err
		}
	}

	result, err := u.transitions.Apply(ctx, statemachine.KindMerchant, id,
		string(entities.MerchantStatusSubmitted), "", actorID)
	if err != nil {
		return nil, err
	}
	return result.Entity.(*entities.Merchant), nil
}

// TimelinePage is one page of the merchant status timeline
type TimelinePage struct {
	Entries []*entities.TimelineEntry `json:"entries"`
	Meta    utils.PaginationMeta      `json:"meta"`
}

// GetTimeline returns the merchant's status change history, oldest first
func (u *MerchantUsecase) GetTimeline(ctx context.Context, merchantID uuid.UUID, page, limit int) (*TimelinePage, error) {
	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		return nil, err
	}

	params := utils.GetPaginationParams(page, limit)
	logs, total, err := u.statusLogRepo.ListByMerchantID(ctx, merchantID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.TimelineEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, log.ToTimelineEntry())
	}
	return &TimelinePage{
		Entries: entries,
		Meta:    utils.CalculateMeta(int64(total), params.Page, params.Limit),
	}, nil
}

// AllowedTransitions returns the legal next statuses for the merchant's
// current status, for pre-filtering in admin UIs.
func (u *MerchantUsecase) AllowedTransitions(ctx context.Context, id uuid.UUID) ([]string, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return statemachine.AllowedTransitions(statemachine.KindMerchant, string(merchant.Status)), nil
}
