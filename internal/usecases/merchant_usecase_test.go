package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"vendorhub.backend/internal/domain/entities"
	domainerrors "vendorhub.backend/internal/domain/errors"
	"vendorhub.backend/internal/usecases"
)

type merchantFixture struct {
	merchantRepo  *MockMerchantRepository
	userRepo      *MockUserRepository
	statusLogRepo *MockStatusLogRepository
	uow           *MockUnitOfWork
	usecase       *usecases.MerchantUsecase
}

func newMerchantFixture() *merchantFixture {
	f := &merchantFixture{
		merchantRepo:  new(MockMerchantRepository),
		userRepo:      new(MockUserRepository),
		statusLogRepo: new(MockStatusLogRepository),
		uow:           new(MockUnitOfWork),
	}
	checklist := usecases.NewChecklistUsecase(f.merchantRepo, f.userRepo)
	transitions := usecases.NewTransitionUsecase(
		f.merchantRepo, new(MockBookingRepository), new(MockReservationRepository),
		new(MockServiceOrderRepository), f.statusLogRepo, f.uow, nil,
	)
	f.usecase = usecases.NewMerchantUsecase(
		f.merchantRepo, f.userRepo, f.statusLogRepo, f.uow, checklist, transitions,
	)
	return f
}

func TestRegister_CreatesPendingMerchantWithInitialAuditEntry(t *testing.T) {
	f := newMerchantFixture()

	user := verifiedUser()
	f.userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	f.merchantRepo.On("GetByUserID", mock.Anything, user.ID).Return(nil, domainerrors.ErrNotFound)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.merchantRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.statusLogRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	merchant, err := f.usecase.Register(context.Background(), &entities.MerchantRegisterInput{
		UserID:       user.ID,
		Name:         "Corner Cafe",
		MerchantType: entities.MerchantTypeIndividual,
	})

	assert.NoError(t, err)
	assert.Equal(t, entities.MerchantStatusPending, merchant.Status)
	assert.True(t, merchant.StatusChangedAt.Valid)

	f.statusLogRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(log *entities.MerchantStatusLog) bool {
		return !log.FromStatus.Valid && log.ToStatus == "pending"
	}))
}

func TestRegister_RejectsInvalidMerchantType(t *testing.T) {
	f := newMerchantFixture()

	_, err := f.usecase.Register(context.Background(), &entities.MerchantRegisterInput{
		UserID:       uuid.New(),
		Name:         "Shop",
		MerchantType: "franchise",
	})

	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	f.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRegister_OneMerchantPerUser(t *testing.T) {
	f := newMerchantFixture()

	user := verifiedUser()
	f.userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	f.merchantRepo.On("GetByUserID", mock.Anything, user.ID).
		Return(&entities.Merchant{ID: uuid.New(), UserID: user.ID}, nil)

	_, err := f.usecase.Register(context.Background(), &entities.MerchantRegisterInput{
		UserID:       user.ID,
		Name:         "Second Shop",
		MerchantType: entities.MerchantTypeOrganization,
	})

	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	f := newMerchantFixture()

	merchant := &entities.Merchant{
		ID:           uuid.New(),
		Name:         "Old Name",
		Description:  "Old description",
		Status:       entities.MerchantStatusPending,
		MerchantType: entities.MerchantTypeIndividual,
	}
	f.merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)
	f.merchantRepo.On("Update", mock.Anything, merchant).Return(nil)

	name := "New Name"
	logo := "https://cdn.example.com/logo.png"
	canBook := true
	updated, err := f.usecase.UpdateProfile(context.Background(), merchant.ID, &usecases.MerchantProfileInput{
		Name:            &name,
		LogoURL:         &logo,
		CanTakeBookings: &canBook,
		Documents:       []entities.MerchantDocument{{Type: "identity_document", URL: "https://x/id.pdf"}},
		AcceptTerms:     true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Old description", updated.Description)
	assert.True(t, updated.CanTakeBookings)
	assert.Equal(t, logo, updated.LogoURL.String)
	assert.True(t, updated.AcceptedTermsAt.Valid)
	assert.True(t, updated.Documents.Valid)
	// profile updates never touch status
	assert.Equal(t, entities.MerchantStatusPending, updated.Status)
}

func TestUpdateProfile_AcceptTermsOnlyStampsOnce(t *testing.T) {
	f := newMerchantFixture()

	accepted := time.Now().Add(-24 * time.Hour)
	merchant := &entities.Merchant{ID: uuid.New(), Status: entities.MerchantStatusPending}
	merchant.AcceptedTermsAt.SetValid(accepted)
	f.merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)
	f.merchantRepo.On("Update", mock.Anything, merchant).Return(nil)

	updated, err := f.usecase.UpdateProfile(context.Background(), merchant.ID, &usecases.MerchantProfileInput{
		AcceptTerms: true,
	})

	assert.NoError(t, err)
	assert.True(t, updated.AcceptedTermsAt.Time.Equal(accepted))
}

// Scenario: a fully prepared pending merchant submits for review.
func TestSubmitForReview_Succeeds(t *testing.T) {
	f := newMerchantFixture()

	merchant := readyMerchant()
	user := verifiedUser()
	merchant.UserID = user.ID

	f.merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)
	f.userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.uow.On("WithLock", mock.Anything).Return()
	f.merchantRepo.On("Update", mock.Anything, merchant).Return(nil)
	f.statusLogRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	updated, err := f.usecase.SubmitForReview(context.Background(), merchant.ID, nil)

	assert.NoError(t, err)
	assert.Equal(t, entities.MerchantStatusSubmitted, updated.Status)
	f.statusLogRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(log *entities.MerchantStatusLog) bool {
		return log.FromStatus.String == "pending" && log.ToStatus == "submitted"
	}))

	// the checklist now reports the application as submitted
	checklist := usecases.ComputeChecklist(updated, user)
	assert.True(t, checklist.Item(entities.ChecklistApplicationSubmitted).Completed)
}

func TestSubmitForReview_IncompleteChecklist(t *testing.T) {
	f := newMerchantFixture()

	merchant := readyMerchant()
	merchant.LogoURL.Valid = false
	user := verifiedUser()
	merchant.UserID = user.ID

	f.merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)
	f.userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	_, err := f.usecase.SubmitForReview(context.Background(), merchant.ID, nil)

	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.ErrorIs(t, err, domainerrors.ErrChecklistIncomplete)
	assert.Equal(t, entities.MerchantStatusPending, merchant.Status)
	f.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestGetTimeline(t *testing.T) {
	f := newMerchantFixture()

	merchantID := uuid.New()
	actor := uuid.New()
	logs := []*entities.MerchantStatusLog{
		{ID: uuid.New(), MerchantID: merchantID, ToStatus: "pending", CreatedAt: time.Now().Add(-2 * time.Hour)},
		{ID: uuid.New(), MerchantID: merchantID, ToStatus: "submitted", ChangedBy: &actor, ChangedByName: "Admin", CreatedAt: time.Now()},
	}
	f.merchantRepo.On("GetByID", mock.Anything, merchantID).Return(&entities.Merchant{ID: merchantID}, nil)
	f.statusLogRepo.On("ListByMerchantID", mock.Anything, merchantID, 20, 0).Return(logs, 2, nil)

	page, err := f.usecase.GetTimeline(context.Background(), merchantID, 1, 20)

	assert.NoError(t, err)
	assert.Len(t, page.Entries, 2)
	assert.Equal(t, "pending", page.Entries[0].ToStatus)
	assert.Nil(t, page.Entries[0].ChangedBy)
	assert.NotNil(t, page.Entries[1].ChangedBy)
	assert.Equal(t, "Admin", page.Entries[1].ChangedBy.Name)
	assert.Equal(t, int64(2), page.Meta.TotalCount)
}

func TestGetTimeline_MerchantNotFound(t *testing.T) {
	f := newMerchantFixture()

	merchantID := uuid.New()
	f.merchantRepo.On("GetByID", mock.Anything, merchantID).Return(nil, domainerrors.ErrNotFound)

	_, err := f.usecase.GetTimeline(context.Background(), merchantID, 1, 20)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAllowedTransitions_ReflectsCurrentStatus(t *testing.T) {
	f := newMerchantFixture()

	merchant := &entities.Merchant{ID: uuid.New(), Status: entities.MerchantStatusSubmitted}
	f.merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)

	allowed, err := f.usecase.AllowedTransitions(context.Background(), merchant.ID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"approved", "rejected"}, allowed)
}
