package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"vendorhub.backend/internal/domain/entities"
	domainerrors "vendorhub.backend/internal/domain/errors"
	"vendorhub.backend/internal/usecases"
)

func activeBookingMerchant() *entities.Merchant {
	return &entities.Merchant{
		ID:              uuid.New(),
		Status:          entities.MerchantStatusActive,
		CanTakeBookings: true,
	}
}

func TestBookingCreate_ComputesFees(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	merchantRepo := new(MockMerchantRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, merchantRepo, dec("5.00"))

	merchant := activeBookingMerchant()
	merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	booking, err := usecase.Create(context.Background(), &entities.BookingCreateInput{
		MerchantID:   merchant.ID,
		ServiceID:    uuid.New(),
		CustomerID:   uuid.New(),
		ServicePrice: "500.00",
	})

	assert.NoError(t, err)
	assert.Equal(t, entities.BookingStatusPending, booking.Status)
	assert.True(t, dec("25.00").Equal(booking.FeeAmount), "fee %s", booking.FeeAmount)
	assert.True(t, dec("525.00").Equal(booking.TotalAmount), "total %s", booking.TotalAmount)
	assert.True(t, dec("5.00").Equal(booking.FeeRate))
}

func TestBookingCreate_MerchantMustBeActive(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	merchantRepo := new(MockMerchantRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, merchantRepo, dec("5.00"))

	merchant := activeBookingMerchant()
	merchant.Status = entities.MerchantStatusApproved
	merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)

	_, err := usecase.Create(context.Background(), &entities.BookingCreateInput{
		MerchantID:   merchant.ID,
		ServiceID:    uuid.New(),
		CustomerID:   uuid.New(),
		ServicePrice: "100.00",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotActive)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingCreate_CapabilityDisabled(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	merchantRepo := new(MockMerchantRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, merchantRepo, dec("5.00"))

	merchant := activeBookingMerchant()
	merchant.CanTakeBookings = false
	merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)

	_, err := usecase.Create(context.Background(), &entities.BookingCreateInput{
		MerchantID:   merchant.ID,
		ServiceID:    uuid.New(),
		CustomerID:   uuid.New(),
		ServicePrice: "100.00",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCapabilityDisabled)
}

func TestBookingCreate_InvalidPrice(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	merchantRepo := new(MockMerchantRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, merchantRepo, dec("5.00"))

	merchant := activeBookingMerchant()
	merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)

	for _, price := range []string{"abc", "-10.00", ""} {
		_, err := usecase.Create(context.Background(), &entities.BookingCreateInput{
			MerchantID:   merchant.ID,
			ServiceID:    uuid.New(),
			CustomerID:   uuid.New(),
			ServicePrice: price,
		})
		var appErr *domainerrors.AppError
		assert.ErrorAs(t, err, &appErr, price)
		assert.Equal(t, 400, appErr.Code)
	}
}

func TestBookingCreate_PersistenceError(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	merchantRepo := new(MockMerchantRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, merchantRepo, dec("5.00"))

	merchant := activeBookingMerchant()
	merchantRepo.On("GetByID", mock.Anything, merchant.ID).Return(merchant, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := usecase.Create(context.Background(), &entities.BookingCreateInput{
		MerchantID:   merchant.ID,
		ServiceID:    uuid.New(),
		CustomerID:   uuid.New(),
		ServicePrice: "100.00",
	})

	var persistence *domainerrors.PersistenceError
	assert.ErrorAs(t, err, &persistence)
}
