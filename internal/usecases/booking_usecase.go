package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"vendorhub.backend/internal/domain/entities"
	domainerrors "vendorhub.backend/internal/domain/errors"
	"vendorhub.backend/internal/domain/repositories"
	"vendorhub.backend/internal/domain/statemachine"
	"vendorhub.backend/pkg/metrics"
)

// BookingUsecase handles booking creation and queries. Status changes go
// through the transition executor.
type BookingUsecase struct {
	bookingRepo  repositories.BookingRepository
	merchantRepo repositories.MerchantRepository
	feeRate      decimal.Decimal
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(
	bookingRepo repositories.BookingRepository,
	merchantRepo repositories.MerchantRepository,
	feeRate decimal.Decimal,
) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo:  bookingRepo,
		merchantRepo: merchantRepo,
		feeRate:      feeRate,
	}
}

// Create places a booking in pending status with computed platform fees.
// The merchant must be active with the booking capability enabled.
func (u *BookingUsecase) Create(ctx context.Context, input *entities.BookingCreateInput) (*entities.Booking, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != entities.MerchantStatusActive {
		return nil, domainerrors.ErrMerchantNotActive
	}
	if !merchant.CanTakeBookings {
		return nil, domainerrors.ErrCapabilityDisabled
	}

	price, err := decimal.NewFromString(input.ServicePrice)
	if err != nil || price.Sign() < 0 {
		return nil, domainerrors.BadRequest("invalid service price")
	}

	fee := ComputeFee(price, u.feeRate)
	booking := &entities.Booking{
		MerchantID:   input.MerchantID,
		ServiceID:    input.ServiceID,
		CustomerID:   input.CustomerID,
		Status:       entities.BookingStatusPending,
		ServicePrice: price,
		FeeRate:      u.feeRate,
		FeeAmount:    fee,
		TotalAmount:  ComputeTotal(price, fee),
		ScheduledAt:  input.ScheduledAt,
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, domainerrors.NewPersistenceError("booking create", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(string(statemachine.KindBooking)).Inc()
	return booking, nil
}

// Get returns a booking by id
func (u *BookingUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	return u.bookingRepo.GetByID(ctx, id)
}

// ListByMerchant returns a merchant's bookings
func (u *BookingUsecase) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	return u.bookingRepo.ListByMerchantID(ctx, merchantID, limit, offset)
}
