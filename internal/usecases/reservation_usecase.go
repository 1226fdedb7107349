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

// ReservationUsecase handles rental-unit reservation creation and queries
type ReservationUsecase struct {
	reservationRepo repositories.ReservationRepository
	merchantRepo    repositories.MerchantRepository
	feeRate         decimal.Decimal
}

// NewReservationUsecase creates a new reservation usecase
func NewReservationUsecase(
	reservationRepo repositories.ReservationRepository,
	merchantRepo repositories.MerchantRepository,
	feeRate decimal.Decimal,
) *ReservationUsecase {
	return &ReservationUsecase{
		reservationRepo: reservationRepo,
		merchantRepo:    merchantRepo,
		feeRate:         feeRate,
	}
}

// Create places a reservation in pending status with computed platform fees.
// The merchant must be active with the rental capability enabled.
func (u *ReservationUsecase) Create(ctx context.Context, input *entities.ReservationCreateInput) (*entities.Reservation, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != entities.MerchantStatusActive {
		return nil, domainerrors.ErrMerchantNotActive
	}
	if !merchant.CanRentUnits {
		return nil, domainerrors.ErrCapabilityDisabled
	}

	price, err := decimal.NewFromString(input.TotalPrice)
	if err != nil || price.Sign() < 0 {
		return nil, domainerrors.BadRequest("invalid total price")
	}

	fee := ComputeFee(price, u.feeRate)
	reservation := &entities.Reservation{
		MerchantID:  input.MerchantID,
		UnitID:      input.UnitID,
		CustomerID:  input.CustomerID,
		Status:      entities.ReservationStatusPending,
		TotalPrice:  price,
		FeeRate:     u.feeRate,
		FeeAmount:   fee,
		TotalAmount: ComputeTotal(price, fee),
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
	}

	if err := u.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, domainerrors.NewPersistenceError("reservation create", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(string(statemachine.KindReservation)).Inc()
	return reservation, nil
}

// Get returns a reservation by id
func (u *ReservationUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Reservation, error) {
	return u.reservationRepo.GetByID(ctx, id)
}

// ListByMerchant returns a merchant's reservations
func (u *ReservationUsecase) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Reservation, int, error) {
	return u.reservationRepo.ListByMerchantID(ctx, merchantID, limit, offset)
}
