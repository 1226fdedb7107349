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

// ServiceOrderUsecase handles service order creation and queries
type ServiceOrderUsecase struct {
	orderRepo    repositories.ServiceOrderRepository
	merchantRepo repositories.MerchantRepository
	feeRate      decimal.Decimal
}

// NewServiceOrderUsecase creates a new service order usecase
func NewServiceOrderUsecase(
	orderRepo repositories.ServiceOrderRepository,
	merchantRepo repositories.MerchantRepository,
	feeRate decimal.Decimal,
) *ServiceOrderUsecase {
	return &ServiceOrderUsecase{
		orderRepo:    orderRepo,
		merchantRepo: merchantRepo,
		feeRate:      feeRate,
	}
}

// Create places a service order in pending status. The base amount is
// quantity x unit price; fees are computed from it. The merchant must be
// active with the product capability enabled.
func (u *ServiceOrderUsecase) Create(ctx context.Context, input *entities.ServiceOrderCreateInput) (*entities.ServiceOrder, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != entities.MerchantStatusActive {
		return nil, domainerrors.ErrMerchantNotActive
	}
	if !merchant.CanSellProducts {
		return nil, domainerrors.ErrCapabilityDisabled
	}

	if input.Quantity < 1 {
		return nil, domainerrors.BadRequest("quantity must be at least 1")
	}
	unitPrice, err := decimal.NewFromString(input.UnitPrice)
	if err != nil || unitPrice.Sign() < 0 {
		return nil, domainerrors.BadRequest("invalid unit price")
	}

	order := &entities.ServiceOrder{
		MerchantID: input.MerchantID,
		ServiceID:  input.ServiceID,
		CustomerID: input.CustomerID,
		Status:     entities.ServiceOrderStatusPending,
		Quantity:   input.Quantity,
		UnitPrice:  unitPrice,
		FeeRate:    u.feeRate,
	}
	base := order.BaseAmount()
	order.FeeAmount = ComputeFee(base, u.feeRate)
	order.TotalAmount = ComputeTotal(base, order.FeeAmount)

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, domainerrors.NewPersistenceError("service order create", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(string(statemachine.KindServiceOrder)).Inc()
	return order, nil
}

// Get returns a service order by id
func (u *ServiceOrderUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.ServiceOrder, error) {
	return u.orderRepo.GetByID(ctx, id)
}

// ListByMerchant returns a merchant's service orders
func (u *ServiceOrderUsecase) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.ServiceOrder, int, error) {
	return u.orderRepo.ListByMerchantID(ctx, merchantID, limit, offset)
}
