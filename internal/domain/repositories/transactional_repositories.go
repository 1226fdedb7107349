package repositories

import (
	"context"

	"github.com/google/uuid"
	"vendorhub.backend/internal/domain/entities"
)

// BookingRepository defines booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	Update(ctx context.Context, booking *entities.Booking) error
	ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error)
}

// ReservationRepository defines reservation data operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entities.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Reservation, error)
	Update(ctx context.Context, reservation *entities.Reservation) error
	ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Reservation, int, error)
}

// ServiceOrderRepository defines service order data operations
type ServiceOrderRepository interface {
	Create(ctx context.Context, order *entities.ServiceOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceOrder, error)
	Update(ctx context.Context, order *entities.ServiceOrder) error
	ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.ServiceOrder, int, error)
}
