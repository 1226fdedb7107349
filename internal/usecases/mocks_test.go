package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"vendorhub.backend/internal/domain/entities"
	"vendorhub.backend/internal/domain/events"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

func (m *MockUnitOfWork) WithLock(ctx context.Context) context.Context {
	m.Called(ctx)
	return ctx
}

// Mock MerchantRepository
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) List(ctx context.Context, limit, offset int) ([]*entities.Merchant, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entities.Merchant), args.Int(1), args.Error(2)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// Mock BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *entities.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	args := m.Called(ctx, merchantID, limit, offset)
	return args.Get(0).([]*entities.Booking), args.Int(1), args.Error(2)
}

// Mock ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Update(ctx context.Context, reservation *entities.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Reservation, int, error) {
	args := m.Called(ctx, merchantID, limit, offset)
	return args.Get(0).([]*entities.Reservation), args.Int(1), args.Error(2)
}

// Mock ServiceOrderRepository
type MockServiceOrderRepository struct {
	mock.Mock
}

func (m *MockServiceOrderRepository) Create(ctx context.Context, order *entities.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) Update(ctx context.Context, order *entities.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.ServiceOrder, int, error) {
	args := m.Called(ctx, merchantID, limit, offset)
	return args.Get(0).([]*entities.ServiceOrder), args.Int(1), args.Error(2)
}

// Mock MerchantStatusLogRepository
type MockStatusLogRepository struct {
	mock.Mock
}

func (m *MockStatusLogRepository) Create(ctx context.Context, log *entities.MerchantStatusLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockStatusLogRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.MerchantStatusLog, int, error) {
	args := m.Called(ctx, merchantID, limit, offset)
	return args.Get(0).([]*entities.MerchantStatusLog), args.Int(1), args.Error(2)
}

// Mock events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt events.StatusChangedEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}
