package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"vendorhub.backend/internal/domain/entities"
	domainerrors "vendorhub.backend/internal/domain/errors"
	"vendorhub.backend/internal/infrastructure/models"
)

// ServiceOrderRepository implements service order data operations
type ServiceOrderRepository struct {
	db *gorm.DB
}

// NewServiceOrderRepository creates a new service order repository
func NewServiceOrderRepository(db *gorm.DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

// Create creates a new service order
func (r *ServiceOrderRepository) Create(ctx context.Context, order *entities.ServiceOrder) error {
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(serviceOrderToModel(order)).Error
}

// GetByID gets a service order by ID
func (r *ServiceOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceOrder, error) {
	var m models.ServiceOrder
	db := withRowLock(ctx, GetDB(ctx, r.db)).WithContext(ctx)
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return serviceOrderToEntity(&m), nil
}

// Update updates a service order
func (r *ServiceOrderRepository) Update(ctx context.Context, order *entities.ServiceOrder) error {
	order.UpdatedAt = time.Now()

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where("id = ?", order.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(serviceOrderToModel(order))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMerchantID returns a merchant's service orders, newest first
func (r *ServiceOrderRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.ServiceOrder, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ServiceOrder{}).Where("merchant_id = ?", merchantID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.ServiceOrder
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.ServiceOrder, 0, len(ms))
	for i := range ms {
		orders = append(orders, serviceOrderToEntity(&ms[i]))
	}
	return orders, int(total), nil
}

func serviceOrderToModel(e *entities.ServiceOrder) *models.ServiceOrder {
	return &models.ServiceOrder{
		ID:          e.ID,
		MerchantID:  e.MerchantID,
		ServiceID:   e.ServiceID,
		CustomerID:  e.CustomerID,
		Status:      string(e.Status),
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		FeeRate:     e.FeeRate,
		FeeAmount:   e.FeeAmount,
		TotalAmount: e.TotalAmount,
		ReceivedAt:  e.ReceivedAt.Ptr(),
		CompletedAt: e.CompletedAt.Ptr(),
		CancelledAt: e.CancelledAt.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func serviceOrderToEntity(m *models.ServiceOrder) *entities.ServiceOrder {
	return &entities.ServiceOrder{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		ServiceID:   m.ServiceID,
		CustomerID:  m.CustomerID,
		Status:      entities.ServiceOrderStatus(m.Status),
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		FeeRate:     m.FeeRate,
		FeeAmount:   m.FeeAmount,
		TotalAmount: m.TotalAmount,
		ReceivedAt:  null.TimeFromPtr(m.ReceivedAt),
		CompletedAt: null.TimeFromPtr(m.CompletedAt),
		CancelledAt: null.TimeFromPtr(m.CancelledAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
