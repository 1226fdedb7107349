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

// BookingRepository implements booking data operations
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(bookingToModel(booking)).Error
}

// GetByID gets a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	db := withRowLock(ctx, GetDB(ctx, r.db)).WithContext(ctx)
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bookingToEntity(&m), nil
}

// Update updates a booking
func (r *BookingRepository) Update(ctx context.Context, booking *entities.Booking) error {
	booking.UpdatedAt = time.Now()

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(bookingToModel(booking))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMerchantID returns a merchant's bookings, newest first
func (r *BookingRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Booking{}).Where("merchant_id = ?", merchantID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.Booking
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	bookings := make([]*entities.Booking, 0, len(ms))
	for i := range ms {
		bookings = append(bookings, bookingToEntity(&ms[i]))
	}
	return bookings, int(total), nil
}

func bookingToModel(e *entities.Booking) *models.Booking {
	return &models.Booking{
		ID:           e.ID,
		MerchantID:   e.MerchantID,
		ServiceID:    e.ServiceID,
		CustomerID:   e.CustomerID,
		Status:       string(e.Status),
		ServicePrice: e.ServicePrice,
		FeeRate:      e.FeeRate,
		FeeAmount:    e.FeeAmount,
		TotalAmount:  e.TotalAmount,
		ScheduledAt:  e.ScheduledAt.Ptr(),
		ConfirmedAt:  e.ConfirmedAt.Ptr(),
		CancelledAt:  e.CancelledAt.Ptr(),
		CompletedAt:  e.CompletedAt.Ptr(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func bookingToEntity(m *models.Booking) *entities.Booking {
	return &entities.Booking{
		ID:           m.ID,
		MerchantID:   m.MerchantID,
		ServiceID:    m.ServiceID,
		CustomerID:   m.CustomerID,
		Status:       entities.BookingStatus(m.Status),
		ServicePrice: m.ServicePrice,
		FeeRate:      m.FeeRate,
		FeeAmount:    m.FeeAmount,
		TotalAmount:  m.TotalAmount,
		ScheduledAt:  null.TimeFromPtr(m.ScheduledAt),
		ConfirmedAt:  null.TimeFromPtr(m.ConfirmedAt),
		CancelledAt:  null.TimeFromPtr(m.CancelledAt),
		CompletedAt:  null.TimeFromPtr(m.CompletedAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
