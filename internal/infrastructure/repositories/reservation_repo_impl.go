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

// ReservationRepository implements reservation data operations
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create creates a new reservation
func (r *ReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) error {
	reservation.ID = uuid.New()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(reservationToModel(reservation)).Error
}

// GetByID gets a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Reservation, error) {
	var m models.Reservation
	db := withRowLock(ctx, GetDB(ctx, r.db)).WithContext(ctx)
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reservationToEntity(&m), nil
}

// Update updates a reservation
func (r *ReservationRepository) Update(ctx context.Context, reservation *entities.Reservation) error {
	reservation.UpdatedAt = time.Now()

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(reservationToModel(reservation))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMerchantID returns a merchant's reservations, newest first
func (r *ReservationRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Reservation, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Reservation{}).Where("merchant_id = ?", merchantID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.Reservation
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	reservations := make([]*entities.Reservation, 0, len(ms))
	for i := range ms {
		reservations = append(reservations, reservationToEntity(&ms[i]))
	}
	return reservations, int(total), nil
}

func reservationToModel(e *entities.Reservation) *models.Reservation {
	return &models.Reservation{
		ID:           e.ID,
		MerchantID:   e.MerchantID,
		UnitID:       e.UnitID,
		CustomerID:   e.CustomerID,
		Status:       string(e.Status),
		TotalPrice:   e.TotalPrice,
		FeeRate:      e.FeeRate,
		FeeAmount:    e.FeeAmount,
		TotalAmount:  e.TotalAmount,
		StartsAt:     e.StartsAt.Ptr(),
		EndsAt:       e.EndsAt.Ptr(),
		ConfirmedAt:  e.ConfirmedAt.Ptr(),
		CheckedInAt:  e.CheckedInAt.Ptr(),
		CheckedOutAt: e.CheckedOutAt.Ptr(),
		CancelledAt:  e.CancelledAt.Ptr(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func reservationToEntity(m *models.Reservation) *entities.Reservation {
	return &entities.Reservation{
		ID:           m.ID,
		MerchantID:   m.MerchantID,
		UnitID:       m.UnitID,
		CustomerID:   m.CustomerID,
		Status:       entities.ReservationStatus(m.Status),
		TotalPrice:   m.TotalPrice,
		FeeRate:      m.FeeRate,
		FeeAmount:    m.FeeAmount,
		TotalAmount:  m.TotalAmount,
		StartsAt:     null.TimeFromPtr(m.StartsAt),
		EndsAt:       null.TimeFromPtr(m.EndsAt),
		ConfirmedAt:  null.TimeFromPtr(m.ConfirmedAt),
		CheckedInAt:  null.TimeFromPtr(m.CheckedInAt),
		CheckedOutAt: null.TimeFromPtr(m.CheckedOutAt),
		CancelledAt:  null.TimeFromPtr(m.CancelledAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
