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

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant in pending status
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	merchant.ID = uuid.New()
	merchant.Status = entities.MerchantStatusPending
	merchant.CreatedAt = time.Now()
	merchant.UpdatedAt = merchant.CreatedAt

	m := merchantToModel(merchant)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a merchant by ID
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	db := withRowLock(ctx, GetDB(ctx, r.db)).WithContext(ctx)
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return merchantToEntity(&m), nil
}

// GetByUserID gets a merchant by owning user ID
func (r *MerchantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return merchantToEntity(&m), nil
}

// Update updates a merchant
func (r *MerchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	merchant.UpdatedAt = time.Now()
	m := merchantToModel(merchant)

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Merchant{}).
		Where("id = ?", merchant.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns merchants ordered by creation time, newest first
func (r *MerchantRepository) List(ctx context.Context, limit, offset int) ([]*entities.Merchant, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Merchant{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.Merchant
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	merchants := make([]*entities.Merchant, 0, len(ms))
	for i := range ms {
		merchants = append(merchants, merchantToEntity(&ms[i]))
	}
	return merchants, int(total), nil
}

func merchantToModel(e *entities.Merchant) *models.Merchant {
	m := &models.Merchant{
		ID:              e.ID,
		UserID:          e.UserID,
		ParentID:        e.ParentID,
		Name:            e.Name,
		Description:     e.Description,
		ContactPhone:    e.ContactPhone,
		MerchantType:    string(e.MerchantType),
		BusinessTypeID:  e.BusinessTypeID,
		Status:          string(e.Status),
		StatusReason:    e.StatusReason.Ptr(),
		StatusChangedAt: e.StatusChangedAt.Ptr(),
		ApprovedAt:      e.ApprovedAt.Ptr(),
		AcceptedTermsAt: e.AcceptedTermsAt.Ptr(),
		CanSellProducts: e.CanSellProducts,
		CanTakeBookings: e.CanTakeBookings,
		CanRentUnits:    e.CanRentUnits,
		LogoURL:         e.LogoURL.Ptr(),
		Documents:       "[]",
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Documents.Valid {
		m.Documents = string(e.Documents.JSON)
	}
	return m
}

func merchantToEntity(m *models.Merchant) *entities.Merchant {
	e := &entities.Merchant{
		ID:              m.ID,
		UserID:          m.UserID,
		ParentID:        m.ParentID,
		Name:            m.Name,
		Description:     m.Description,
		ContactPhone:    m.ContactPhone,
		MerchantType:    entities.MerchantType(m.MerchantType),
		BusinessTypeID:  m.BusinessTypeID,
		Status:          entities.MerchantStatus(m.Status),
		StatusReason:    null.StringFromPtr(m.StatusReason),
		StatusChangedAt: null.TimeFromPtr(m.StatusChangedAt),
		ApprovedAt:      null.TimeFromPtr(m.ApprovedAt),
		AcceptedTermsAt: null.TimeFromPtr(m.AcceptedTermsAt),
		CanSellProducts: m.CanSellProducts,
		CanTakeBookings: m.CanTakeBookings,
		CanRentUnits:    m.CanRentUnits,
		LogoURL:         null.StringFromPtr(m.LogoURL),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Documents != "" && m.Documents != "[]" {
		e.Documents = null.JSONFrom([]byte(m.Documents))
	}
	return e
}
