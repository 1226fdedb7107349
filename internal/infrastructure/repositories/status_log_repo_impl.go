package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"vendorhub.backend/internal/domain/entities"
	"vendorhub.backend/internal/infrastructure/models"
	"vendorhub.backend/pkg/utils"
)

// MerchantStatusLogRepository implements the append-only audit log
type MerchantStatusLogRepository struct {
	db *gorm.DB
}

// NewMerchantStatusLogRepository creates a new status log repository
func NewMerchantStatusLogRepository(db *gorm.DB) *MerchantStatusLogRepository {
	return &MerchantStatusLogRepository{db: db}
}

// Create appends a status log entry. No business validation happens here;
// the transition executor already validated the change.
func (r *MerchantStatusLogRepository) Create(ctx context.Context, log *entities.MerchantStatusLog) error {
	// v7 IDs keep the audit log sortable by insertion order
	log.ID = utils.GenerateUUIDv7()
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	m := &models.MerchantStatusLog{
		ID:         log.ID,
		MerchantID: log.MerchantID,
		FromStatus: log.FromStatus.Ptr(),
		ToStatus:   log.ToStatus,
		Reason:     log.Reason.Ptr(),
		ChangedBy:  log.ChangedBy,
		Metadata:   "{}",
		CreatedAt:  log.CreatedAt,
	}
	if log.Metadata.Valid {
		m.Metadata = string(log.Metadata.JSON)
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// statusLogRow carries the log columns plus the joined actor name
type statusLogRow struct {
	models.MerchantStatusLog
	ChangedByName *string
}

// ListByMerchantID returns entries ordered by creation time ascending,
// oldest first, with the actor name resolved for timeline display.
func (r *MerchantStatusLogRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.MerchantStatusLog, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.MerchantStatusLog{}).
		Where("merchant_id = ?", merchantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Table("merchant_status_logs").
		Select("merchant_status_logs.*, users.name AS changed_by_name").
		Joins("LEFT JOIN users ON users.id = merchant_status_logs.changed_by").
		Where("merchant_status_logs.merchant_id = ?", merchantID).
		Order("merchant_status_logs.created_at ASC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []statusLogRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]*entities.MerchantStatusLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, statusLogRowToEntity(&rows[i]))
	}
	return logs, int(total), nil
}

func statusLogRowToEntity(row *statusLogRow) *entities.MerchantStatusLog {
	e := &entities.MerchantStatusLog{
		ID:         row.ID,
		MerchantID: row.MerchantID,
		FromStatus: null.StringFromPtr(row.FromStatus),
		ToStatus:   row.ToStatus,
		Reason:     null.StringFromPtr(row.Reason),
		ChangedBy:  row.ChangedBy,
		CreatedAt:  row.CreatedAt,
	}
	if row.ChangedByName != nil {
		e.ChangedByName = *row.ChangedByName
	}
	if row.Metadata != "" && row.Metadata != "{}" {
		e.Metadata = null.JSONFrom([]byte(row.Metadata))
	}
	return e
}
