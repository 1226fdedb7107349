package repositories

import (
	"context"

	"github.com/google/uuid"
	"vendorhub.backend/internal/domain/entities"
)

// MerchantStatusLogRepository defines the append-only audit log of merchant
// status changes. There is no update or delete path.
type MerchantStatusLogRepository interface {
	Create(ctx context.Context, log *entities.MerchantStatusLog) error
	// ListByMerchantID returns entries ordered by creation time ascending
	// (oldest first), plus the total entry count for pagination.
	ListByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.MerchantStatusLog, int, error)
}
