package repositories

import (
	"context"

	"github.com/google/uuid"
	"vendorhub.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations. The status column is
// written exclusively through Update calls issued by the transition executor.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error)
	Update(ctx context.Context, merchant *entities.Merchant) error
	List(ctx context.Context, limit, offset int) ([]*entities.Merchant, int, error)
}

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}
