package repositories

import (
	"context"

	"workflowpro-api/internal/domain/entities"
)

// UserRepository persists users. Finders return (nil, nil) when no row
// matches so callers can distinguish "absent" from a real failure.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	SearchByEmail(ctx context.Context, emailQuery string, limit int) ([]*entities.User, error)
	ListAll(ctx context.Context) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
}
