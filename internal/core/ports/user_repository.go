package ports

import (
	"context"

	"github.com/taskhub/task-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdateExternalAccessToken(ctx context.Context, id, accessToken string) error
	UpdateProfileImage(ctx context.Context, id, imageID string) error
}
