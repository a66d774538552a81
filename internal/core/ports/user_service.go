package ports

import (
	"context"

	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/domain"
)

// RegisterInput carries a sign-up request into the service layer.
type RegisterInput struct {
	Email    string
	Password string
	UserName string
}

// ExternalIdentityInput is the artifact produced by a third-party OAuth code
// exchange: a verified identity plus the provider's access token. The
// exchange itself happens outside this service.
type ExternalIdentityInput struct {
	Email       string
	UserName    string
	AccessToken string
}

// LoginResult pairs a signed token with the user it authenticates.
type LoginResult struct {
	Token string
	User  *domain.User
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	LoginExternal(ctx context.Context, in ExternalIdentityInput) (*LoginResult, error)

	// Promote moves the principal's stored role from Standard to Elevated and
	// reissues a token carrying the new role. Tokens issued before promotion
	// keep their old role until natural expiry.
	Promote(ctx context.Context, principal auth.Principal) (*LoginResult, error)

	StoreProfileImage(ctx context.Context, userID string, data []byte, contentType string) error
	LoadProfileImage(ctx context.Context, userID string) ([]byte, string, error)
}
