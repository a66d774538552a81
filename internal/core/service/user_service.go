package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/task-service/internal/api/metrics"
	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/domain"
	"github.com/taskhub/task-service/internal/core/ports"
)

// UserService implements registration, login, external identity login,
// role promotion, and profile image handling.
type UserService struct {
	repo   ports.UserRepository
	images ports.ProfileImageStore
	codec  *auth.Codec
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	images ports.ProfileImageStore,
	codec *auth.Codec,
	audit ports.AuditSink,
	log zerolog.Logger,
) *UserService {
	return &UserService{repo: repo, images: images, codec: codec, audit: audit, log: log}
}

func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" || in.UserName == "" {
		return nil, domain.ErrCredentialMismatch
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		UserName:     in.UserName,
		PasswordHash: string(hash),
		Role:         domain.RoleStandard,
		JoinedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *UserService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, strings.TrimSpace(email))
}

func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrCredentialMismatch
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.record(user.ID, domain.AuthEventLoginFailed, "password mismatch")
		return nil, domain.ErrCredentialMismatch
	}

	token, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	s.record(user.ID, domain.AuthEventLogin, "")
	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")

	return &ports.LoginResult{Token: token, User: user}, nil
}

// LoginExternal consumes a verified external identity plus the provider's
// access token. A first-time identity creates an account with a random
// placeholder password; the access token is stored for later revocation.
func (s *UserService) LoginExternal(ctx context.Context, in ports.ExternalIdentityInput) (*ports.LoginResult, error) {
	if in.Email == "" || in.AccessToken == "" {
		return nil, domain.ErrCredentialMismatch
	}

	user, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(randomID()), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("hash placeholder password: %w", hashErr)
		}
		user, err = s.repo.Create(ctx, &domain.User{
			Email:        in.Email,
			UserName:     in.UserName,
			PasswordHash: string(hash),
			Role:         domain.RoleStandard,
			JoinedAt:     time.Now().UTC(),
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.repo.UpdateExternalAccessToken(ctx, user.ID, in.AccessToken); err != nil {
		return nil, fmt.Errorf("store external access token: %w", err)
	}
	user.ExternalAccessToken = in.AccessToken

	token, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.TokensIssuedTotal.WithLabelValues("external_login").Inc()
	s.record(user.ID, domain.AuthEventLogin, "external identity")

	return &ports.LoginResult{Token: token, User: user}, nil
}

// Promote persists the Standard-to-Elevated transition and reissues a token
// carrying the new role. Tokens issued before promotion stay valid with the
// old role until they expire; stateless tokens cannot be revoked.
func (s *UserService) Promote(ctx context.Context, principal auth.Principal) (*ports.LoginResult, error) {
	user, err := s.repo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	if err := user.Promote(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRole(ctx, user.ID, user.Role); err != nil {
		return nil, fmt.Errorf("persist role: %w", err)
	}

	token, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.TokensIssuedTotal.WithLabelValues("promotion").Inc()
	s.record(user.ID, domain.AuthEventPromotion, "")
	s.log.Info().Str("user_id", user.ID).Msg("user promoted to Elevated")

	return &ports.LoginResult{Token: token, User: user}, nil
}

func (s *UserService) StoreProfileImage(ctx context.Context, userID string, data []byte, contentType string) error {
	imageID := randomID()
	if err := s.images.Put(ctx, imageID, data, contentType); err != nil {
		return fmt.Errorf("store profile image: %w", err)
	}
	if err := s.repo.UpdateProfileImage(ctx, userID, imageID); err != nil {
		return fmt.Errorf("link profile image: %w", err)
	}
	return nil
}

func (s *UserService) LoadProfileImage(ctx context.Context, userID string) ([]byte, string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if user.ProfileImageID == "" {
		return nil, "", domain.ErrUserNotFound
	}
	return s.images.Get(ctx, user.ProfileImageID)
}

func (s *UserService) record(userID string, kind domain.AuthEventKind, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		UserID: userID,
		Kind:   kind,
		Detail: detail,
		At:     time.Now().UTC(),
	})
}

// randomID returns a 16-byte random hex string.
func randomID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
