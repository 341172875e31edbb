package identity

import (
	"context"
	"errors"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/identity"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AdminService provisions the admin principal from the command line
type AdminService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewAdminService creates a new AdminService. blacklist may be nil; when set,
// a password reset revokes every token issued to the user so far.
func NewAdminService(userRepo identity.UserRepository, blacklist auth.TokenBlacklist, tokenTTL time.Duration, logger *zap.Logger) *AdminService {
	return &AdminService{userRepo: userRepo, blacklist: blacklist, tokenTTL: tokenTTL, logger: logger}
}

// Create adds an admin user. It fails if the username is taken.
func (s *AdminService) Create(ctx context.Context, username, password string) (*UserInfo, error) {
	existing, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewAlreadyExists("Username already exists")
	}

	user, err := identity.NewUser(username, password, identity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Admin user created", zap.String("username", user.Username), zap.String("user_id", user.ID.String()))
	info := ToUserInfo(user)
	return &info, nil
}

// Verify returns the user named username, or nil when there is none
func (s *AdminService) Verify(ctx context.Context, username string) (*UserInfo, error) {
	user, err := s.lookup(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// ResetPassword replaces the password of an existing user
func (s *AdminService) ResetPassword(ctx context.Context, username, password string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	if s.blacklist != nil {
		if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), s.tokenTTL); err != nil {
			s.logger.Warn("Failed to revoke existing tokens", zap.String("username", user.Username), zap.Error(err))
		}
	}
	s.logger.Info("Admin password reset", zap.String("username", user.Username))
	return nil
}

func (s *AdminService) lookup(ctx context.Context, username string) (*identity.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return user, err
}
