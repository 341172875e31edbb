// Package identity holds login, logout and admin provisioning.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/identity"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// InvalidCredentialsMessage is the only message a failed login returns
const InvalidCredentialsMessage = "Invalid credentials"

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login verifies the password and issues a signed token. Unknown users and
// wrong passwords fail identically and take the same time.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		identity.BurnPasswordCheck(req.Password)
		s.logger.Warn("Login failed", zap.String("username", req.Username), zap.String("reason", "unknown user"))
		return nil, shared.NewDomainError(shared.CodeInvalidCredentials, InvalidCredentialsMessage)
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Login failed", zap.String("username", req.Username), zap.String("reason", "wrong password"))
		return nil, shared.NewDomainError(shared.CodeInvalidCredentials, InvalidCredentialsMessage)
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	s.logger.Info("User logged in successfully",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &LoginResponse{
		Token:     token.AccessToken,
		ExpiresAt: token.ExpiresAt,
		User:      ToUserInfo(user),
	}, nil
}

// Logout revokes the presented token for the rest of its lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to revoke token", zap.String("jti", claims.ID), zap.Error(err))
		return shared.NewInternalError(err)
	}
	s.logger.Info("User logged out", zap.String("user_id", claims.UserID), zap.Duration("revoked_for", ttl.Round(time.Second)))
	return nil
}

// Me returns the principal behind a validated token
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeUnauthorized, "User no longer exists")
		}
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}
