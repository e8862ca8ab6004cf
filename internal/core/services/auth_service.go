package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swiftship/ratequote/internal/apperrors"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/dto"
	"github.com/swiftship/ratequote/internal/utils"
)

// AuthService verifies admin credentials and issues JWTs for the admin API.
type AuthService struct {
	adminUserRepo portsrepo.AdminUserReader
	jwtSecret     string
	jwtExpiry     time.Duration
	jwtIssuer     string
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminUserRepo portsrepo.AdminUserReader, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		adminUserRepo: adminUserRepo,
		jwtSecret:     jwtSecret,
		jwtExpiry:     jwtExpiry,
		jwtIssuer:     jwtIssuer,
	}
}

// Ensure implementation matches interface
var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login verifies the credentials and returns a signed token. Wrong username
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.adminUserRepo.FindAdminUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load admin user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.AdminUserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{Token: token}, nil
}
