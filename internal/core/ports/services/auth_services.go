package services

import (
	"context"

	"github.com/swiftship/ratequote/internal/dto"
)

// AuthSvcFacade defines admin authentication operations.
type AuthSvcFacade interface {
	// Login verifies admin credentials and issues a JWT on success.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
