package repositories

import (
	"context"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// AdminUserReader defines read operations for admin user data
type AdminUserReader interface {
	// FindAdminUserByUsername retrieves an admin user by username.
	FindAdminUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}

// AdminUserWriter defines write operations for admin user data
type AdminUserWriter interface {
	// SaveAdminUser persists a new admin user.
	SaveAdminUser(ctx context.Context, user domain.AdminUser) error
}

// AdminUserRepositoryFacade combines all admin-user repository interfaces
type AdminUserRepositoryFacade interface {
	AdminUserReader
	AdminUserWriter
}
