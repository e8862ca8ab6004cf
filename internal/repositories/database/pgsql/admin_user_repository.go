package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftship/ratequote/internal/apperrors"
	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
)

// PgxAdminUserRepository stores admin users in PostgreSQL.
type PgxAdminUserRepository struct {
	BaseRepository
}

// NewPgxAdminUserRepository creates a new repository for admin user data.
func NewPgxAdminUserRepository(pool *pgxpool.Pool) *PgxAdminUserRepository {
	return &PgxAdminUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AdminUserRepositoryFacade = (*PgxAdminUserRepository)(nil)

// SaveAdminUser persists a new admin user.
func (r *PgxAdminUserRepository) SaveAdminUser(ctx context.Context, user domain.AdminUser) error {
	query := `
		INSERT INTO admin_users (admin_user_id, username, name, password_hash,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.AdminUserID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save admin user %s: %w", user.Username, err)
	}
	return nil
}

// FindAdminUserByUsername retrieves an admin user by username.
func (r *PgxAdminUserRepository) FindAdminUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	query := `
		SELECT admin_user_id, username, name, password_hash,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM admin_users
		WHERE username = $1;
	`
	var user domain.AdminUser
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&user.AdminUserID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin user %s: %w", username, err)
	}
	return &user, nil
}
