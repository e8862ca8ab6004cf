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

const receiverColumns = `
	receiver_id, country_id, name, zone, transit_day,
	created_at, created_by, last_updated_at, last_updated_by
`

// PgxReceiverRepository stores receivers in PostgreSQL.
type PgxReceiverRepository struct {
	BaseRepository
}

// NewPgxReceiverRepository creates a new repository for receiver data.
func NewPgxReceiverRepository(pool *pgxpool.Pool) *PgxReceiverRepository {
	return &PgxReceiverRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReceiverRepositoryFacade = (*PgxReceiverRepository)(nil)

// SaveReceiver persists a new receiver.
func (r *PgxReceiverRepository) SaveReceiver(ctx context.Context, receiver domain.Receiver) error {
	query := `
		INSERT INTO receivers (` + receiverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		receiver.ReceiverID,
		receiver.CountryID,
		receiver.Name,
		receiver.Zone,
		receiver.TransitDay,
		receiver.CreatedAt,
		receiver.CreatedBy,
		receiver.LastUpdatedAt,
		receiver.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save receiver %s: %w", receiver.Name, err)
	}
	return nil
}

// UpdateReceiver updates an existing receiver.
func (r *PgxReceiverRepository) UpdateReceiver(ctx context.Context, receiver domain.Receiver) error {
	query := `
		UPDATE receivers SET
			name = $3,
			zone = $4,
			transit_day = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE country_id = $1 AND receiver_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		receiver.CountryID,
		receiver.ReceiverID,
		receiver.Name,
		receiver.Zone,
		receiver.TransitDay,
		receiver.LastUpdatedAt,
		receiver.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update receiver %s: %w", receiver.ReceiverID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReceiver removes a receiver.
func (r *PgxReceiverRepository) DeleteReceiver(ctx context.Context, countryID string, receiverID string) error {
	query := `DELETE FROM receivers WHERE country_id = $1 AND receiver_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, countryID, receiverID)
	if err != nil {
		return fmt.Errorf("failed to delete receiver %s: %w", receiverID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindReceiverByCountryAndID retrieves one of a country's receivers.
func (r *PgxReceiverRepository) FindReceiverByCountryAndID(ctx context.Context, countryID string, receiverID string) (*domain.Receiver, error) {
	query := `SELECT ` + receiverColumns + ` FROM receivers WHERE country_id = $1 AND receiver_id = $2;`
	var receiver domain.Receiver
	err := r.Pool.QueryRow(ctx, query, countryID, receiverID).Scan(
		&receiver.ReceiverID,
		&receiver.CountryID,
		&receiver.Name,
		&receiver.Zone,
		&receiver.TransitDay,
		&receiver.CreatedAt,
		&receiver.CreatedBy,
		&receiver.LastUpdatedAt,
		&receiver.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receiver %s: %w", receiverID, err)
	}
	return &receiver, nil
}

// ListReceiversByCountry retrieves all receivers of a country ordered by name.
func (r *PgxReceiverRepository) ListReceiversByCountry(ctx context.Context, countryID string) ([]domain.Receiver, error) {
	query := `SELECT ` + receiverColumns + ` FROM receivers WHERE country_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivers: %w", err)
	}
	defer rows.Close()

	receivers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Receiver, error) {
		var receiver domain.Receiver
		err := row.Scan(
			&receiver.ReceiverID,
			&receiver.CountryID,
			&receiver.Name,
			&receiver.Zone,
			&receiver.TransitDay,
			&receiver.CreatedAt,
			&receiver.CreatedBy,
			&receiver.LastUpdatedAt,
			&receiver.LastUpdatedBy,
		)
		return receiver, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan receivers: %w", err)
	}
	return receivers, nil
}
