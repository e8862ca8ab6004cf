package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
)

// PgxContentRepository stores localized content entries and placeholder-field
// configuration in PostgreSQL.
type PgxContentRepository struct {
	BaseRepository
}

// NewPgxContentRepository creates a new repository for content data.
func NewPgxContentRepository(pool *pgxpool.Pool) *PgxContentRepository {
	return &PgxContentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ContentRepositoryFacade = (*PgxContentRepository)(nil)

// GetContentEntries retrieves a country's content entries as a sparse map.
func (r *PgxContentRepository) GetContentEntries(ctx context.Context, countryID string) (map[string]string, error) {
	query := `SELECT field_key, text FROM content_entries WHERE country_id = $1;`
	rows, err := r.Pool.Query(ctx, query, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query content entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var key, text string
		if err := rows.Scan(&key, &text); err != nil {
			return nil, fmt.Errorf("failed to scan content entry: %w", err)
		}
		entries[key] = text
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read content entries: %w", err)
	}
	return entries, nil
}

// GetPlaceholderFields retrieves a country's placeholder fields of one kind
// in configuration order.
func (r *PgxContentRepository) GetPlaceholderFields(ctx context.Context, countryID string, kind domain.PlaceholderKind) ([]domain.PlaceholderField, error) {
	query := `
		SELECT country_id, name, kind, static_value,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM placeholder_fields
		WHERE country_id = $1 AND kind = $2
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, countryID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query placeholder fields: %w", err)
	}
	defer rows.Close()

	fields, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlaceholderField, error) {
		var field domain.PlaceholderField
		var fieldKind string
		err := row.Scan(
			&field.CountryID,
			&field.Name,
			&fieldKind,
			&field.StaticValue,
			&field.CreatedAt,
			&field.CreatedBy,
			&field.LastUpdatedAt,
			&field.LastUpdatedBy,
		)
		field.Kind = domain.PlaceholderKind(fieldKind)
		return field, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan placeholder fields: %w", err)
	}
	return fields, nil
}

// UpsertContentEntries replaces or inserts the given entries for a country.
func (r *PgxContentRepository) UpsertContentEntries(ctx context.Context, countryID string, entries []domain.ContentEntry) error {
	query := `
		INSERT INTO content_entries (country_id, field_key, text, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (country_id, field_key) DO UPDATE SET
			text = EXCLUDED.text,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(query,
			countryID,
			entry.FieldKey,
			entry.Text,
			entry.CreatedAt,
			entry.CreatedBy,
			entry.LastUpdatedAt,
			entry.LastUpdatedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert content entry: %w", err)
		}
	}
	return nil
}

// ReplacePlaceholderFields swaps a country's placeholder configuration of one
// kind with the supplied set, preserving submission order.
func (r *PgxContentRepository) ReplacePlaceholderFields(ctx context.Context, countryID string, kind domain.PlaceholderKind, fields []domain.PlaceholderField) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	deleteQuery := `DELETE FROM placeholder_fields WHERE country_id = $1 AND kind = $2;`
	if _, err := tx.Exec(ctx, deleteQuery, countryID, string(kind)); err != nil {
		return fmt.Errorf("failed to clear placeholder fields: %w", err)
	}

	insertQuery := `
		INSERT INTO placeholder_fields (country_id, name, kind, static_value, position,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for i, field := range fields {
		_, err := tx.Exec(ctx, insertQuery,
			countryID,
			field.Name,
			string(kind),
			field.StaticValue,
			i,
			field.CreatedAt,
			field.CreatedBy,
			field.LastUpdatedAt,
			field.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert placeholder field %s: %w", field.Name, err)
		}
	}

	return r.Commit(ctx, tx)
}
