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

const countryColumns = `
	country_id, code, iso_code, name, currency_code, decimal_places,
	personal_suffix, business_suffix, doc_max_weight, non_doc_max_weight,
	share_country_id, created_at, created_by, last_updated_at, last_updated_by
`

// PgxCountryRepository stores countries in PostgreSQL.
type PgxCountryRepository struct {
	BaseRepository
}

// NewPgxCountryRepository creates a new repository for country data.
func NewPgxCountryRepository(pool *pgxpool.Pool) *PgxCountryRepository {
	return &PgxCountryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CountryRepositoryFacade = (*PgxCountryRepository)(nil)

// SaveCountry persists a new country.
func (r *PgxCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	query := `
		INSERT INTO countries (` + countryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		country.CountryID,
		country.Code,
		country.ISOCode,
		country.Name,
		country.CurrencyCode,
		country.DecimalPlaces,
		country.PersonalSuffix,
		country.BusinessSuffix,
		country.DocMaxWeight,
		country.NonDocMaxWeight,
		country.ShareCountryID,
		country.CreatedAt,
		country.CreatedBy,
		country.LastUpdatedAt,
		country.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save country %s: %w", country.Code, err)
	}
	return nil
}

// UpdateCountry updates a country's mutable attributes. The code column is
// deliberately absent from the SET list.
func (r *PgxCountryRepository) UpdateCountry(ctx context.Context, country domain.Country) error {
	query := `
		UPDATE countries SET
			iso_code = $2,
			name = $3,
			currency_code = $4,
			decimal_places = $5,
			personal_suffix = $6,
			business_suffix = $7,
			doc_max_weight = $8,
			non_doc_max_weight = $9,
			share_country_id = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE country_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		country.CountryID,
		country.ISOCode,
		country.Name,
		country.CurrencyCode,
		country.DecimalPlaces,
		country.PersonalSuffix,
		country.BusinessSuffix,
		country.DocMaxWeight,
		country.NonDocMaxWeight,
		country.ShareCountryID,
		country.LastUpdatedAt,
		country.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update country %s: %w", country.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCountryByCode retrieves a country by its unique code.
func (r *PgxCountryRepository) FindCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE code = $1;`
	return r.findOne(ctx, query, code)
}

// FindCountryByID retrieves a country by its primary key.
func (r *PgxCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE country_id = $1;`
	return r.findOne(ctx, query, countryID)
}

func (r *PgxCountryRepository) findOne(ctx context.Context, query string, arg any) (*domain.Country, error) {
	var country domain.Country
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&country.CountryID,
		&country.Code,
		&country.ISOCode,
		&country.Name,
		&country.CurrencyCode,
		&country.DecimalPlaces,
		&country.PersonalSuffix,
		&country.BusinessSuffix,
		&country.DocMaxWeight,
		&country.NonDocMaxWeight,
		&country.ShareCountryID,
		&country.CreatedAt,
		&country.CreatedBy,
		&country.LastUpdatedAt,
		&country.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country: %w", err)
	}
	return &country, nil
}

// ListCountries retrieves all countries ordered by code.
func (r *PgxCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	countries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Country, error) {
		var country domain.Country
		err := row.Scan(
			&country.CountryID,
			&country.Code,
			&country.ISOCode,
			&country.Name,
			&country.CurrencyCode,
			&country.DecimalPlaces,
			&country.PersonalSuffix,
			&country.BusinessSuffix,
			&country.DocMaxWeight,
			&country.NonDocMaxWeight,
			&country.ShareCountryID,
			&country.CreatedAt,
			&country.CreatedBy,
			&country.LastUpdatedAt,
			&country.LastUpdatedBy,
		)
		return country, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan countries: %w", err)
	}
	return countries, nil
}
