package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
)

const rateRowColumns = `
	rate_row_id, country_id, package_type, tier, zone, weight, price,
	created_at, created_by, last_updated_at, last_updated_by
`

// PgxRateRepository stores rate rows in PostgreSQL.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new repository for rate-table data.
func NewPgxRateRepository(pool *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

// FindRateRows retrieves every tier's rate row matching the exact
// (packageType, weight, zone) tuple. Weight matches by equality, never by
// bracket; the numeric column comparison is exact for the fixed-point values
// the importer writes.
func (r *PgxRateRepository) FindRateRows(ctx context.Context, countryID string, packageType domain.PackageType, weight decimal.Decimal, zone string) ([]domain.RateRow, error) {
	query := `
		SELECT ` + rateRowColumns + `
		FROM rate_rows
		WHERE country_id = $1 AND package_type = $2 AND weight = $3 AND zone = $4
		ORDER BY weight ASC;
	`
	rows, err := r.Pool.Query(ctx, query, countryID, int(packageType), weight, zone)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate rows: %w", err)
	}
	defer rows.Close()

	return collectRateRows(rows)
}

// ListRateRowsByCountry retrieves a country's full rate table.
func (r *PgxRateRepository) ListRateRowsByCountry(ctx context.Context, countryID string) ([]domain.RateRow, error) {
	query := `
		SELECT ` + rateRowColumns + `
		FROM rate_rows
		WHERE country_id = $1
		ORDER BY package_type, tier, zone, weight;
	`
	rows, err := r.Pool.Query(ctx, query, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate rows: %w", err)
	}
	defer rows.Close()

	return collectRateRows(rows)
}

// UpsertRateRows inserts or updates rows keyed by the natural key
// (country_id, package_type, tier, zone, weight).
func (r *PgxRateRepository) UpsertRateRows(ctx context.Context, rateRows []domain.RateRow) error {
	query := `
		INSERT INTO rate_rows (` + rateRowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (country_id, package_type, tier, zone, weight) DO UPDATE SET
			price = EXCLUDED.price,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	batch := &pgx.Batch{}
	for _, row := range rateRows {
		batch.Queue(query,
			row.RateRowID,
			row.CountryID,
			int(row.PackageType),
			string(row.Tier),
			row.Zone,
			row.Weight,
			row.Price,
			row.CreatedAt,
			row.CreatedBy,
			row.LastUpdatedAt,
			row.LastUpdatedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range rateRows {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert rate row: %w", err)
		}
	}
	return nil
}

func collectRateRows(rows pgx.Rows) ([]domain.RateRow, error) {
	rateRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RateRow, error) {
		var rr domain.RateRow
		var packageType int
		var tier string
		err := row.Scan(
			&rr.RateRowID,
			&rr.CountryID,
			&packageType,
			&tier,
			&rr.Zone,
			&rr.Weight,
			&rr.Price,
			&rr.CreatedAt,
			&rr.CreatedBy,
			&rr.LastUpdatedAt,
			&rr.LastUpdatedBy,
		)
		rr.PackageType = domain.PackageType(packageType)
		rr.Tier = domain.RateTier(tier)
		return rr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rate rows: %w", err)
	}
	return rateRows, nil
}
