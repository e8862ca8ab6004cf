package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/apperrors"
	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/dto"
)

// Expected CSV header of a rate-table upload.
var rateCSVHeader = []string{"zone", "weight", "package_type", "tier", "price"}

// RateImportService ingests rate-table uploads and serves the raw table back
// to the admin panel.
type RateImportService struct {
	countryRepo portsrepo.CountryReader
	rateRepo    portsrepo.RateRepositoryFacade
}

// NewRateImportService creates a new RateImportService.
func NewRateImportService(countryRepo portsrepo.CountryReader, rateRepo portsrepo.RateRepositoryFacade) *RateImportService {
	return &RateImportService{countryRepo: countryRepo, rateRepo: rateRepo}
}

// Ensure implementation matches interface
var _ portssvc.RateSvcFacade = (*RateImportService)(nil)

// ImportRateRows parses a CSV stream and upserts every row for the country.
// Rows are keyed by (package_type, tier, zone, weight); a later row with the
// same key overrides an earlier one within the same file.
func (s *RateImportService) ImportRateRows(ctx context.Context, countryCode string, csvData io.Reader, importerUserID string) (*dto.RateImportResult, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load country %s: %w", countryCode, err)
	}

	reader := csv.NewReader(csvData)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: rate file is empty or unreadable", apperrors.ErrValidation)
	}
	if !matchesHeader(header) {
		return nil, fmt.Errorf("%w: rate file header must be %s", apperrors.ErrValidation, strings.Join(rateCSVHeader, ","))
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     importerUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: importerUserID,
	}

	// Natural key -> row; keeps the last occurrence per key.
	byKey := make(map[string]domain.RateRow)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: rate file line %d is malformed", apperrors.ErrValidation, line)
		}

		row, err := parseRateRecord(record, country.CountryID, audit)
		if err != nil {
			return nil, fmt.Errorf("%w: rate file line %d: %s", apperrors.ErrValidation, line, err)
		}

		key := fmt.Sprintf("%d|%s|%s|%s", row.PackageType, row.Tier, row.Zone, row.Weight)
		byKey[key] = row
	}

	if len(byKey) == 0 {
		return nil, fmt.Errorf("%w: rate file contains no rows", apperrors.ErrValidation)
	}

	rows := make([]domain.RateRow, 0, len(byKey))
	for _, row := range byKey {
		rows = append(rows, row)
	}

	if err := s.rateRepo.UpsertRateRows(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to upsert rate rows: %w", err)
	}

	return &dto.RateImportResult{Imported: len(rows)}, nil
}

// ListRateRows retrieves a country's full rate table.
func (s *RateImportService) ListRateRows(ctx context.Context, countryCode string) ([]domain.RateRow, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load country %s: %w", countryCode, err)
	}

	rows, err := s.rateRepo.ListRateRowsByCountry(ctx, country.CountryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate rows: %w", err)
	}
	if rows == nil {
		return []domain.RateRow{}, nil
	}
	return rows, nil
}

func matchesHeader(header []string) bool {
	if len(header) != len(rateCSVHeader) {
		return false
	}
	for i, col := range header {
		if strings.ToLower(strings.TrimSpace(col)) != rateCSVHeader[i] {
			return false
		}
	}
	return true
}

func parseRateRecord(record []string, countryID string, audit domain.AuditFields) (domain.RateRow, error) {
	if len(record) != len(rateCSVHeader) {
		return domain.RateRow{}, fmt.Errorf("expected %d columns, got %d", len(rateCSVHeader), len(record))
	}

	zone := strings.TrimSpace(record[0])
	if zone == "" {
		return domain.RateRow{}, fmt.Errorf("zone is required")
	}

	weight, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil || weight.Sign() <= 0 {
		return domain.RateRow{}, fmt.Errorf("invalid weight %q", record[1])
	}

	typeValue, err := strconv.Atoi(strings.TrimSpace(record[2]))
	packageType := domain.PackageType(typeValue)
	if err != nil || !packageType.IsValid() {
		return domain.RateRow{}, fmt.Errorf("invalid package type %q", record[2])
	}

	tier := domain.RateTier(strings.ToUpper(strings.TrimSpace(record[3])))
	if !tier.IsValid() {
		return domain.RateRow{}, fmt.Errorf("invalid tier %q", record[3])
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil || price.Sign() < 0 {
		return domain.RateRow{}, fmt.Errorf("invalid price %q", record[4])
	}

	return domain.RateRow{
		RateRowID:   uuid.NewString(),
		CountryID:   countryID,
		PackageType: packageType,
		Tier:        tier,
		Zone:        zone,
		Weight:      weight,
		Price:       price,
		AuditFields: audit,
	}, nil
}
