package services

import (
	"context"
	"io"

	"github.com/swiftship/ratequote/internal/core/domain"
	"github.com/swiftship/ratequote/internal/dto"
)

// RateReaderSvc defines read operations for rate-table data
type RateReaderSvc interface {
	// ListRateRows retrieves a country's full rate table.
	ListRateRows(ctx context.Context, countryCode string) ([]domain.RateRow, error)
}

// RateWriterSvc defines write operations for rate-table data
type RateWriterSvc interface {
	// ImportRateRows parses a CSV stream of rate rows and upserts them for
	// the given country, keyed by (packageType, tier, zone, weight).
	ImportRateRows(ctx context.Context, countryCode string, csvData io.Reader, importerUserID string) (*dto.RateImportResult, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
