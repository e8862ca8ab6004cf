package repositories

import (
	"context"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// ContentReader defines read operations for localized content data
type ContentReader interface {
	// GetContentEntries retrieves a country's content entries as a sparse
	// fieldKey -> text map. Absent keys are legal.
	GetContentEntries(ctx context.Context, countryID string) (map[string]string, error)

	// GetPlaceholderFields retrieves a country's configured placeholder
	// fields of the given kind, in configuration order.
	GetPlaceholderFields(ctx context.Context, countryID string, kind domain.PlaceholderKind) ([]domain.PlaceholderField, error)
}

// ContentWriter defines write operations for localized content data
type ContentWriter interface {
	// UpsertContentEntries replaces or inserts the given entries for a country.
	UpsertContentEntries(ctx context.Context, countryID string, entries []domain.ContentEntry) error

	// ReplacePlaceholderFields swaps a country's placeholder configuration
	// for the given kind with the supplied set.
	ReplacePlaceholderFields(ctx context.Context, countryID string, kind domain.PlaceholderKind, fields []domain.PlaceholderField) error
}

// ContentRepositoryFacade combines all content-related repository interfaces
type ContentRepositoryFacade interface {
	ContentReader
	ContentWriter
}
