package services

import (
	"context"

	"github.com/swiftship/ratequote/internal/core/domain"
	"github.com/swiftship/ratequote/internal/dto"
)

// CountryReaderSvc defines read operations for country data
type CountryReaderSvc interface {
	// GetCountryByCode retrieves a specific country by its code.
	GetCountryByCode(ctx context.Context, code string) (*domain.Country, error)

	// ListCountries retrieves all countries.
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// CountryWriterSvc defines write operations for country data
type CountryWriterSvc interface {
	// CreateCountry persists a new country together with its bulk content
	// and placeholder configuration.
	CreateCountry(ctx context.Context, req dto.CreateCountryRequest, creatorUserID string) (*domain.Country, error)

	// UpdateCountry updates a country's mutable attributes and re-submits
	// its content and placeholder configuration. The code never changes.
	UpdateCountry(ctx context.Context, code string, req dto.UpdateCountryRequest, updaterUserID string) (*domain.Country, error)
}

// CountrySvcFacade combines all country-related service interfaces
type CountrySvcFacade interface {
	CountryReaderSvc
	CountryWriterSvc
}
