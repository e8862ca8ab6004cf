package repositories

import (
	"context"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// CountryReader defines read operations for country data
type CountryReader interface {
	// FindCountryByCode retrieves a country by its unique code.
	FindCountryByCode(ctx context.Context, code string) (*domain.Country, error)

	// FindCountryByID retrieves a country by its primary key.
	FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error)

	// ListCountries retrieves all countries ordered by code.
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// CountryWriter defines write operations for country data
type CountryWriter interface {
	// SaveCountry persists a new country.
	SaveCountry(ctx context.Context, country domain.Country) error

	// UpdateCountry updates a country's mutable attributes. The code is
	// immutable and never touched by this operation.
	UpdateCountry(ctx context.Context, country domain.Country) error
}

// CountryRepositoryFacade combines all country-related repository interfaces
type CountryRepositoryFacade interface {
	CountryReader
	CountryWriter
}
