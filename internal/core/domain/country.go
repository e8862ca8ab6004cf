package domain

import "github.com/shopspring/decimal"

// Country is a sender country with its pricing configuration.
type Country struct {
	CountryID    string `json:"countryID"`    // Primary Key (UUID)
	Code         string `json:"code"`         // Unique, immutable after creation (e.g., "ID")
	ISOCode      string `json:"isoCode"`      // e.g., "IDN"
	Name         string `json:"name"`         // Display name
	CurrencyCode string `json:"currencyCode"` // e.g., "IDR"

	// DecimalPlaces controls how many fractional digits a formatted tier total carries.
	DecimalPlaces int `json:"decimalPlaces"`

	// Per-tier currency suffixes appended to formatted totals. The original
	// tier never carries a suffix.
	PersonalSuffix string `json:"personalSuffix"`
	BusinessSuffix string `json:"businessSuffix"`

	// Weight ceilings in grams. Declared package weights arrive in kilograms
	// and are converted before comparison.
	DocMaxWeight    decimal.Decimal `json:"docMaxWeight"`    // Document packages only
	NonDocMaxWeight decimal.Decimal `json:"nonDocMaxWeight"` // Applied to every package regardless of type

	// ShareCountryID, when set, makes this country borrow rate rows from the
	// referenced country instead of maintaining its own table.
	ShareCountryID *string `json:"shareCountryID,omitempty"`

	AuditFields
}

// RateSourceCountryID resolves the effective rate-source country: the shared
// country when configured, otherwise the country itself.
func (c *Country) RateSourceCountryID() string {
	if c.ShareCountryID != nil && *c.ShareCountryID != "" {
		return *c.ShareCountryID
	}
	return c.CountryID
}
