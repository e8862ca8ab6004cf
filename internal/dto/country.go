package dto

import (
	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// CreateCountryRequest defines the data needed to create a new country,
// including the bulk content and placeholder configuration the admin form
// submits in one shot.
type CreateCountryRequest struct {
	Code             string          `json:"code" binding:"required,uppercase,min=2,max=3"`
	ISOCode          string          `json:"isoCode" binding:"required,uppercase,len=3"`
	Name             string          `json:"name" binding:"required"`
	CurrencyCode     string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	DecimalPlaces    int             `json:"decimalPlaces" binding:"min=0,max=6"`
	PersonalSuffix   string          `json:"personalSuffix"`
	BusinessSuffix   string          `json:"businessSuffix"`
	DocMaxWeight     decimal.Decimal `json:"docMaxWeight" binding:"required"`
	NonDocMaxWeight  decimal.Decimal `json:"nonDocMaxWeight" binding:"required"`
	ShareCountryCode *string         `json:"shareCountryCode,omitempty"`

	// Contents maps content field keys to their localized text.
	Contents map[string]string `json:"contents"`
	// ReplaceableFields is the allow-list of dynamic placeholder names.
	ReplaceableFields []string `json:"replaceableFields"`
	// StaticFields maps static placeholder names to their fixed values.
	StaticFields map[string]string `json:"staticFields"`
}

// UpdateCountryRequest mirrors CreateCountryRequest minus the immutable code.
type UpdateCountryRequest struct {
	ISOCode          string          `json:"isoCode" binding:"required,uppercase,len=3"`
	Name             string          `json:"name" binding:"required"`
	CurrencyCode     string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	DecimalPlaces    int             `json:"decimalPlaces" binding:"min=0,max=6"`
	PersonalSuffix   string          `json:"personalSuffix"`
	BusinessSuffix   string          `json:"businessSuffix"`
	DocMaxWeight     decimal.Decimal `json:"docMaxWeight" binding:"required"`
	NonDocMaxWeight  decimal.Decimal `json:"nonDocMaxWeight" binding:"required"`
	ShareCountryCode *string         `json:"shareCountryCode,omitempty"`

	Contents          map[string]string `json:"contents"`
	ReplaceableFields []string          `json:"replaceableFields"`
	StaticFields      map[string]string `json:"staticFields"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	CountryID       string          `json:"countryID"`
	Code            string          `json:"code"`
	ISOCode         string          `json:"isoCode"`
	Name            string          `json:"name"`
	CurrencyCode    string          `json:"currencyCode"`
	DecimalPlaces   int             `json:"decimalPlaces"`
	PersonalSuffix  string          `json:"personalSuffix"`
	BusinessSuffix  string          `json:"businessSuffix"`
	DocMaxWeight    decimal.Decimal `json:"docMaxWeight"`
	NonDocMaxWeight decimal.Decimal `json:"nonDocMaxWeight"`
	ShareCountryID  *string         `json:"shareCountryID,omitempty"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		CountryID:       c.CountryID,
		Code:            c.Code,
		ISOCode:         c.ISOCode,
		Name:            c.Name,
		CurrencyCode:    c.CurrencyCode,
		DecimalPlaces:   c.DecimalPlaces,
		PersonalSuffix:  c.PersonalSuffix,
		BusinessSuffix:  c.BusinessSuffix,
		DocMaxWeight:    c.DocMaxWeight,
		NonDocMaxWeight: c.NonDocMaxWeight,
		ShareCountryID:  c.ShareCountryID,
	}
}

// ToListCountryResponse converts a slice of domain.Country to response DTOs
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i := range countries {
		res[i] = ToCountryResponse(&countries[i])
	}
	return res
}
