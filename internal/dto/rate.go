package dto

import (
	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// RateImportResult reports the outcome of a rate-table CSV import.
type RateImportResult struct {
	Imported int `json:"imported"`
}

// RateRowResponse defines the data returned for one rate row.
type RateRowResponse struct {
	RateRowID   string          `json:"rateRowID"`
	PackageType int             `json:"packageType"`
	Tier        string          `json:"tier"`
	Zone        string          `json:"zone"`
	Weight      decimal.Decimal `json:"weight"`
	Price       decimal.Decimal `json:"price"`
}

// ToRateRowResponse converts a domain.RateRow to RateRowResponse DTO
func ToRateRowResponse(r *domain.RateRow) RateRowResponse {
	return RateRowResponse{
		RateRowID:   r.RateRowID,
		PackageType: int(r.PackageType),
		Tier:        string(r.Tier),
		Zone:        r.Zone,
		Weight:      r.Weight,
		Price:       r.Price,
	}
}

// ToListRateRowResponse converts a slice of domain.RateRow to response DTOs
func ToListRateRowResponse(rows []domain.RateRow) []RateRowResponse {
	res := make([]RateRowResponse, len(rows))
	for i := range rows {
		res[i] = ToRateRowResponse(&rows[i])
	}
	return res
}
