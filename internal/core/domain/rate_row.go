package domain

import "github.com/shopspring/decimal"

// RateRow is one priced cell of a country's rate table. The tuple
// (packageType, tier, zone, weight) is the natural key used for upsert
// during import; weight is matched by exact equality at lookup time.
type RateRow struct {
	RateRowID   string          `json:"rateRowID"` // Primary Key (UUID)
	CountryID   string          `json:"countryID"` // FK -> Country.countryID (Not Null)
	PackageType PackageType     `json:"packageType"`
	Tier        RateTier        `json:"tier"`
	Zone        string          `json:"zone"`
	Weight      decimal.Decimal `json:"weight"`
	Price       decimal.Decimal `json:"price"` // Fixed-point decimal, never float
	AuditFields
}
