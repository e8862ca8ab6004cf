package dto

import (
	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// PackageDTO is one declared package in a quote request. Type uses the wire
// values 1 (document) and 2 (non-document).
type PackageDTO struct {
	Type   int             `json:"type" binding:"required,oneof=1 2"`
	Weight decimal.Decimal `json:"weight" binding:"required"`
}

// QuoteRequest defines the data needed to compute a quote.
type QuoteRequest struct {
	CountryCode string       `json:"country_code" binding:"required"`
	ReceiverID  string       `json:"receiver_id" binding:"required"`
	Packages    []PackageDTO `json:"packages" binding:"required,min=1,max=10,dive"`

	// Extras carries any additional string fields of the request body. They
	// feed dynamic placeholder substitution, filtered by the country's
	// replaceable-field allow-list. Populated by the handler, not bound.
	Extras map[string]string `json:"-"`
}

// ToDomainPackages converts the declared packages to domain form.
func (r QuoteRequest) ToDomainPackages() []domain.PackageDeclaration {
	pkgs := make([]domain.PackageDeclaration, len(r.Packages))
	for i, p := range r.Packages {
		pkgs[i] = domain.PackageDeclaration{
			Type:   domain.PackageType(p.Type),
			Weight: p.Weight,
		}
	}
	return pkgs
}

// RatesDTO holds the formatted per-tier totals. A nonzero total is a string
// like "1,500.00 SGD"; an exact-zero total is the literal integer 0.
type RatesDTO struct {
	Personal any `json:"personal"`
	Business any `json:"business"`
	Original any `json:"original"`
}

// QuoteResponse is the success payload of a quote computation.
type QuoteResponse struct {
	Rates        RatesDTO       `json:"rates"`
	CurrencyCode string         `json:"currency_code"`
	Langs        map[string]any `json:"langs"`
}
