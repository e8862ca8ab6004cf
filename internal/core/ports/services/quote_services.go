package services

import (
	"context"

	"github.com/swiftship/ratequote/internal/dto"
)

// QuoteSvcFacade is the single entry point for quote computation.
type QuoteSvcFacade interface {
	// ComputeQuote validates the request, aggregates tier totals and merges
	// the localized content payload. Failures are terminal: no partial quote
	// is ever returned.
	ComputeQuote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
}
