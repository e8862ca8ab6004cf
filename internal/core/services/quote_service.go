package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/swiftship/ratequote/internal/apperrors"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/dto"
	"github.com/swiftship/ratequote/internal/utils"
)

// QuoteService is the single entry point for quote computation. It chains
// package validation, tier aggregation and content resolution, then formats
// the final payload. Any failure aborts the whole request; no partial quote
// is ever returned.
type QuoteService struct {
	countryRepo  portsrepo.CountryReader
	receiverRepo portsrepo.ReceiverReader
	validator    *PackageValidator
	aggregator   *QuoteAggregator
	content      *ContentResolver
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(countryRepo portsrepo.CountryReader, receiverRepo portsrepo.ReceiverReader, validator *PackageValidator, aggregator *QuoteAggregator, content *ContentResolver) *QuoteService {
	return &QuoteService{
		countryRepo:  countryRepo,
		receiverRepo: receiverRepo,
		validator:    validator,
		aggregator:   aggregator,
		content:      content,
	}
}

// Ensure implementation matches interface
var _ portssvc.QuoteSvcFacade = (*QuoteService)(nil)

// ComputeQuote computes the three tier totals and the localized content
// payload for one quote request.
func (s *QuoteService) ComputeQuote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, req.CountryCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: Country not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load country %s: %w", req.CountryCode, err)
	}

	receiver, err := s.receiverRepo.FindReceiverByCountryAndID(ctx, country.CountryID, req.ReceiverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: Receiver not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load receiver %s: %w", req.ReceiverID, err)
	}

	packages := req.ToDomainPackages()
	if err := s.validator.Validate(country, packages); err != nil {
		return nil, err
	}

	totals, err := s.aggregator.Aggregate(ctx, country, receiver, packages)
	if err != nil {
		return nil, err
	}

	langs, err := s.content.Resolve(ctx, country, receiver, req.Extras)
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{
		Rates: dto.RatesDTO{
			Personal: utils.FormatTierTotal(totals.Personal, country.DecimalPlaces, country.PersonalSuffix),
			Business: utils.FormatTierTotal(totals.Business, country.DecimalPlaces, country.BusinessSuffix),
			// The original tier is an internal reference price and never
			// carries a currency suffix.
			Original: utils.FormatTierTotal(totals.Original, country.DecimalPlaces, ""),
		},
		CurrencyCode: totals.CurrencyCode,
		Langs:        langs,
	}, nil
}
