package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftship/ratequote/internal/apperrors"
	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/dto"
)

// CountryService maintains countries and their bulk-submitted content and
// placeholder configuration.
type CountryService struct {
	countryRepo portsrepo.CountryRepositoryFacade
	contentRepo portsrepo.ContentWriter
}

// NewCountryService creates a new CountryService.
func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade, contentRepo portsrepo.ContentWriter) *CountryService {
	return &CountryService{countryRepo: countryRepo, contentRepo: contentRepo}
}

// Ensure implementation matches interface
var _ portssvc.CountrySvcFacade = (*CountryService)(nil)

// CreateCountry persists a new country. The code must be unique; it is
// immutable afterwards.
func (s *CountryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest, creatorUserID string) (*domain.Country, error) {
	existing, err := s.countryRepo.FindCountryByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check country code %s: %w", req.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: country code %s already exists", apperrors.ErrDuplicate, req.Code)
	}

	shareCountryID, err := s.resolveShareCountry(ctx, req.ShareCountryCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	country := domain.Country{
		CountryID:       uuid.NewString(),
		Code:            req.Code,
		ISOCode:         req.ISOCode,
		Name:            req.Name,
		CurrencyCode:    req.CurrencyCode,
		DecimalPlaces:   req.DecimalPlaces,
		PersonalSuffix:  req.PersonalSuffix,
		BusinessSuffix:  req.BusinessSuffix,
		DocMaxWeight:    req.DocMaxWeight,
		NonDocMaxWeight: req.NonDocMaxWeight,
		ShareCountryID:  shareCountryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.countryRepo.SaveCountry(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to create country: %w", err)
	}

	if err := s.applyContentConfig(ctx, country.CountryID, req.Contents, req.ReplaceableFields, req.StaticFields, creatorUserID, now); err != nil {
		return nil, err
	}

	return &country, nil
}

// UpdateCountry updates a country's mutable attributes and re-submits its
// content and placeholder configuration in one shot, the way the admin form
// does.
func (s *CountryService) UpdateCountry(ctx context.Context, code string, req dto.UpdateCountryRequest, updaterUserID string) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load country %s: %w", code, err)
	}

	shareCountryID, err := s.resolveShareCountry(ctx, req.ShareCountryCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	country.ISOCode = req.ISOCode
	country.Name = req.Name
	country.CurrencyCode = req.CurrencyCode
	country.DecimalPlaces = req.DecimalPlaces
	country.PersonalSuffix = req.PersonalSuffix
	country.BusinessSuffix = req.BusinessSuffix
	country.DocMaxWeight = req.DocMaxWeight
	country.NonDocMaxWeight = req.NonDocMaxWeight
	country.ShareCountryID = shareCountryID
	country.LastUpdatedAt = now
	country.LastUpdatedBy = updaterUserID

	if err := s.countryRepo.UpdateCountry(ctx, *country); err != nil {
		return nil, fmt.Errorf("failed to update country %s: %w", code, err)
	}

	if err := s.applyContentConfig(ctx, country.CountryID, req.Contents, req.ReplaceableFields, req.StaticFields, updaterUserID, now); err != nil {
		return nil, err
	}

	return country, nil
}

// GetCountryByCode retrieves a specific country by its code.
func (s *CountryService) GetCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get country by code %s: %w", code, err)
	}
	return country, nil
}

// ListCountries retrieves all countries.
func (s *CountryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}

// resolveShareCountry maps an optional share-country code to its country ID.
func (s *CountryService) resolveShareCountry(ctx context.Context, code *string) (*string, error) {
	if code == nil || *code == "" {
		return nil, nil
	}
	shared, err := s.countryRepo.FindCountryByCode(ctx, *code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: share country %s does not exist", apperrors.ErrValidation, *code)
		}
		return nil, fmt.Errorf("failed to resolve share country %s: %w", *code, err)
	}
	return &shared.CountryID, nil
}

// applyContentConfig bulk-upserts content entries and swaps the placeholder
// configuration, rejecting field keys outside the vocabulary.
func (s *CountryService) applyContentConfig(ctx context.Context, countryID string, contents map[string]string, replaceable []string, static map[string]string, userID string, now time.Time) error {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if len(contents) > 0 {
		entries := make([]domain.ContentEntry, 0, len(contents))
		for key, text := range contents {
			if !domain.IsContentFieldKey(key) {
				return fmt.Errorf("%w: unknown content field %s", apperrors.ErrValidation, key)
			}
			entries = append(entries, domain.ContentEntry{
				CountryID:   countryID,
				FieldKey:    key,
				Text:        text,
				AuditFields: audit,
			})
		}
		if err := s.contentRepo.UpsertContentEntries(ctx, countryID, entries); err != nil {
			return fmt.Errorf("failed to upsert content entries: %w", err)
		}
	}

	replaceableFields := make([]domain.PlaceholderField, 0, len(replaceable))
	for _, name := range replaceable {
		replaceableFields = append(replaceableFields, domain.PlaceholderField{
			CountryID:   countryID,
			Name:        name,
			Kind:        domain.PlaceholderReplaceable,
			AuditFields: audit,
		})
	}
	if err := s.contentRepo.ReplacePlaceholderFields(ctx, countryID, domain.PlaceholderReplaceable, replaceableFields); err != nil {
		return fmt.Errorf("failed to replace replaceable fields: %w", err)
	}

	staticFields := make([]domain.PlaceholderField, 0, len(static))
	for name, value := range static {
		staticFields = append(staticFields, domain.PlaceholderField{
			CountryID:   countryID,
			Name:        name,
			Kind:        domain.PlaceholderStatic,
			StaticValue: value,
			AuditFields: audit,
		})
	}
	if err := s.contentRepo.ReplacePlaceholderFields(ctx, countryID, domain.PlaceholderStatic, staticFields); err != nil {
		return fmt.Errorf("failed to replace static fields: %w", err)
	}

	return nil
}
