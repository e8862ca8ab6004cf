package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/dto"
)

// ReceiverService maintains a country's receivers.
type ReceiverService struct {
	countryRepo  portsrepo.CountryReader
	receiverRepo portsrepo.ReceiverRepositoryFacade
}

// NewReceiverService creates a new ReceiverService.
func NewReceiverService(countryRepo portsrepo.CountryReader, receiverRepo portsrepo.ReceiverRepositoryFacade) *ReceiverService {
	return &ReceiverService{countryRepo: countryRepo, receiverRepo: receiverRepo}
}

// Ensure implementation matches interface
var _ portssvc.ReceiverSvcFacade = (*ReceiverService)(nil)

// CreateReceiver persists a new receiver under the given country.
func (s *ReceiverService) CreateReceiver(ctx context.Context, countryCode string, req dto.CreateReceiverRequest, creatorUserID string) (*domain.Receiver, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load country %s: %w", countryCode, err)
	}

	now := time.Now()
	receiver := domain.Receiver{
		ReceiverID: uuid.NewString(),
		CountryID:  country.CountryID,
		Name:       req.Name,
		Zone:       req.Zone,
		TransitDay: req.TransitDay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.receiverRepo.SaveReceiver(ctx, receiver); err != nil {
		return nil, fmt.Errorf("failed to create receiver: %w", err)
	}

	return &receiver, nil
}

// UpdateReceiver updates an existing receiver.
func (s *ReceiverService) UpdateReceiver(ctx context.Context, countryCode string, receiverID string, req dto.UpdateReceiverRequest, updaterUserID string) (*domain.Receiver, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load country %s: %w", countryCode, err)
	}

	receiver, err := s.receiverRepo.FindReceiverByCountryAndID(ctx, country.CountryID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receiver %s: %w", receiverID, err)
	}

	receiver.Name = req.Name
	receiver.Zone = req.Zone
	receiver.TransitDay = req.TransitDay
	receiver.LastUpdatedAt = time.Now()
	receiver.LastUpdatedBy = updaterUserID

	if err := s.receiverRepo.UpdateReceiver(ctx, *receiver); err != nil {
		return nil, fmt.Errorf("failed to update receiver %s: %w", receiverID, err)
	}

	return receiver, nil
}

// DeleteReceiver removes a receiver.
func (s *ReceiverService) DeleteReceiver(ctx context.Context, countryCode string, receiverID string) error {
	country, err := s.countryRepo.FindCountryByCode(ctx, countryCode)
	if err != nil {
		return fmt.Errorf("failed to load country %s: %w", countryCode, err)
	}

	if err := s.receiverRepo.DeleteReceiver(ctx, country.CountryID, receiverID); err != nil {
		return fmt.Errorf("failed to delete receiver %s: %w", receiverID, err)
	}
	return nil
}

// ListReceivers retrieves all receivers of a country.
func (s *ReceiverService) ListReceivers(ctx context.Context, countryCode string) ([]domain.Receiver, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load country %s: %w", countryCode, err)
	}

	receivers, err := s.receiverRepo.ListReceiversByCountry(ctx, country.CountryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivers: %w", err)
	}
	if receivers == nil {
		return []domain.Receiver{}, nil
	}
	return receivers, nil
}
