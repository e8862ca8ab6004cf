package services

import (
	"context"

	"github.com/swiftship/ratequote/internal/core/domain"
	"github.com/swiftship/ratequote/internal/dto"
)

// ReceiverReaderSvc defines read operations for receiver data
type ReceiverReaderSvc interface {
	// ListReceivers retrieves all receivers of a country.
	ListReceivers(ctx context.Context, countryCode string) ([]domain.Receiver, error)
}

// ReceiverWriterSvc defines write operations for receiver data
type ReceiverWriterSvc interface {
	// CreateReceiver persists a new receiver under the given country.
	CreateReceiver(ctx context.Context, countryCode string, req dto.CreateReceiverRequest, creatorUserID string) (*domain.Receiver, error)

	// UpdateReceiver updates an existing receiver.
	UpdateReceiver(ctx context.Context, countryCode string, receiverID string, req dto.UpdateReceiverRequest, updaterUserID string) (*domain.Receiver, error)

	// DeleteReceiver removes a receiver.
	DeleteReceiver(ctx context.Context, countryCode string, receiverID string) error
}

// ReceiverSvcFacade combines all receiver-related service interfaces
type ReceiverSvcFacade interface {
	ReceiverReaderSvc
	ReceiverWriterSvc
}
