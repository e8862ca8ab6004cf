package repositories

import (
	"context"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// ReceiverReader defines read operations for receiver data
type ReceiverReader interface {
	// FindReceiverByCountryAndID retrieves one of a country's receivers.
	FindReceiverByCountryAndID(ctx context.Context, countryID string, receiverID string) (*domain.Receiver, error)

	// ListReceiversByCountry retrieves all receivers of a country ordered by name.
	ListReceiversByCountry(ctx context.Context, countryID string) ([]domain.Receiver, error)
}

// ReceiverWriter defines write operations for receiver data
type ReceiverWriter interface {
	// SaveReceiver persists a new receiver.
	SaveReceiver(ctx context.Context, receiver domain.Receiver) error

	// UpdateReceiver updates an existing receiver.
	UpdateReceiver(ctx context.Context, receiver domain.Receiver) error

	// DeleteReceiver removes a receiver.
	DeleteReceiver(ctx context.Context, countryID string, receiverID string) error
}

// ReceiverRepositoryFacade combines all receiver-related repository interfaces
type ReceiverRepositoryFacade interface {
	ReceiverReader
	ReceiverWriter
}
