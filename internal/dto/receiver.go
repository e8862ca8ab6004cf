package dto

import "github.com/swiftship/ratequote/internal/core/domain"

// CreateReceiverRequest defines the data needed to create a receiver.
type CreateReceiverRequest struct {
	Name       string `json:"name" binding:"required"`
	Zone       string `json:"zone" binding:"required"`
	TransitDay *int   `json:"transitDay,omitempty" binding:"omitempty,min=1"`
}

// UpdateReceiverRequest defines the mutable attributes of a receiver.
type UpdateReceiverRequest struct {
	Name       string `json:"name" binding:"required"`
	Zone       string `json:"zone" binding:"required"`
	TransitDay *int   `json:"transitDay,omitempty" binding:"omitempty,min=1"`
}

// ReceiverResponse defines the data returned for a receiver.
type ReceiverResponse struct {
	ReceiverID string `json:"receiverID"`
	CountryID  string `json:"countryID"`
	Name       string `json:"name"`
	Zone       string `json:"zone"`
	TransitDay *int   `json:"transitDay,omitempty"`
}

// ToReceiverResponse converts a domain.Receiver to ReceiverResponse DTO
func ToReceiverResponse(r *domain.Receiver) ReceiverResponse {
	return ReceiverResponse{
		ReceiverID: r.ReceiverID,
		CountryID:  r.CountryID,
		Name:       r.Name,
		Zone:       r.Zone,
		TransitDay: r.TransitDay,
	}
}

// ToListReceiverResponse converts a slice of domain.Receiver to response DTOs
func ToListReceiverResponse(receivers []domain.Receiver) []ReceiverResponse {
	res := make([]ReceiverResponse, len(receivers))
	for i := range receivers {
		res[i] = ToReceiverResponse(&receivers[i])
	}
	return res
}
