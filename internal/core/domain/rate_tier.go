package domain

// RateTier is the customer segment a rate row prices for.
type RateTier string

const (
	// TierOriginal is the internal/wholesale reference price, never shown with a currency suffix.
	TierOriginal RateTier = "ORIGINAL"
	TierPersonal RateTier = "PERSONAL"
	TierBusiness RateTier = "BUSINESS"
)

// AllTiers lists every tier in aggregation order.
func AllTiers() []RateTier {
	return []RateTier{TierOriginal, TierPersonal, TierBusiness}
}

// IsValid reports whether the value is a known tier.
func (t RateTier) IsValid() bool {
	return t == TierOriginal || t == TierPersonal || t == TierBusiness
}
