package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/apperrors"
	"github.com/swiftship/ratequote/internal/core/domain"
)

const (
	minPackageCount = 1
	maxPackageCount = 10
)

var (
	minPackageWeight = decimal.RequireFromString("0.01")
	maxPackageWeight = decimal.NewFromInt(1000)

	// Declared weights arrive in kilograms; country ceilings are stored in grams.
	gramsPerKilogram = decimal.NewFromInt(1000)
)

// PackageValidator enforces the structural and business constraints on a
// declared package list before any rate lookup happens. Pure, no side effects.
type PackageValidator struct{}

// NewPackageValidator creates a new PackageValidator.
func NewPackageValidator() *PackageValidator {
	return &PackageValidator{}
}

// Validate checks the package list against the country's constraints. It
// returns on the first violation, in declaration order, wrapping
// apperrors.ErrValidation with a human-readable message.
func (v *PackageValidator) Validate(country *domain.Country, packages []domain.PackageDeclaration) error {
	if len(packages) < minPackageCount {
		return fmt.Errorf("%w: at least one package is required", apperrors.ErrValidation)
	}
	if len(packages) > maxPackageCount {
		return fmt.Errorf("%w: a quote cannot contain more than %d packages", apperrors.ErrValidation, maxPackageCount)
	}

	docCeilingKg := country.DocMaxWeight.Div(gramsPerKilogram)
	nonDocCeilingKg := country.NonDocMaxWeight.Div(gramsPerKilogram)

	for i, pkg := range packages {
		if !pkg.Type.IsValid() {
			return fmt.Errorf("%w: package %d has an unknown package type", apperrors.ErrValidation, i+1)
		}
		if pkg.Weight.LessThan(minPackageWeight) || pkg.Weight.GreaterThan(maxPackageWeight) {
			return fmt.Errorf("%w: package %d weight must be between %s and %s", apperrors.ErrValidation, i+1, minPackageWeight, maxPackageWeight)
		}

		weightGrams := pkg.Weight.Mul(gramsPerKilogram)

		if pkg.Type == domain.PackageTypeDocument && weightGrams.GreaterThan(country.DocMaxWeight) {
			return fmt.Errorf("%w: Documents package cannot be more than %skg", apperrors.ErrValidation, docCeilingKg)
		}

		// Deliberately not an else-branch: the non-document ceiling applies
		// to every package regardless of type.
		if weightGrams.GreaterThan(country.NonDocMaxWeight) {
			return fmt.Errorf("%w: Package cannot be more than %skg", apperrors.ErrValidation, nonDocCeilingKg)
		}
	}

	return nil
}
