package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/swiftship/ratequote/internal/apperrors"
	"github.com/swiftship/ratequote/internal/core/domain"
	"github.com/swiftship/ratequote/internal/core/services"
)

type QuoteAggregatorTestSuite struct {
	suite.Suite
	mockRateRepo *MockRateRepository
	aggregator   *services.QuoteAggregator
	country      *domain.Country
	receiver     *domain.Receiver
}

func (suite *QuoteAggregatorTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepository)
	suite.aggregator = services.NewQuoteAggregator(services.NewRateTableService(suite.mockRateRepo))
	suite.country = &domain.Country{
		CountryID:    "country-1",
		Code:         "SG",
		CurrencyCode: "SGD",
	}
	suite.receiver = &domain.Receiver{
		ReceiverID: "receiver-1",
		CountryID:  "country-1",
		Zone:       "Z1",
	}
}

func rateRow(tier domain.RateTier, price string) domain.RateRow {
	return domain.RateRow{
		CountryID:   "country-1",
		PackageType: domain.PackageTypeNonDocument,
		Tier:        tier,
		Zone:        "Z1",
		Weight:      decimal.NewFromInt(1),
		Price:       decimal.RequireFromString(price),
	}
}

func (suite *QuoteAggregatorTestSuite) TestAggregate_SinglePackageAllTiers() {
	ctx := context.Background()
	weight := decimal.NewFromInt(1)
	rows := []domain.RateRow{
		rateRow(domain.TierOriginal, "100.00"),
		rateRow(domain.TierPersonal, "120.50"),
		rateRow(domain.TierBusiness, "110.25"),
	}
	suite.mockRateRepo.On("FindRateRows", ctx, "country-1", domain.PackageTypeNonDocument, weight, "Z1").Return(rows, nil).Once()

	packages := []domain.PackageDeclaration{{Type: domain.PackageTypeNonDocument, Weight: weight}}
	totals, err := suite.aggregator.Aggregate(ctx, suite.country, suite.receiver, packages)

	suite.Require().NoError(err)
	suite.True(totals.Original.Equal(decimal.RequireFromString("100.00")))
	suite.True(totals.Personal.Equal(decimal.RequireFromString("120.50")))
	suite.True(totals.Business.Equal(decimal.RequireFromString("110.25")))
	suite.Equal("SGD", totals.CurrencyCode)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *QuoteAggregatorTestSuite) TestAggregate_SumsAcrossPackages() {
	ctx := context.Background()
	w1 := decimal.NewFromInt(1)
	w2 := decimal.RequireFromString("2.5")
	suite.mockRateRepo.On("FindRateRows", ctx, "country-1", domain.PackageTypeNonDocument, w1, "Z1").
		Return([]domain.RateRow{rateRow(domain.TierPersonal, "100.10")}, nil).Once()
	suite.mockRateRepo.On("FindRateRows", ctx, "country-1", domain.PackageTypeDocument, w2, "Z1").
		Return([]domain.RateRow{rateRow(domain.TierPersonal, "200.20")}, nil).Once()

	packages := []domain.PackageDeclaration{
		{Type: domain.PackageTypeNonDocument, Weight: w1},
		{Type: domain.PackageTypeDocument, Weight: w2},
	}
	totals, err := suite.aggregator.Aggregate(ctx, suite.country, suite.receiver, packages)

	suite.Require().NoError(err)
	suite.True(totals.Personal.Equal(decimal.RequireFromString("300.30")))
	suite.True(totals.Original.IsZero())
	suite.True(totals.Business.IsZero())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *QuoteAggregatorTestSuite) TestAggregate_MissingTierSumsToZero() {
	ctx := context.Background()
	weight := decimal.NewFromInt(1)
	suite.mockRateRepo.On("FindRateRows", ctx, "country-1", domain.PackageTypeNonDocument, weight, "Z1").
		Return([]domain.RateRow{rateRow(domain.TierBusiness, "50")}, nil).Once()

	packages := []domain.PackageDeclaration{{Type: domain.PackageTypeNonDocument, Weight: weight}}
	totals, err := suite.aggregator.Aggregate(ctx, suite.country, suite.receiver, packages)

	suite.Require().NoError(err)
	suite.True(totals.Personal.IsZero())
	suite.True(totals.Business.Equal(decimal.NewFromInt(50)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *QuoteAggregatorTestSuite) TestAggregate_AbortsOnUnpriceablePackage() {
	ctx := context.Background()
	w1 := decimal.NewFromInt(1)
	w2 := decimal.NewFromInt(7)
	suite.mockRateRepo.On("FindRateRows", ctx, "country-1", domain.PackageTypeNonDocument, w1, "Z1").
		Return([]domain.RateRow{rateRow(domain.TierPersonal, "100")}, nil).Once()
	suite.mockRateRepo.On("FindRateRows", ctx, "country-1", domain.PackageTypeNonDocument, w2, "Z1").
		Return([]domain.RateRow{}, nil).Once()

	packages := []domain.PackageDeclaration{
		{Type: domain.PackageTypeNonDocument, Weight: w1},
		{Type: domain.PackageTypeNonDocument, Weight: w2},
	}
	_, err := suite.aggregator.Aggregate(ctx, suite.country, suite.receiver, packages)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "Rate for package 2 not found")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *QuoteAggregatorTestSuite) TestAggregate_ShareCountryIndirection() {
	ctx := context.Background()
	shared := "country-shared"
	country := &domain.Country{
		CountryID:      "country-1",
		Code:           "MY",
		CurrencyCode:   "MYR",
		ShareCountryID: &shared,
	}
	weight := decimal.NewFromInt(1)
	suite.mockRateRepo.On("FindRateRows", ctx, shared, domain.PackageTypeNonDocument, weight, "Z1").
		Return([]domain.RateRow{rateRow(domain.TierPersonal, "80")}, nil).Once()

	packages := []domain.PackageDeclaration{{Type: domain.PackageTypeNonDocument, Weight: weight}}
	totals, err := suite.aggregator.Aggregate(ctx, country, suite.receiver, packages)

	suite.Require().NoError(err)
	suite.True(totals.Personal.Equal(decimal.NewFromInt(80)))
	suite.Equal("MYR", totals.CurrencyCode)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *QuoteAggregatorTestSuite) TestAggregate_RepoError() {
	ctx := context.Background()
	weight := decimal.NewFromInt(1)
	expectedErr := assert.AnError
	suite.mockRateRepo.On("FindRateRows", ctx, "country-1", domain.PackageTypeNonDocument, weight, "Z1").
		Return(nil, expectedErr).Once()

	packages := []domain.PackageDeclaration{{Type: domain.PackageTypeNonDocument, Weight: weight}}
	_, err := suite.aggregator.Aggregate(ctx, suite.country, suite.receiver, packages)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestQuoteAggregator(t *testing.T) {
	suite.Run(t, new(QuoteAggregatorTestSuite))
}
