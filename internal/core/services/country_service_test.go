package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftship/ratequote/internal/apperrors"
	"github.com/swiftship/ratequote/internal/core/domain"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/core/services"
	"github.com/swiftship/ratequote/internal/dto"
)

type CountryServiceTestSuite struct {
	suite.Suite
	mockCountryRepo *MockCountryRepository
	mockContentRepo *MockContentRepository
	service         portssvc.CountrySvcFacade
}

func (suite *CountryServiceTestSuite) SetupTest() {
	suite.mockCountryRepo = new(MockCountryRepository)
	suite.mockContentRepo = new(MockContentRepository)
	suite.service = services.NewCountryService(suite.mockCountryRepo, suite.mockContentRepo)
}

func createCountryReq() dto.CreateCountryRequest {
	return dto.CreateCountryRequest{
		Code:            "SG",
		ISOCode:         "SGP",
		Name:            "Singapore",
		CurrencyCode:    "SGD",
		DecimalPlaces:   2,
		DocMaxWeight:    decimal.NewFromInt(2000),
		NonDocMaxWeight: decimal.NewFromInt(30000),
	}
}

func (suite *CountryServiceTestSuite) expectPlaceholderReplace() {
	suite.mockContentRepo.On("ReplacePlaceholderFields", mock.Anything, mock.AnythingOfType("string"), domain.PlaceholderReplaceable, mock.AnythingOfType("[]domain.PlaceholderField")).Return(nil).Once()
	suite.mockContentRepo.On("ReplacePlaceholderFields", mock.Anything, mock.AnythingOfType("string"), domain.PlaceholderStatic, mock.AnythingOfType("[]domain.PlaceholderField")).Return(nil).Once()
}

func (suite *CountryServiceTestSuite) TestCreateCountry_Success() {
	ctx := context.Background()
	creatorUserID := "admin-1"
	req := createCountryReq()

	suite.mockCountryRepo.On("FindCountryByCode", ctx, "SG").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCountryRepo.On("SaveCountry", ctx, mock.MatchedBy(func(c domain.Country) bool {
		return c.Code == req.Code && c.CurrencyCode == req.CurrencyCode && c.CreatedBy == creatorUserID && c.ShareCountryID == nil
	})).Return(nil).Once()
	suite.expectPlaceholderReplace()

	country, err := suite.service.CreateCountry(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(country)
	suite.Equal("SG", country.Code)
	suite.NotEmpty(country.CountryID)
	suite.mockCountryRepo.AssertExpectations(suite.T())
	suite.mockContentRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestCreateCountry_DuplicateCode() {
	ctx := context.Background()
	req := createCountryReq()
	existing := &domain.Country{CountryID: "country-1", Code: "SG"}

	suite.mockCountryRepo.On("FindCountryByCode", ctx, "SG").Return(existing, nil).Once()

	country, err := suite.service.CreateCountry(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.Nil(country)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCountryRepo.AssertNotCalled(suite.T(), "SaveCountry")
}

func (suite *CountryServiceTestSuite) TestCreateCountry_ResolvesShareCountry() {
	ctx := context.Background()
	req := createCountryReq()
	shareCode := "MY"
	req.ShareCountryCode = &shareCode
	shared := &domain.Country{CountryID: "country-shared", Code: "MY"}

	suite.mockCountryRepo.On("FindCountryByCode", ctx, "SG").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCountryRepo.On("FindCountryByCode", ctx, "MY").Return(shared, nil).Once()
	suite.mockCountryRepo.On("SaveCountry", ctx, mock.MatchedBy(func(c domain.Country) bool {
		return c.ShareCountryID != nil && *c.ShareCountryID == "country-shared"
	})).Return(nil).Once()
	suite.expectPlaceholderReplace()

	country, err := suite.service.CreateCountry(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(country.ShareCountryID)
	suite.Equal("country-shared", *country.ShareCountryID)
	suite.mockCountryRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestCreateCountry_UnknownShareCountry() {
	ctx := context.Background()
	req := createCountryReq()
	shareCode := "ZZ"
	req.ShareCountryCode = &shareCode

	suite.mockCountryRepo.On("FindCountryByCode", ctx, "SG").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCountryRepo.On("FindCountryByCode", ctx, "ZZ").Return(nil, apperrors.ErrNotFound).Once()

	country, err := suite.service.CreateCountry(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.Nil(country)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "share country ZZ does not exist")
}

func (suite *CountryServiceTestSuite) TestCreateCountry_RejectsUnknownContentKey() {
	ctx := context.Background()
	req := createCountryReq()
	req.Contents = map[string]string{"not_a_real_field": "text"}

	suite.mockCountryRepo.On("FindCountryByCode", ctx, "SG").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCountryRepo.On("SaveCountry", ctx, mock.AnythingOfType("domain.Country")).Return(nil).Once()

	country, err := suite.service.CreateCountry(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.Nil(country)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "unknown content field not_a_real_field")
	suite.mockContentRepo.AssertNotCalled(suite.T(), "UpsertContentEntries")
}

func (suite *CountryServiceTestSuite) TestCreateCountry_UpsertsContentEntries() {
	ctx := context.Background()
	req := createCountryReq()
	req.Contents = map[string]string{domain.FieldBusinessTitleEn: "Ship with us"}
	req.ReplaceableFields = []string{"customer_name"}
	req.StaticFields = map[string]string{"branch_city": "Jakarta"}

	suite.mockCountryRepo.On("FindCountryByCode", ctx, "SG").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCountryRepo.On("SaveCountry", ctx, mock.AnythingOfType("domain.Country")).Return(nil).Once()
	suite.mockContentRepo.On("UpsertContentEntries", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(entries []domain.ContentEntry) bool {
		return len(entries) == 1 && entries[0].FieldKey == domain.FieldBusinessTitleEn && entries[0].Text == "Ship with us"
	})).Return(nil).Once()
	suite.mockContentRepo.On("ReplacePlaceholderFields", ctx, mock.AnythingOfType("string"), domain.PlaceholderReplaceable, mock.MatchedBy(func(fields []domain.PlaceholderField) bool {
		return len(fields) == 1 && fields[0].Name == "customer_name"
	})).Return(nil).Once()
	suite.mockContentRepo.On("ReplacePlaceholderFields", ctx, mock.AnythingOfType("string"), domain.PlaceholderStatic, mock.MatchedBy(func(fields []domain.PlaceholderField) bool {
		return len(fields) == 1 && fields[0].Name == "branch_city" && fields[0].StaticValue == "Jakarta"
	})).Return(nil).Once()

	country, err := suite.service.CreateCountry(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(country)
	suite.mockContentRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestUpdateCountry_Success() {
	ctx := context.Background()
	existing := &domain.Country{
		CountryID:    "country-1",
		Code:         "SG",
		Name:         "Singapore",
		CurrencyCode: "SGD",
	}
	req := dto.UpdateCountryRequest{
		ISOCode:         "SGP",
		Name:            "Republic of Singapore",
		CurrencyCode:    "SGD",
		DecimalPlaces:   2,
		DocMaxWeight:    decimal.NewFromInt(2000),
		NonDocMaxWeight: decimal.NewFromInt(30000),
	}

	suite.mockCountryRepo.On("FindCountryByCode", ctx, "SG").Return(existing, nil).Once()
	suite.mockCountryRepo.On("UpdateCountry", ctx, mock.MatchedBy(func(c domain.Country) bool {
		return c.CountryID == "country-1" && c.Name == "Republic of Singapore" && c.LastUpdatedBy == "admin-2"
	})).Return(nil).Once()
	suite.expectPlaceholderReplace()

	country, err := suite.service.UpdateCountry(ctx, "SG", req, "admin-2")

	suite.Require().NoError(err)
	suite.Equal("Republic of Singapore", country.Name)
	suite.mockCountryRepo.AssertExpectations(suite.T())
}

func (suite *CountryServiceTestSuite) TestGetCountryByCode_NotFound() {
	ctx := context.Background()
	suite.mockCountryRepo.On("FindCountryByCode", ctx, "ZZ").Return(nil, apperrors.ErrNotFound).Once()

	country, err := suite.service.GetCountryByCode(ctx, "ZZ")

	suite.Require().Error(err)
	suite.Nil(country)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CountryServiceTestSuite) TestListCountries_EmptyIsNotNil() {
	ctx := context.Background()
	var none []domain.Country
	suite.mockCountryRepo.On("ListCountries", ctx).Return(none, nil).Once()

	countries, err := suite.service.ListCountries(ctx)

	suite.Require().NoError(err)
	suite.NotNil(countries)
	suite.Empty(countries)
}

func (suite *CountryServiceTestSuite) TestListCountries_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockCountryRepo.On("ListCountries", ctx).Return(nil, expectedErr).Once()

	countries, err := suite.service.ListCountries(ctx)

	suite.Require().Error(err)
	suite.Nil(countries)
	suite.ErrorIs(err, expectedErr)
}

func TestCountryService(t *testing.T) {
	suite.Run(t, new(CountryServiceTestSuite))
}
