package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/swiftship/ratequote/internal/core/domain"
)

// --- Mock CountryRepository ---
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) UpdateCountry(ctx context.Context, country domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

// --- Mock ReceiverRepository ---
type MockReceiverRepository struct {
	mock.Mock
}

func (m *MockReceiverRepository) FindReceiverByCountryAndID(ctx context.Context, countryID string, receiverID string) (*domain.Receiver, error) {
	args := m.Called(ctx, countryID, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receiver), args.Error(1)
}

func (m *MockReceiverRepository) ListReceiversByCountry(ctx context.Context, countryID string) ([]domain.Receiver, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receiver), args.Error(1)
}

func (m *MockReceiverRepository) SaveReceiver(ctx context.Context, receiver domain.Receiver) error {
	args := m.Called(ctx, receiver)
	return args.Error(0)
}

func (m *MockReceiverRepository) UpdateReceiver(ctx context.Context, receiver domain.Receiver) error {
	args := m.Called(ctx, receiver)
	return args.Error(0)
}

func (m *MockReceiverRepository) DeleteReceiver(ctx context.Context, countryID string, receiverID string) error {
	args := m.Called(ctx, countryID, receiverID)
	return args.Error(0)
}

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRateRows(ctx context.Context, countryID string, packageType domain.PackageType, weight decimal.Decimal, zone string) ([]domain.RateRow, error) {
	args := m.Called(ctx, countryID, packageType, weight, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateRow), args.Error(1)
}

func (m *MockRateRepository) ListRateRowsByCountry(ctx context.Context, countryID string) ([]domain.RateRow, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateRow), args.Error(1)
}

func (m *MockRateRepository) UpsertRateRows(ctx context.Context, rows []domain.RateRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

// --- Mock ContentRepository ---
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetContentEntries(ctx context.Context, countryID string) (map[string]string, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockContentRepository) GetPlaceholderFields(ctx context.Context, countryID string, kind domain.PlaceholderKind) ([]domain.PlaceholderField, error) {
	args := m.Called(ctx, countryID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaceholderField), args.Error(1)
}

func (m *MockContentRepository) UpsertContentEntries(ctx context.Context, countryID string, entries []domain.ContentEntry) error {
	args := m.Called(ctx, countryID, entries)
	return args.Error(0)
}

func (m *MockContentRepository) ReplacePlaceholderFields(ctx context.Context, countryID string, kind domain.PlaceholderKind, fields []domain.PlaceholderField) error {
	args := m.Called(ctx, countryID, kind, fields)
	return args.Error(0)
}

// --- Mock AdminUserRepository ---
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindAdminUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) SaveAdminUser(ctx context.Context, user domain.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
