package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository over one connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CountryRepo:   NewPgxCountryRepository(pool),
		ReceiverRepo:  NewPgxReceiverRepository(pool),
		RateRepo:      NewPgxRateRepository(pool),
		ContentRepo:   NewPgxContentRepository(pool),
		AdminUserRepo: NewPgxAdminUserRepository(pool),
	}
}
