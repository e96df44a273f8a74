package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider holds the pgx-backed collaborators of the record store.
type RepositoryProvider struct {
	Items    *PgxItemRepository
	Vouchers *PgxVoucherRepository
}

// NewRepositoryProvider wires every repository to the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) RepositoryProvider {
	return RepositoryProvider{
		Items:    newPgxItemRepository(dbPool),
		Vouchers: newPgxVoucherRepository(dbPool),
	}
}
