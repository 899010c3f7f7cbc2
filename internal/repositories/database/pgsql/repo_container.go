package pgsql

import (
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: NewPgxExchangeRateRepository(dbPool),
		AuditLogRepo:     NewPgxAuditLogRepository(dbPool),
		UserRepo:         NewPgxUserRepository(dbPool),
		TxManager:        NewPgxTxManager(dbPool),
	}
}
