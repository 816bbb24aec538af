package pgsql

import (
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TenantRepo:     newPgxTenantRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		JournalRepo:    newPgxJournalRepository(dbPool),
		ReportingRepo:  newPgxReportingRepository(dbPool),
		ValidationRepo: newPgxValidationRepository(dbPool),
		FxRateRepo:     newPgxFxRateRepository(dbPool),
		AuditRepo:      newPgxAuditRepository(dbPool),
	}
}
