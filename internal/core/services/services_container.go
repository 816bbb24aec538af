package services

import (
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Tenant and account services first; the journal engine depends on the
	// account service for active/ownership checks.
	container.Tenant = NewTenantService(repos.TenantRepo, repos.AuditRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.AuditRepo)

	container.Journal = NewJournalService(repos.JournalRepo, container.Account, cfg.PostingTimeout)
	container.Ledger = NewLedgerService(container.Journal, repos.JournalRepo, repos.ReportingRepo)
	container.Statement = NewStatementService(repos.ReportingRepo)
	container.Validation = NewValidationService(
		container.Statement,
		repos.JournalRepo,
		repos.ReportingRepo,
		repos.ValidationRepo,
		repos.TenantRepo,
		repos.FxRateRepo,
	)

	return container
}
