package repositories

// RepositoryProvider aggregates all repository facades so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	TenantRepo     TenantRepositoryFacade
	AccountRepo    AccountRepositoryFacade
	JournalRepo    JournalRepositoryFacade
	ReportingRepo  ReportingRepository
	ValidationRepo ValidationRepositoryFacade
	FxRateRepo     FxRateRepository
	AuditRepo      AuditRepository
}
