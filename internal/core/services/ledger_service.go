package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
)

// ledgerService is the thin orchestration layer between handlers and the
// journal engine plus the reporting queries.
type ledgerService struct {
	BaseService
	journalSvc    portssvc.JournalSvcFacade
	journalRepo   portsrepo.JournalReader
	reportingRepo portsrepo.ReportingRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(journalSvc portssvc.JournalSvcFacade, journalRepo portsrepo.JournalReader, reportingRepo portsrepo.ReportingRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		journalSvc:    journalSvc,
		journalRepo:   journalRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	return s.journalSvc.PostEntry(ctx, entryID, actor)
}

func (s *ledgerService) GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := s.reportingRepo.GetAccountBalance(ctx, tenantID, accountID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	entries, token, err := s.journalRepo.ListEntries(ctx, tenantID, filter, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, token, nil
}
