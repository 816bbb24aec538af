package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/dto"
	"github.com/finledger/finledger/internal/utils/accounting"
)

// journalService is the journal entry engine: draft construction, the posting
// protocol, and reversals.
type journalService struct {
	BaseService
	journalRepo    portsrepo.JournalRepositoryFacade
	accountSvc     portssvc.AccountSvcFacade
	postingTimeout time.Duration
}

// NewJournalService creates a new JournalService. postingTimeout bounds each
// posting operation; zero disables the bound.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, postingTimeout time.Duration) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:    journalRepo,
		accountSvc:     accountSvc,
		postingTimeout: postingTimeout,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateDraft constructs a draft entry. The draft is shape-checked here;
// balance and account checks are enforced again by the posting protocol.
func (s *journalService) CreateDraft(ctx context.Context, req dto.CreateEntryRequest, actor string) (*domain.JournalEntry, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	if req.Description == "" {
		return nil, fmt.Errorf("%w: entry description is required", apperrors.ErrValidation)
	}
	if existing, err := s.journalRepo.FindEntryByReference(ctx, tenantID, req.Reference); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: entry reference %s already exists", apperrors.ErrDuplicate, req.Reference)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check entry reference: %w", err)
	}

	txnType := domain.TransactionType(req.TransactionType)
	if txnType == "" {
		txnType = domain.TxnGeneral
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:         entryID,
		TenantID:        tenantID,
		Reference:       req.Reference,
		Description:     req.Description,
		TransactionType: txnType,
		Status:          domain.Draft,
		EntryDate:       req.EntryDate,
		Lines:           s.buildLines(tenantID, entryID, req.Lines),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.validateShape(&entry); err != nil {
		return nil, err
	}
	if _, err := s.resolveAccounts(ctx, &entry); err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveDraft(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save draft entry", "entry_id", entryID)
		return nil, fmt.Errorf("failed to save draft entry: %w", err)
	}

	s.LogInfo(ctx, "Draft entry created", "entry_id", entryID, "reference", entry.Reference)
	return &entry, nil
}

// UpdateDraft replaces a draft's mutable fields and lines. Any attempt to
// mutate a posted or reversed entry fails with ErrInvalidStateTransition;
// the repository enforces the same guard at the data-access layer.
func (s *journalService) UpdateDraft(ctx context.Context, entryID string, req dto.UpdateEntryRequest, actor string) (*domain.JournalEntry, error) {
	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry %s is %s", apperrors.ErrInvalidStateTransition, entryID, entry.Status)
	}

	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.Lines != nil {
		entry.Lines = s.buildLines(entry.TenantID, entry.EntryID, req.Lines)
	}

	if err := s.validateShape(entry); err != nil {
		return nil, err
	}
	if _, err := s.resolveAccounts(ctx, entry); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor

	if err := s.journalRepo.UpdateDraft(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update draft entry", "entry_id", entryID)
		return nil, fmt.Errorf("failed to update draft entry: %w", err)
	}
	return entry, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.TenantID != tenantID {
		s.LogWarn(ctx, "Cross-tenant entry access attempt", "entry_id", entryID, "entry_tenant", entry.TenantID)
		return nil, apperrors.ErrCrossTenant
	}
	return entry, nil
}

// PostEntry runs the posting protocol:
//  1. the entry must be a draft,
//  2. every line must reference an active account of the same tenant,
//  3. every line must carry exactly one of debit/credit,
//  4. per currency, debits must equal credits exactly,
//  5. the transition is persisted atomically with its sequence number,
//  6. an immutable audit record is written in the same transaction.
//
// Posting is idempotent on entry id: re-posting an already-posted entry
// returns the stored state without creating a duplicate.
func (s *journalService) PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	if s.postingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.postingTimeout)
		defer cancel()
	}

	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status == domain.Posted {
		s.LogInfo(ctx, "Entry already posted, returning stored state", "entry_id", entryID)
		return entry, nil
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: cannot post entry in status %s", apperrors.ErrInvalidStateTransition, entry.Status)
	}

	if err := s.validateShape(entry); err != nil {
		return nil, err
	}
	if _, err := s.resolveAccounts(ctx, entry); err != nil {
		return nil, err
	}
	if err := s.validateBalance(entry); err != nil {
		return nil, err
	}

	postedAt := time.Now().UTC()
	audit := s.entryAudit(entry, actor, domain.AuditEntryPosted, postedAt)

	seq, err := s.journalRepo.MarkPosted(ctx, entry.TenantID, entry.EntryID, postedAt, audit)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.LogWarn(ctx, "Posting timed out, transaction aborted", "entry_id", entryID)
			return nil, apperrors.ErrPostingTimedOut
		}
		if errors.Is(err, apperrors.ErrInvalidStateTransition) {
			// Lost a race with a concurrent posting of the same draft. The
			// idempotency contract still holds: return the stored state.
			if posted, ferr := s.GetEntryByID(ctx, entryID); ferr == nil && posted.Status == domain.Posted {
				return posted, nil
			}
		}
		s.LogError(ctx, err, "Failed to post entry", "entry_id", entryID)
		return nil, fmt.Errorf("failed to post entry %s: %w", entryID, err)
	}

	entry.Status = domain.Posted
	entry.PostedAt = &postedAt
	entry.SequenceNo = seq
	s.LogInfo(ctx, "Entry posted", "entry_id", entryID, "sequence_no", seq)
	return entry, nil
}

// ReverseEntry creates and posts the exact mirror of a posted entry, marks
// the original REVERSED, and links the two. The only sanctioned way to undo
// a posted entry.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: cannot reverse entry in status %s", apperrors.ErrInvalidStateTransition, original.Status)
	}
	if original.ReversalOfEntryID != nil {
		return nil, fmt.Errorf("%w: cannot reverse a reversal", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()
	reversal := domain.JournalEntry{
		EntryID:           reversalID,
		TenantID:          original.TenantID,
		Reference:         reversalReference(original.Reference),
		Description:       fmt.Sprintf("Reversal of %s", original.Reference),
		TransactionType:   domain.TxnReversal,
		Status:            domain.Posted,
		EntryDate:         original.EntryDate,
		PostedAt:          &now,
		ReversalOfEntryID: &original.EntryID,
		Lines:             mirrorLines(original.Lines, original.TenantID, reversalID),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	// Mirrored lines are balanced by construction; assert anyway so a defect
	// here can never persist an unbalanced entry.
	if err := s.validateBalance(&reversal); err != nil {
		return nil, fmt.Errorf("internal error: reversal of %s is unbalanced: %w", entryID, err)
	}

	audits := []domain.AuditRecord{
		s.entryAudit(&reversal, actor, domain.AuditEntryPosted, now),
		s.entryAudit(original, actor, domain.AuditEntryReversed, now),
	}

	seq, err := s.journalRepo.SaveReversal(ctx, reversal, original.EntryID, audits)
	if err != nil {
		s.LogError(ctx, err, "Failed to save reversal", "entry_id", entryID)
		return nil, fmt.Errorf("failed to reverse entry %s: %w", entryID, err)
	}
	reversal.SequenceNo = seq

	s.LogInfo(ctx, "Entry reversed", "entry_id", entryID, "reversal_entry_id", reversalID)
	return &reversal, nil
}

// validateShape checks line count and per-line well-formedness.
func (s *journalService) validateShape(entry *domain.JournalEntry) error {
	if len(entry.Lines) < 2 {
		return fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
	}
	for _, line := range entry.Lines {
		if !line.WellFormed() {
			return fmt.Errorf("%w: line %s (account %s) has debit=%s credit=%s",
				apperrors.ErrMalformedLine, line.LineID, line.AccountID, line.Debit.String(), line.Credit.String())
		}
	}
	return nil
}

// resolveAccounts fetches every referenced account and checks tenant
// ownership, active status, and line/account currency agreement. The account
// service already rejects cross-tenant ids with ErrCrossTenant.
func (s *journalService) resolveAccounts(ctx context.Context, entry *domain.JournalEntry) (map[string]domain.Account, error) {
	ids := make([]string, 0, len(entry.Lines))
	seen := make(map[string]struct{}, len(entry.Lines))
	for _, line := range entry.Lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			ids = append(ids, line.AccountID)
		}
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, line := range entry.Lines {
		account, found := accounts[line.AccountID]
		if !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, line.AccountID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s (%s)", apperrors.ErrAccountInactive, account.Code, account.AccountID)
		}
		if account.CurrencyCode != line.CurrencyCode {
			return nil, fmt.Errorf("%w: line currency %s does not match account %s currency %s",
				apperrors.ErrValidation, line.CurrencyCode, account.Code, account.CurrencyCode)
		}
	}
	return accounts, nil
}

// validateBalance asserts sum(debits) == sum(credits) per currency group,
// exactly. The error carries the computed discrepancy so the caller can
// correct the draft.
func (s *journalService) validateBalance(entry *domain.JournalEntry) error {
	imbalances := accounting.EntryImbalance(entry)
	if len(imbalances) == 0 {
		return nil
	}

	parts := make([]string, 0, len(imbalances))
	for currency, diff := range imbalances {
		parts = append(parts, fmt.Sprintf("%s %s", currency, diff.Abs().String()))
	}
	return fmt.Errorf("%w: discrepancy %s", apperrors.ErrUnbalancedEntry, strings.Join(parts, ", "))
}

func (s *journalService) buildLines(tenantID, entryID string, reqs []dto.EntryLineRequest) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(reqs))
	for i, lr := range reqs {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			TenantID:     tenantID,
			AccountID:    lr.AccountID,
			Debit:        lr.Debit,
			Credit:       lr.Credit,
			CurrencyCode: lr.CurrencyCode,
			Memo:         lr.Memo,
		}
	}
	return lines
}

func (s *journalService) entryAudit(entry *domain.JournalEntry, actor string, action domain.AuditAction, at time.Time) domain.AuditRecord {
	snapshot, _ := json.Marshal(entry)
	return domain.AuditRecord{
		RecordID:   uuid.NewString(),
		TenantID:   entry.TenantID,
		Actor:      actor,
		Action:     action,
		EntityType: "journal_entry",
		EntityID:   entry.EntryID,
		Snapshot:   snapshot,
		OccurredAt: at,
	}
}

// mirrorLines produces the debit<->credit mirror of the given lines, bound to
// the reversing entry.
func mirrorLines(lines []domain.JournalLine, tenantID, reversalEntryID string) []domain.JournalLine {
	mirrored := make([]domain.JournalLine, len(lines))
	for i, line := range lines {
		mirrored[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      reversalEntryID,
			TenantID:     tenantID,
			AccountID:    line.AccountID,
			Debit:        line.Credit,
			Credit:       line.Debit,
			CurrencyCode: line.CurrencyCode,
			Memo:         line.Memo,
		}
	}
	return mirrored
}

func reversalReference(original string) string {
	return original + "-REV"
}
