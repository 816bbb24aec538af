package services

import (
	"context"
	"fmt"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/dto"
)

// entryTemplate names the two sides of a common transaction shape. Each
// template expands into a two-line draft where both lines carry the same
// amount, so the draft is balanced by construction.
type entryTemplate struct {
	txnType    domain.TransactionType
	debitMemo  string
	creditMemo string
}

var entryTemplates = map[string]entryTemplate{
	"SALE":       {domain.TxnSale, "Receivable / cash from sale", "Revenue recognized"},
	"PURCHASE":   {domain.TxnPurchase, "Goods or expense acquired", "Payable / cash paid"},
	"PAYMENT":    {domain.TxnPayment, "Liability settled", "Cash paid out"},
	"RECEIPT":    {domain.TxnReceipt, "Cash received", "Receivable settled"},
	"TRANSFER":   {domain.TxnTransfer, "Transfer in", "Transfer out"},
	"ADJUSTMENT": {domain.TxnAdjustment, "Adjustment debit", "Adjustment credit"},
}

// CreateFromTemplate expands a template request into a draft entry and runs
// it through the normal draft pipeline. The result is an ordinary draft:
// callers may edit it before posting, and posting re-validates everything.
func (s *journalService) CreateFromTemplate(ctx context.Context, req dto.TemplateEntryRequest, actor string) (*domain.JournalEntry, error) {
	tmpl, ok := entryTemplates[req.Template]
	if !ok {
		return nil, fmt.Errorf("%w: unknown entry template %q", apperrors.ErrValidation, req.Template)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: template amount must be strictly positive", apperrors.ErrValidation)
	}
	if req.DebitAccountID == req.CreditAccount {
		return nil, fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}

	draftReq := dto.CreateEntryRequest{
		Reference:       req.Reference,
		Description:     req.Description,
		TransactionType: string(tmpl.txnType),
		EntryDate:       req.EntryDate,
		Lines: []dto.EntryLineRequest{
			{
				AccountID:    req.DebitAccountID,
				Debit:        req.Amount,
				CurrencyCode: req.CurrencyCode,
				Memo:         tmpl.debitMemo,
			},
			{
				AccountID:    req.CreditAccount,
				Credit:       req.Amount,
				CurrencyCode: req.CurrencyCode,
				Memo:         tmpl.creditMemo,
			},
		},
	}

	entry, err := s.CreateDraft(ctx, draftReq, actor)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Draft created from template", "entry_id", entry.EntryID, "template", req.Template)
	return entry, nil
}
