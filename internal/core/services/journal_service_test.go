package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/core/services"
	"github.com/finledger/finledger/internal/dto"
	"github.com/finledger/finledger/internal/middleware"
)

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.JournalSvcFacade
	tenantID        string
	actor           string
	ctx             context.Context
	cashAccount     domain.Account
	revenueAccount  domain.Account
	inactiveAccount domain.Account
	eurAccount      domain.Account
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, 0)

	suite.tenantID = uuid.NewString()
	suite.actor = uuid.NewString()
	suite.ctx = middleware.WithTenantID(context.Background(), suite.tenantID)

	suite.cashAccount = domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     suite.tenantID,
		Code:         "1000",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     suite.tenantID,
		Code:         "4000",
		AccountType:  domain.Revenue,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.inactiveAccount = domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     suite.tenantID,
		Code:         "4090",
		AccountType:  domain.Revenue,
		CurrencyCode: "USD",
		IsActive:     false,
	}
	suite.eurAccount = domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     suite.tenantID,
		Code:         "1200",
		AccountType:  domain.Asset,
		CurrencyCode: "EUR",
		IsActive:     true,
	}
}

func (suite *JournalServiceTestSuite) accountsMap(accounts ...domain.Account) map[string]domain.Account {
	m := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.AccountID] = a
	}
	return m
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Reference:   "INV-001",
		Description: "Invoice 001",
		EntryDate:   time.Now().UTC(),
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100), CurrencyCode: "USD"},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100), CurrencyCode: "USD"},
		},
	}
}

func (suite *JournalServiceTestSuite) draftEntry() *domain.JournalEntry {
	entryID := uuid.NewString()
	return &domain.JournalEntry{
		EntryID:         entryID,
		TenantID:        suite.tenantID,
		Reference:       "INV-001",
		Description:     "Invoice 001",
		TransactionType: domain.TxnGeneral,
		Status:          domain.Draft,
		EntryDate:       time.Now().UTC(),
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, TenantID: suite.tenantID, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100), CurrencyCode: "USD"},
			{LineID: uuid.NewString(), EntryID: entryID, TenantID: suite.tenantID, AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100), CurrencyCode: "USD"},
		},
	}
}

// --- CreateDraft ---

func (suite *JournalServiceTestSuite) TestCreateDraft_Success() {
	req := suite.balancedRequest()

	suite.mockJournalRepo.On("FindEntryByReference", mock.Anything, suite.tenantID, req.Reference).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("SaveDraft", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateDraft(suite.ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.Draft, entry.Status)
	suite.Equal(domain.TxnGeneral, entry.TransactionType)
	suite.Equal(suite.tenantID, entry.TenantID)
	suite.Len(entry.Lines, 2)
	suite.Zero(entry.SequenceNo)
	suite.Nil(entry.PostedAt)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateDraft_DuplicateReference() {
	req := suite.balancedRequest()
	existing := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByReference", mock.Anything, suite.tenantID, req.Reference).Return(existing, nil).Once()

	_, err := suite.service.CreateDraft(suite.ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveDraft", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateDraft_UnbalancedIsAccepted() {
	// Drafts are shape-checked only; balance is deferred to posting.
	req := suite.balancedRequest()
	req.Lines[1].Credit = decimal.NewFromInt(90)

	suite.mockJournalRepo.On("FindEntryByReference", mock.Anything, suite.tenantID, req.Reference).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("SaveDraft", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateDraft(suite.ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, entry.Status)
}

func (suite *JournalServiceTestSuite) TestCreateDraft_SingleLine() {
	req := suite.balancedRequest()
	req.Lines = req.Lines[:1]

	suite.mockJournalRepo.On("FindEntryByReference", mock.Anything, suite.tenantID, req.Reference).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateDraft(suite.ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateDraft_NoTenantInContext() {
	_, err := suite.service.CreateDraft(context.Background(), suite.balancedRequest(), suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoTenant)
}

// --- PostEntry ---

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("MarkPosted", mock.Anything, suite.tenantID, entry.EntryID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.AuditRecord")).
		Return(int64(7), nil).Once()

	posted, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.Equal(int64(7), posted.SequenceNo)
	suite.Require().NotNil(posted.PostedAt)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_Unbalanced() {
	entry := suite.draftEntry()
	entry.Lines[1].Credit = decimal.NewFromInt(90)

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.revenueAccount), nil).Once()

	_, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.Contains(err.Error(), "USD 10")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "MarkPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_MalformedLine() {
	entry := suite.draftEntry()
	entry.Lines[0].Credit = decimal.NewFromInt(5) // both sides set

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMalformedLine)
}

func (suite *JournalServiceTestSuite) TestPostEntry_InactiveAccount() {
	entry := suite.draftEntry()
	entry.Lines[1].AccountID = suite.inactiveAccount.AccountID

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.inactiveAccount), nil).Once()

	_, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountInactive)
}

func (suite *JournalServiceTestSuite) TestPostEntry_CurrencyMismatch() {
	entry := suite.draftEntry()
	entry.Lines[0].AccountID = suite.eurAccount.AccountID // USD line on a EUR account

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.eurAccount, suite.revenueAccount), nil).Once()

	_, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestPostEntry_IdempotentOnPosted() {
	postedAt := time.Now().UTC()
	entry := suite.draftEntry()
	entry.Status = domain.Posted
	entry.SequenceNo = 3
	entry.PostedAt = &postedAt

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()

	result, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, result.Status)
	suite.Equal(int64(3), result.SequenceNo)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "MarkPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_ReversedEntry() {
	entry := suite.draftEntry()
	entry.Status = domain.Reversed

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *JournalServiceTestSuite) TestPostEntry_LostRaceReturnsStoredState() {
	entry := suite.draftEntry()
	postedAt := time.Now().UTC()
	stored := *entry
	stored.Status = domain.Posted
	stored.SequenceNo = 9
	stored.PostedAt = &postedAt

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("MarkPosted", mock.Anything, suite.tenantID, entry.EntryID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.AuditRecord")).
		Return(int64(0), apperrors.ErrInvalidStateTransition).Once()
	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(&stored, nil).Once()

	result, err := suite.service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(int64(9), result.SequenceNo)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_Timeout() {
	service := services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, 50*time.Millisecond)
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("MarkPosted", mock.Anything, suite.tenantID, entry.EntryID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.AuditRecord")).
		Return(int64(0), context.DeadlineExceeded).Once()

	_, err := service.PostEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPostingTimedOut)
}

// --- UpdateDraft ---

func (suite *JournalServiceTestSuite) TestUpdateDraft_PostedIsImmutable() {
	postedAt := time.Now().UTC()
	entry := suite.draftEntry()
	entry.Status = domain.Posted
	entry.PostedAt = &postedAt

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()

	newDesc := "rewritten"
	_, err := suite.service.UpdateDraft(suite.ctx, entry.EntryID, dto.UpdateEntryRequest{Description: &newDesc}, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateDraft", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateDraft_Success() {
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(suite.accountsMap(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("UpdateDraft", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	newDesc := "corrected description"
	updated, err := suite.service.UpdateDraft(suite.ctx, entry.EntryID, dto.UpdateEntryRequest{Description: &newDesc}, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(newDesc, updated.Description)
	suite.Equal(suite.actor, updated.LastUpdatedBy)
}

// --- GetEntryByID ---

func (suite *JournalServiceTestSuite) TestGetEntryByID_CrossTenantMasked() {
	entry := suite.draftEntry()
	entry.TenantID = uuid.NewString() // belongs to someone else

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.GetEntryByID(suite.ctx, entry.EntryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCrossTenant)
}

// --- ReverseEntry ---

func (suite *JournalServiceTestSuite) TestReverseEntry_Success() {
	postedAt := time.Now().UTC()
	original := suite.draftEntry()
	original.Status = domain.Posted
	original.SequenceNo = 4
	original.PostedAt = &postedAt

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, original.EntryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("SaveReversal", mock.Anything, mock.AnythingOfType("domain.JournalEntry"), original.EntryID, mock.AnythingOfType("[]domain.AuditRecord")).
		Return(int64(5), nil).Once()

	reversal, err := suite.service.ReverseEntry(suite.ctx, original.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, reversal.Status)
	suite.Equal(domain.TxnReversal, reversal.TransactionType)
	suite.Equal(original.Reference+"-REV", reversal.Reference)
	suite.Equal(int64(5), reversal.SequenceNo)
	suite.Require().NotNil(reversal.ReversalOfEntryID)
	suite.Equal(original.EntryID, *reversal.ReversalOfEntryID)

	// Lines must be exact mirrors.
	suite.Require().Len(reversal.Lines, len(original.Lines))
	for i, line := range reversal.Lines {
		suite.True(line.Debit.Equal(original.Lines[i].Credit))
		suite.True(line.Credit.Equal(original.Lines[i].Debit))
		suite.Equal(original.Lines[i].AccountID, line.AccountID)
	}
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverseEntry_DraftRejected() {
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.ReverseEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_ReversalOfReversalRejected() {
	postedAt := time.Now().UTC()
	originalID := uuid.NewString()
	entry := suite.draftEntry()
	entry.Status = domain.Posted
	entry.PostedAt = &postedAt
	entry.ReversalOfEntryID = &originalID

	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.ReverseEntry(suite.ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveReversal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
