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

type EntryTemplatesTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.JournalSvcFacade
	tenantID        string
	actor           string
	ctx             context.Context
	cashAccount     domain.Account
	revenueAccount  domain.Account
}

func (suite *EntryTemplatesTestSuite) SetupTest() {
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
}

func (suite *EntryTemplatesTestSuite) templateRequest(template string) dto.TemplateEntryRequest {
	return dto.TemplateEntryRequest{
		Template:       template,
		Reference:      "SALE-42",
		Description:    "Cash sale",
		EntryDate:      time.Now().UTC(),
		Amount:         decimal.NewFromInt(250),
		CurrencyCode:   "USD",
		DebitAccountID: suite.cashAccount.AccountID,
		CreditAccount:  suite.revenueAccount.AccountID,
	}
}

func (suite *EntryTemplatesTestSuite) TestCreateFromTemplate_Success() {
	req := suite.templateRequest("SALE")

	suite.mockJournalRepo.On("FindEntryByReference", mock.Anything, suite.tenantID, req.Reference).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).
		Return(map[string]domain.Account{
			suite.cashAccount.AccountID:    suite.cashAccount,
			suite.revenueAccount.AccountID: suite.revenueAccount,
		}, nil).Once()
	suite.mockJournalRepo.On("SaveDraft", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateFromTemplate(suite.ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.TxnSale, entry.TransactionType)
	suite.Equal(domain.Draft, entry.Status)
	suite.Require().Len(entry.Lines, 2)
	suite.True(entry.Lines[0].Debit.Equal(req.Amount))
	suite.True(entry.Lines[1].Credit.Equal(req.Amount))
	suite.Equal(suite.cashAccount.AccountID, entry.Lines[0].AccountID)
	suite.Equal(suite.revenueAccount.AccountID, entry.Lines[1].AccountID)

	// Balanced by construction.
	totals := entry.TotalsByCurrency()["USD"]
	suite.True(totals.Debits.Equal(totals.Credits))
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *EntryTemplatesTestSuite) TestCreateFromTemplate_UnknownTemplate() {
	req := suite.templateRequest("DIVIDEND")

	_, err := suite.service.CreateFromTemplate(suite.ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveDraft", mock.Anything, mock.Anything)
}

func (suite *EntryTemplatesTestSuite) TestCreateFromTemplate_NonPositiveAmount() {
	req := suite.templateRequest("SALE")
	req.Amount = decimal.Zero

	_, err := suite.service.CreateFromTemplate(suite.ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EntryTemplatesTestSuite) TestCreateFromTemplate_SameAccountBothSides() {
	req := suite.templateRequest("TRANSFER")
	req.CreditAccount = req.DebitAccountID

	_, err := suite.service.CreateFromTemplate(suite.ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestEntryTemplates(t *testing.T) {
	suite.Run(t, new(EntryTemplatesTestSuite))
}
