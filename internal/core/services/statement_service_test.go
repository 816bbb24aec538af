package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/finledger/internal/core/domain"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/core/services"
	"github.com/finledger/finledger/internal/middleware"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.StatementSvcFacade
	tenantID          string
	ctx               context.Context
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewStatementService(suite.mockReportingRepo)
	suite.tenantID = uuid.NewString()
	suite.ctx = middleware.WithTenantID(context.Background(), suite.tenantID)
}

func netAmount(code, name string, accountType domain.AccountType, subtype domain.AccountSubtype, amount int64) domain.AccountNetAmount {
	return domain.AccountNetAmount{
		AccountID:      uuid.NewString(),
		Code:           code,
		Name:           name,
		AccountType:    accountType,
		AccountSubtype: subtype,
		NetAmount:      decimal.NewFromInt(amount),
	}
}

func (suite *StatementServiceTestSuite) TestGenerateBalanceSheet_EquationHolds() {
	asOf := time.Now().UTC()
	// A balanced ledger: cash 1000 funded by a 400 loan, 500 capital, and
	// 100 of unclosed revenue.
	balances := []domain.AccountNetAmount{
		netAmount("1000", "Cash", domain.Asset, domain.CurrentAsset, 1000),
		netAmount("2000", "Bank Loan", domain.Liability, domain.CurrentLiability, 400),
		netAmount("3000", "Share Capital", domain.Equity, domain.ContributedCapital, 500),
		netAmount("4000", "Sales", domain.Revenue, domain.OperatingRevenue, 100),
	}
	suite.mockReportingRepo.On("GetAccountBalances", mock.Anything, suite.tenantID, asOf).Return(balances, nil).Once()

	sheet, err := suite.service.GenerateBalanceSheet(suite.ctx, asOf)

	suite.Require().NoError(err)
	suite.True(sheet.TotalAssets.Equal(decimal.NewFromInt(1000)))
	suite.True(sheet.TotalLiabilities.Equal(decimal.NewFromInt(400)))
	suite.True(sheet.TotalEquity.Equal(decimal.NewFromInt(600)), "equity should include current earnings, got %s", sheet.TotalEquity)
	suite.True(sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)))
	suite.True(sheet.TotalLiabilitiesAndEquity.Equal(decimal.NewFromInt(1000)))

	// The synthetic earnings section is always the last equity section.
	last := sheet.Equity[len(sheet.Equity)-1]
	suite.Equal("Current Period Earnings", last.Label)
	suite.True(last.Subtotal.Equal(decimal.NewFromInt(100)))
}

func (suite *StatementServiceTestSuite) TestGenerateBalanceSheet_EmptyLedger() {
	asOf := time.Now().UTC()
	suite.mockReportingRepo.On("GetAccountBalances", mock.Anything, suite.tenantID, asOf).Return([]domain.AccountNetAmount{}, nil).Once()

	sheet, err := suite.service.GenerateBalanceSheet(suite.ctx, asOf)

	suite.Require().NoError(err)
	suite.True(sheet.TotalAssets.IsZero())
	suite.True(sheet.TotalLiabilities.IsZero())
	suite.True(sheet.TotalEquity.IsZero())
	suite.True(sheet.TotalLiabilitiesAndEquity.IsZero())

	// Every section is emitted even when empty: two asset, two liability,
	// two equity plus the synthetic earnings section.
	suite.Len(sheet.Assets, 2)
	suite.Len(sheet.Liabilities, 2)
	suite.Len(sheet.Equity, 3)
}

func (suite *StatementServiceTestSuite) TestGenerateBalanceSheet_ZeroBalanceAccountsOmitted() {
	asOf := time.Now().UTC()
	balances := []domain.AccountNetAmount{
		netAmount("1000", "Cash", domain.Asset, domain.CurrentAsset, 300),
		netAmount("1100", "Petty Cash", domain.Asset, domain.CurrentAsset, 0),
	}
	suite.mockReportingRepo.On("GetAccountBalances", mock.Anything, suite.tenantID, asOf).Return(balances, nil).Once()

	sheet, err := suite.service.GenerateBalanceSheet(suite.ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(sheet.Assets[0].Items, 1)
	suite.Equal("1000", sheet.Assets[0].Items[0].Code)
}

func (suite *StatementServiceTestSuite) TestGenerateIncomeStatement_Success() {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	movements := []domain.AccountNetAmount{
		netAmount("4000", "Sales", domain.Revenue, domain.OperatingRevenue, 900),
		netAmount("4900", "Interest Income", domain.Revenue, domain.OtherRevenue, 50),
		netAmount("5000", "Rent", domain.Expense, domain.OperatingExpense, 300),
	}
	suite.mockReportingRepo.On("GetPeriodMovements", mock.Anything, suite.tenantID, start, end).Return(movements, nil).Once()

	stmt, err := suite.service.GenerateIncomeStatement(suite.ctx, start, end)

	suite.Require().NoError(err)
	suite.True(stmt.TotalRevenue.Equal(decimal.NewFromInt(950)))
	suite.True(stmt.TotalExpenses.Equal(decimal.NewFromInt(300)))
	suite.True(stmt.NetIncome.Equal(decimal.NewFromInt(650)))
	suite.Equal(start, stmt.PeriodStart)
	suite.Equal(end, stmt.PeriodEnd)
}

func (suite *StatementServiceTestSuite) TestGenerateIncomeStatement_InvalidPeriod() {
	at := time.Now().UTC()

	_, err := suite.service.GenerateIncomeStatement(suite.ctx, at, at)

	suite.Require().Error(err)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetPeriodMovements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGenerateBalanceSheet_Deterministic() {
	asOf := time.Now().UTC()
	balances := []domain.AccountNetAmount{
		netAmount("1000", "Cash", domain.Asset, domain.CurrentAsset, 100),
		netAmount("3000", "Capital", domain.Equity, domain.ContributedCapital, 100),
	}
	suite.mockReportingRepo.On("GetAccountBalances", mock.Anything, suite.tenantID, asOf).Return(balances, nil).Twice()

	first, err := suite.service.GenerateBalanceSheet(suite.ctx, asOf)
	suite.Require().NoError(err)
	second, err := suite.service.GenerateBalanceSheet(suite.ctx, asOf)
	suite.Require().NoError(err)

	// Same inputs, same figures. Only the statement id and generation time differ.
	suite.True(first.TotalAssets.Equal(second.TotalAssets))
	suite.True(first.TotalEquity.Equal(second.TotalEquity))
	suite.Equal(len(first.Assets), len(second.Assets))
	suite.NotEqual(first.StatementID, second.StatementID)
}

func (suite *StatementServiceTestSuite) TestGenerateBalanceSheet_DeactivatedAccountBalanceStaysOnSheet() {
	asOf := time.Now().UTC()
	// Cash was funded by revenue, then deactivated. Balance aggregation
	// includes deactivated accounts (deactivation blocks future postings
	// only), so the carried 1000 must stay on the sheet and the equation
	// must still close.
	cash := netAmount("1000", "Cash", domain.Asset, domain.CurrentAsset, 1000)
	balances := []domain.AccountNetAmount{
		cash,
		netAmount("4000", "Sales", domain.Revenue, domain.OperatingRevenue, 1000),
	}
	suite.mockReportingRepo.On("GetAccountBalances", mock.Anything, suite.tenantID, asOf).Return(balances, nil).Once()

	sheet, err := suite.service.GenerateBalanceSheet(suite.ctx, asOf)

	suite.Require().NoError(err)
	suite.True(sheet.TotalAssets.Equal(decimal.NewFromInt(1000)), "got assets %s", sheet.TotalAssets)
	suite.True(sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)),
		"equation must hold: assets %s vs liabilities+equity %s", sheet.TotalAssets, sheet.TotalLiabilities.Add(sheet.TotalEquity))
	suite.Require().Len(sheet.Assets[0].Items, 1)
	suite.Equal(cash.AccountID, sheet.Assets[0].Items[0].AccountID)
}

func (suite *StatementServiceTestSuite) TestBalanceSheetLineItemMatchesAccountBalance() {
	asOf := time.Now().UTC()
	cash := netAmount("1000", "Cash", domain.Asset, domain.CurrentAsset, 750)
	balances := []domain.AccountNetAmount{
		cash,
		netAmount("3000", "Capital", domain.Equity, domain.ContributedCapital, 750),
	}

	// Both reads are served by the same repository, so a single-account
	// balance must agree with the balance sheet line item for the same date.
	suite.mockReportingRepo.On("GetAccountBalances", mock.Anything, suite.tenantID, asOf).Return(balances, nil).Once()
	suite.mockReportingRepo.On("GetAccountBalance", mock.Anything, suite.tenantID, cash.AccountID, asOf).Return(cash.NetAmount, nil).Once()

	journalSvc := services.NewJournalService(new(MockJournalRepository), new(MockAccountService), 0)
	ledger := services.NewLedgerService(journalSvc, new(MockJournalRepository), suite.mockReportingRepo)

	sheet, err := suite.service.GenerateBalanceSheet(suite.ctx, asOf)
	suite.Require().NoError(err)
	balance, err := ledger.GetAccountBalance(suite.ctx, cash.AccountID, asOf)
	suite.Require().NoError(err)

	suite.Require().Len(sheet.Assets[0].Items, 1)
	suite.True(sheet.Assets[0].Items[0].Amount.Equal(balance),
		"line item %s must equal account balance %s", sheet.Assets[0].Items[0].Amount, balance)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func TestStatementService(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
