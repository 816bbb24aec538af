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
	"github.com/finledger/finledger/internal/middleware"
)

type ValidationServiceTestSuite struct {
	suite.Suite
	mockStatementSvc   *MockStatementService
	mockJournalRepo    *MockJournalRepository
	mockReportingRepo  *MockReportingRepository
	mockValidationRepo *MockValidationRepository
	mockTenantRepo     *MockTenantRepository
	mockFxRepo         *MockFxRateRepository
	service            portssvc.ValidationSvcFacade
	tenantID           string
	runID              string
	ctx                context.Context
}

func (suite *ValidationServiceTestSuite) SetupTest() {
	suite.mockStatementSvc = new(MockStatementService)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockValidationRepo = new(MockValidationRepository)
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockFxRepo = new(MockFxRateRepository)
	suite.service = services.NewValidationService(
		suite.mockStatementSvc,
		suite.mockJournalRepo,
		suite.mockReportingRepo,
		suite.mockValidationRepo,
		suite.mockTenantRepo,
		suite.mockFxRepo,
	)

	suite.tenantID = uuid.NewString()
	suite.runID = uuid.NewString()
	suite.ctx = middleware.WithTenantID(context.Background(), suite.tenantID)
}

func (suite *ValidationServiceTestSuite) balancedSheet() *domain.BalanceSheet {
	return &domain.BalanceSheet{
		StatementID:               uuid.NewString(),
		TenantID:                  suite.tenantID,
		TotalAssets:               decimal.NewFromInt(1000),
		TotalLiabilities:          decimal.NewFromInt(400),
		TotalEquity:               decimal.NewFromInt(600),
		TotalLiabilitiesAndEquity: decimal.NewFromInt(1000),
	}
}

// --- Accounting equation ---

func (suite *ValidationServiceTestSuite) TestValidateAccountingEquation_Pass() {
	sheet := suite.balancedSheet()

	result, err := suite.service.ValidateAccountingEquation(suite.ctx, sheet, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckPass, result.Status)
	suite.Equal(domain.CheckAccountingEquation, result.Check)
	suite.True(result.Discrepancy.IsZero())
	suite.Equal([]string{sheet.StatementID}, result.EntityRefs)
}

func (suite *ValidationServiceTestSuite) TestValidateAccountingEquation_Fail() {
	sheet := suite.balancedSheet()
	sheet.TotalAssets = decimal.NewFromInt(1001) // off by one

	result, err := suite.service.ValidateAccountingEquation(suite.ctx, sheet, suite.runID)

	suite.Require().NoError(err, "a discrepancy is a FAIL result, not an error")
	suite.Equal(domain.CheckFail, result.Status)
	suite.True(result.Discrepancy.Equal(decimal.NewFromInt(1)))
	suite.NotEmpty(result.Details)
}

func (suite *ValidationServiceTestSuite) TestValidateAccountingEquation_NoTolerance() {
	sheet := suite.balancedSheet()
	sheet.TotalAssets = decimal.RequireFromString("1000.01")

	result, err := suite.service.ValidateAccountingEquation(suite.ctx, sheet, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckFail, result.Status)
	suite.True(result.Discrepancy.Equal(decimal.RequireFromString("0.01")))
}

// --- Income statement ---

func (suite *ValidationServiceTestSuite) TestValidateIncomeStatement_Pass() {
	stmt := &domain.IncomeStatement{
		StatementID:   uuid.NewString(),
		TenantID:      suite.tenantID,
		TotalRevenue:  decimal.NewFromInt(900),
		TotalExpenses: decimal.NewFromInt(300),
		NetIncome:     decimal.NewFromInt(600),
	}

	result, err := suite.service.ValidateIncomeStatement(suite.ctx, stmt, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckPass, result.Status)
}

func (suite *ValidationServiceTestSuite) TestValidateIncomeStatement_Fail() {
	stmt := &domain.IncomeStatement{
		StatementID:   uuid.NewString(),
		TenantID:      suite.tenantID,
		TotalRevenue:  decimal.NewFromInt(900),
		TotalExpenses: decimal.NewFromInt(300),
		NetIncome:     decimal.NewFromInt(500), // should be 600
	}

	result, err := suite.service.ValidateIncomeStatement(suite.ctx, stmt, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckFail, result.Status)
	suite.True(result.Discrepancy.Equal(decimal.NewFromInt(-100)))
}

// --- Trial balance ---

func (suite *ValidationServiceTestSuite) TestValidateTrialBalance_Pass() {
	from, to := time.Time{}, time.Now().UTC()
	suite.mockReportingRepo.On("GetDebitCreditTotals", mock.Anything, suite.tenantID, from, to).
		Return(decimal.NewFromInt(5000), decimal.NewFromInt(5000), nil).Once()

	result, err := suite.service.ValidateTrialBalance(suite.ctx, from, to, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckPass, result.Status)
}

func (suite *ValidationServiceTestSuite) TestValidateTrialBalance_Fail() {
	from, to := time.Time{}, time.Now().UTC()
	suite.mockReportingRepo.On("GetDebitCreditTotals", mock.Anything, suite.tenantID, from, to).
		Return(decimal.NewFromInt(5000), decimal.RequireFromString("4999.99"), nil).Once()

	result, err := suite.service.ValidateTrialBalance(suite.ctx, from, to, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckFail, result.Status)
	suite.True(result.Discrepancy.Equal(decimal.RequireFromString("0.01")))
}

// --- Currency conversion ---

func (suite *ValidationServiceTestSuite) mixedEntry() *domain.JournalEntry {
	postedAt := time.Now().UTC()
	entryID := uuid.NewString()
	return &domain.JournalEntry{
		EntryID:  entryID,
		TenantID: suite.tenantID,
		Status:   domain.Posted,
		PostedAt: &postedAt,
		Lines: []domain.JournalLine{
			// 100 EUR debit converts to 110 USD at 1.10.
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: uuid.NewString(), Debit: decimal.NewFromInt(100), CurrencyCode: "EUR"},
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: uuid.NewString(), Credit: decimal.NewFromInt(110), CurrencyCode: "USD"},
		},
	}
}

func (suite *ValidationServiceTestSuite) TestValidateCurrencyConversion_Pass() {
	entry := suite.mixedEntry()
	tenant := &domain.Tenant{TenantID: suite.tenantID, BaseCurrencyCode: "USD"}
	rate := &domain.FxRate{Rate: decimal.RequireFromString("1.10"), Precision: 2}

	suite.mockTenantRepo.On("FindTenantByID", mock.Anything, suite.tenantID).Return(tenant, nil).Once()
	suite.mockFxRepo.On("FindRate", mock.Anything, "EUR", "USD", *entry.PostedAt).Return(rate, nil).Once()

	result, err := suite.service.ValidateCurrencyConversion(suite.ctx, entry, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckPass, result.Status)
	suite.Equal([]string{entry.EntryID}, result.EntityRefs)
}

func (suite *ValidationServiceTestSuite) TestValidateCurrencyConversion_Fail() {
	entry := suite.mixedEntry()
	tenant := &domain.Tenant{TenantID: suite.tenantID, BaseCurrencyCode: "USD"}
	rate := &domain.FxRate{Rate: decimal.RequireFromString("1.20"), Precision: 2} // converts to 120, not 110

	suite.mockTenantRepo.On("FindTenantByID", mock.Anything, suite.tenantID).Return(tenant, nil).Once()
	suite.mockFxRepo.On("FindRate", mock.Anything, "EUR", "USD", *entry.PostedAt).Return(rate, nil).Once()

	result, err := suite.service.ValidateCurrencyConversion(suite.ctx, entry, suite.runID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckFail, result.Status)
	suite.True(result.Actual.Equal(decimal.NewFromInt(10)))
}

func (suite *ValidationServiceTestSuite) TestValidateCurrencyConversion_MissingRateIsFail() {
	entry := suite.mixedEntry()
	tenant := &domain.Tenant{TenantID: suite.tenantID, BaseCurrencyCode: "USD"}

	suite.mockTenantRepo.On("FindTenantByID", mock.Anything, suite.tenantID).Return(tenant, nil).Once()
	suite.mockFxRepo.On("FindRate", mock.Anything, "EUR", "USD", *entry.PostedAt).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ValidateCurrencyConversion(suite.ctx, entry, suite.runID)

	suite.Require().NoError(err, "a missing rate is a data defect, reported as FAIL")
	suite.Equal(domain.CheckFail, result.Status)
	suite.Contains(result.Details, "no EUR/USD rate loaded")
}

// --- RunAll ---

func (suite *ValidationServiceTestSuite) TestRunAll_PersistsAllResults() {
	sheet := suite.balancedSheet()
	stmt := &domain.IncomeStatement{
		StatementID:   uuid.NewString(),
		TenantID:      suite.tenantID,
		TotalRevenue:  decimal.NewFromInt(100),
		TotalExpenses: decimal.NewFromInt(40),
		NetIncome:     decimal.NewFromInt(60),
	}

	suite.mockStatementSvc.On("GenerateBalanceSheet", mock.Anything, mock.AnythingOfType("time.Time")).Return(sheet, nil).Once()
	suite.mockStatementSvc.On("GenerateIncomeStatement", mock.Anything, time.Time{}, mock.AnythingOfType("time.Time")).Return(stmt, nil).Once()
	suite.mockReportingRepo.On("GetDebitCreditTotals", mock.Anything, suite.tenantID, time.Time{}, mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(500), decimal.NewFromInt(500), nil).Once()
	suite.mockJournalRepo.On("ListMixedCurrencyEntries", mock.Anything, suite.tenantID, time.Time{}, mock.AnythingOfType("time.Time")).
		Return([]domain.JournalEntry{}, nil).Once()
	suite.mockValidationRepo.On("SaveResults", mock.Anything, mock.AnythingOfType("[]domain.ValidationResult")).Return(nil).Once()

	results, err := suite.service.RunAll(suite.ctx, suite.runID)

	suite.Require().NoError(err)
	suite.Len(results, 3) // equation, trial balance, income; no mixed-currency entries
	for _, r := range results {
		suite.Equal(domain.CheckPass, r.Status)
		suite.Equal(suite.runID, r.RunID)
		suite.Equal(suite.tenantID, r.TenantID)
	}
	suite.mockValidationRepo.AssertExpectations(suite.T())
}

func (suite *ValidationServiceTestSuite) TestRunAll_IncludesMixedCurrencyChecks() {
	sheet := suite.balancedSheet()
	stmt := &domain.IncomeStatement{
		StatementID: uuid.NewString(),
		TenantID:    suite.tenantID,
	}
	entry := suite.mixedEntry()
	tenant := &domain.Tenant{TenantID: suite.tenantID, BaseCurrencyCode: "USD"}
	rate := &domain.FxRate{Rate: decimal.RequireFromString("1.10"), Precision: 2}

	suite.mockStatementSvc.On("GenerateBalanceSheet", mock.Anything, mock.AnythingOfType("time.Time")).Return(sheet, nil).Once()
	suite.mockStatementSvc.On("GenerateIncomeStatement", mock.Anything, time.Time{}, mock.AnythingOfType("time.Time")).Return(stmt, nil).Once()
	suite.mockReportingRepo.On("GetDebitCreditTotals", mock.Anything, suite.tenantID, time.Time{}, mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockJournalRepo.On("ListMixedCurrencyEntries", mock.Anything, suite.tenantID, time.Time{}, mock.AnythingOfType("time.Time")).
		Return([]domain.JournalEntry{*entry}, nil).Once()
	suite.mockTenantRepo.On("FindTenantByID", mock.Anything, suite.tenantID).Return(tenant, nil).Once()
	suite.mockFxRepo.On("FindRate", mock.Anything, "EUR", "USD", *entry.PostedAt).Return(rate, nil).Once()
	suite.mockValidationRepo.On("SaveResults", mock.Anything, mock.AnythingOfType("[]domain.ValidationResult")).Return(nil).Once()

	results, err := suite.service.RunAll(suite.ctx, suite.runID)

	suite.Require().NoError(err)
	suite.Len(results, 4)
	suite.Equal(domain.CheckCurrencyConversion, results[3].Check)
}

func (suite *ValidationServiceTestSuite) TestRunAll_NoTenant() {
	_, err := suite.service.RunAll(context.Background(), suite.runID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoTenant)
}

func TestValidationService(t *testing.T) {
	suite.Run(t, new(ValidationServiceTestSuite))
}
