package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/dto"
	"github.com/finledger/finledger/internal/middleware"
)

// statementHandler handles HTTP requests for financial statements.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

func newStatementHandler(statementService portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: statementService}
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Derives a balance sheet snapshot as of a date (defaults to now). Empty ledgers yield an all-zero snapshot.
// @Tags statements
// @Produce json
// @Param asOf query string false "As-of date (RFC3339)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Router /statements/balance-sheet [get]
func (h *statementHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asOf date, expected RFC3339"})
			return
		}
		asOf = parsed
	}

	sheet, err := h.statementService.GenerateBalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceSheetResponse{BalanceSheet: sheet})
}

// getIncomeStatement godoc
// @Summary Generate an income statement
// @Description Derives an income statement for [start, end).
// @Tags statements
// @Produce json
// @Param start query string true "Period start (RFC3339, inclusive)"
// @Param end query string true "Period end (RFC3339, exclusive)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /statements/income-statement [get]
func (h *statementHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date, expected RFC3339"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}

	stmt, err := h.statementService.GenerateIncomeStatement(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, logger, err, "generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.IncomeStatementResponse{IncomeStatement: stmt})
}

// getTrialBalance godoc
// @Summary Generate a trial balance
// @Description Per-account debit and credit totals for entries posted within [from, to).
// @Tags statements
// @Produce json
// @Param from query string true "Period start (RFC3339, inclusive)"
// @Param to query string true "Period end (RFC3339, exclusive)"
// @Success 200 {array} domain.TrialBalanceRow
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /statements/trial-balance [get]
func (h *statementHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected RFC3339"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected RFC3339"})
		return
	}

	rows, err := h.statementService.TrialBalance(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "generate trial balance")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// registerStatementRoutes registers statement generation routes
func registerStatementRoutes(group *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := group.Group("/statements")
	{
		statements.GET("/balance-sheet", h.getBalanceSheet)
		statements.GET("/income-statement", h.getIncomeStatement)
		statements.GET("/trial-balance", h.getTrialBalance)
	}
}
