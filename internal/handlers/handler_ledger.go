package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/dto"
	"github.com/finledger/finledger/internal/middleware"
)

// ledgerHandler handles HTTP requests for ledger queries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// getBalance godoc
// @Summary Get an account balance
// @Description Computes the account's balance from posted lines as of a date (defaults to now).
// @Tags ledger
// @Produce json
// @Param accountID path string true "Account ID"
// @Param asOf query string false "As-of date (RFC3339)"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /ledger/accounts/{accountID}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asOf date, expected RFC3339"})
			return
		}
		asOf = parsed
	}

	balance, err := h.ledgerService.GetAccountBalance(c.Request.Context(), accountID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "get account balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		AsOf:      asOf.Format(time.RFC3339),
		Balance:   balance,
	})
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a filtered, paginated list of the tenant's entries.
// @Tags ledger
// @Produce json
// @Param status query string false "Filter by status (DRAFT, POSTED, REVERSED)"
// @Param accountID query string false "Filter by account"
// @Param dateFrom query string false "Entry date lower bound (RFC3339, inclusive)"
// @Param dateTo query string false "Entry date upper bound (RFC3339, exclusive)"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEntriesResponse
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.EntryFilter{}
	if raw := c.Query("status"); raw != "" {
		status := domain.EntryStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("accountID"); raw != "" {
		filter.AccountID = &raw
	}
	if raw := c.Query("dateFrom"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateFrom, expected RFC3339"})
			return
		}
		filter.DateFrom = &parsed
	}
	if raw := c.Query("dateTo"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateTo, expected RFC3339"})
			return
		}
		filter.DateTo = &parsed
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	entries, token, err := h.ledgerService.ListEntries(c.Request.Context(), filter, limit, nextToken)
	if err != nil {
		respondServiceError(c, logger, err, "list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: token,
	})
}

// registerLedgerRoutes registers ledger query routes
func registerLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := group.Group("/ledger")
	{
		ledger.GET("/accounts/:accountID/balance", h.getBalance)
		ledger.GET("/entries", h.listEntries)
	}
}
