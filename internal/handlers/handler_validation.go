package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/dto"
	"github.com/finledger/finledger/internal/middleware"
)

// validationHandler handles HTTP requests for on-demand validation.
type validationHandler struct {
	validationService portssvc.ValidationSvcFacade
}

func newValidationHandler(validationService portssvc.ValidationSvcFacade) *validationHandler {
	return &validationHandler{validationService: validationService}
}

// runValidation godoc
// @Summary Run the validation suite now
// @Description Executes every check for the bound tenant and persists the results. FAIL results are returned, not errors.
// @Tags validation
// @Produce json
// @Success 200 {object} dto.ListValidationResultsResponse
// @Router /validation/run [post]
func (h *validationHandler) runValidation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	results, err := h.validationService.RunAll(c.Request.Context(), uuid.NewString())
	if err != nil {
		respondServiceError(c, logger, err, "run validation")
		return
	}
	c.JSON(http.StatusOK, dto.ListValidationResultsResponse{
		Results: dto.ToValidationResultResponses(results),
	})
}

// listResults godoc
// @Summary List validation results
// @Description Retrieves the append-only validation history, newest first.
// @Tags validation
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListValidationResultsResponse
// @Router /validation/results [get]
func (h *validationHandler) listResults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	results, token, err := h.validationService.ListResults(c.Request.Context(), limit, nextToken)
	if err != nil {
		respondServiceError(c, logger, err, "list validation results")
		return
	}
	c.JSON(http.StatusOK, dto.ListValidationResultsResponse{
		Results:   dto.ToValidationResultResponses(results),
		NextToken: token,
	})
}

// registerValidationRoutes registers validation routes
func registerValidationRoutes(group *gin.RouterGroup, validationService portssvc.ValidationSvcFacade) {
	h := newValidationHandler(validationService)

	validation := group.Group("/validation")
	{
		validation.POST("/run", h.runValidation)
		validation.GET("/results", h.listResults)
	}
}
