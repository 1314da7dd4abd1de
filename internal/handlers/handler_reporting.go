package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for expense summaries
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the summary route. It must be added to
// the same group as the expense routes so /expenses/summary wins over /expenses/:id.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)
	rg.GET("/expenses/summary", h.getSummary)
}

// getSummary godoc
// @Summary Summarize expenses
// @Description Totals and per-category breakdown, optionally limited to a date range
// @Tags reports
// @Produce json
// @Param start_date query string false "Inclusive lower date bound (ISO 8601)"
// @Param end_date query string false "Inclusive upper date bound (ISO 8601)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate expense summary"
// @Router /expenses/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, dto.CodeInvalidParameters, "Invalid date parameters: "+err.Error())
		return
	}

	start, err := dateParam("start_date", params.StartDate)
	if err != nil {
		logger.Warn("Invalid start_date for summary", slog.String("error", err.Error()))
		respondBadRequest(c, dto.CodeInvalidParameters, "Invalid date parameters: "+err.Error())
		return
	}
	end, err := dateParam("end_date", params.EndDate)
	if err != nil {
		logger.Warn("Invalid end_date for summary", slog.String("error", err.Error()))
		respondBadRequest(c, dto.CodeInvalidParameters, "Invalid date parameters: "+err.Error())
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
