package handlers

import (
	"log/slog"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the financial report and its individual sections
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportParams reads range and limit and returns a detail message when
// limit is unusable. Unknown ranges are left for the period resolver.
func parseReportParams(c echo.Context) (dto.ReportParams, string) {
	var params dto.ReportParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return params, "limit must be an integer"
	}
	if err := c.Validate(params); err != nil {
		return params, "limit must be between 1 and 50"
	}
	return params, ""
}

// GetReport returns the full report for a range
// @Summary Full financial report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param range query string false "last-7-days, last-30-days, last-3-months, last-6-months or last-year" default(last-30-days)
// @Param limit query int false "Top expenses to include (1-50)"
// @Success 200 {object} models.FinancialReport
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Invalid limit"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "REPORT_001 - Report generation failed"
// @Router /reports [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	params, detail := parseReportParams(c)
	if detail != "" {
		return SendError(c, errors.ReportInvalidLimit, errors.WithDetails(detail))
	}

	report, err := h.reportService.GetReport(c.Request().Context(), userID, params.Range, params.Limit)
	if err != nil {
		return h.sendReportError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetSummary returns totals and changes against the previous period
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.reportService.GetSummary(c.Request().Context(), userID, c.QueryParam("range"))
	if err != nil {
		return h.sendReportError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// @Router /reports/categories [get]
func (h *ReportHandler) GetCategoryBreakdown(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	breakdown, err := h.reportService.GetCategoryBreakdown(c.Request().Context(), userID, c.QueryParam("range"))
	if err != nil {
		return h.sendReportError(c, err)
	}
	return c.JSON(http.StatusOK, breakdown)
}

// GetTopExpenses ranks vendors by spend
// @Router /reports/top-expenses [get]
func (h *ReportHandler) GetTopExpenses(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	params, detail := parseReportParams(c)
	if detail != "" {
		return SendError(c, errors.ReportInvalidLimit, errors.WithDetails(detail))
	}

	expenses, err := h.reportService.GetTopExpenses(c.Request().Context(), userID, params.Range, params.Limit)
	if err != nil {
		return h.sendReportError(c, err)
	}
	return c.JSON(http.StatusOK, expenses)
}

// @Router /reports/insights [get]
func (h *ReportHandler) GetInsights(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insights, err := h.reportService.GetInsights(c.Request().Context(), userID, c.QueryParam("range"))
	if err != nil {
		return h.sendReportError(c, err)
	}
	return c.JSON(http.StatusOK, insights)
}

// @Router /reports/monthly [get]
func (h *ReportHandler) GetMonthly(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	monthly, err := h.reportService.GetMonthly(c.Request().Context(), userID, c.QueryParam("range"))
	if err != nil {
		return h.sendReportError(c, err)
	}
	return c.JSON(http.StatusOK, monthly)
}

// @Router /reports/goals [get]
func (h *ReportHandler) GetGoals(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.reportService.GetGoals(c.Request().Context(), userID)
	if err != nil {
		return h.sendReportError(c, err)
	}
	return c.JSON(http.StatusOK, goals)
}

// sendReportError hides the cause behind REPORT_001. Source failures never
// reach here; they degrade the report instead.
func (h *ReportHandler) sendReportError(c echo.Context, err error) error {
	slog.ErrorContext(c.Request().Context(), "Report generation failed",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"error", err,
	)
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	errorResponse.Error.Code = string(errors.ReportGenerationFailed)
	errorResponse.Error.Message = errors.GetErrorMessage(errors.ReportGenerationFailed)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
