package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandler serves alert rules and the alert inbox
type AlertHandler struct {
	ruleService  services.RuleServiceInterface
	alertService services.AlertServiceInterface
}

func NewAlertHandler(ruleService services.RuleServiceInterface, alertService services.AlertServiceInterface) *AlertHandler {
	return &AlertHandler{
		ruleService:  ruleService,
		alertService: alertService,
	}
}

// CreateRule creates an alert rule for the authenticated user
// @Summary Create alert rule
// @Tags Alerts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRuleRequest true "Rule definition"
// @Success 201 {object} models.AlertRule
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, RULE_002, RULE_003 or RULE_004"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /alerts/rules [post]
func (h *AlertHandler) CreateRule(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	rule, err := h.ruleService.CreateRule(c.Request().Context(), userID, &req)
	if err != nil {
		return sendRuleError(c, err)
	}

	return c.JSON(http.StatusCreated, rule)
}

// ListRules returns the caller's rules, active only unless includeDeactivated is set
// @Router /alerts/rules [get]
func (h *AlertHandler) ListRules(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.RuleListParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	rules, err := h.ruleService.ListRules(c.Request().Context(), userID, params.IncludeDeactivated)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListRulesResponse{Rules: rules})
}

// UpdateRule changes a rule's name, description, threshold or category
// @Router /alerts/rules/{id} [put]
func (h *AlertHandler) UpdateRule(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	ruleID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid rule ID"))
	}

	var req dto.UpdateRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	rule, err := h.ruleService.UpdateRule(c.Request().Context(), userID, ruleID, &req)
	if err != nil {
		return sendRuleError(c, err)
	}

	return c.JSON(http.StatusOK, rule)
}

// DeactivateRule soft-deletes a rule. Repeating it on an owned rule succeeds.
// @Router /alerts/rules/{id} [delete]
func (h *AlertHandler) DeactivateRule(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	ruleID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid rule ID"))
	}

	rule, err := h.ruleService.DeactivateRule(c.Request().Context(), userID, ruleID)
	if err != nil {
		return sendRuleError(c, err)
	}

	return c.JSON(http.StatusOK, rule)
}

// @Router /alerts/rules/{id}/activate [post]
func (h *AlertHandler) ActivateRule(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	ruleID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid rule ID"))
	}

	rule, err := h.ruleService.ActivateRule(c.Request().Context(), userID, ruleID)
	if err != nil {
		return sendRuleError(c, err)
	}

	return c.JSON(http.StatusOK, rule)
}

// ListAlerts returns the caller's alerts newest first
// @Summary List alerts
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListAlertsResponse
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	page := dto.PaginationParams{
		Page: getIntParam(c, "page", 1),
		Size: getIntParam(c, "size", 20),
	}

	response, err := h.alertService.ListAlerts(c.Request().Context(), userID, page)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// @Router /alerts/unread [get]
func (h *AlertHandler) ListUnread(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	alerts, err := h.alertService.ListUnread(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]models.AlertHistory{"alerts": alerts})
}

// @Router /alerts/unread/count [get]
func (h *AlertHandler) CountUnread(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	count, err := h.alertService.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// MarkRead marks one alert read
// @Router /alerts/{id}/read [patch]
func (h *AlertHandler) MarkRead(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	alertID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid alert ID"))
	}

	alert, err := h.alertService.MarkRead(c.Request().Context(), userID, alertID)
	if err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			return SendError(c, apierrors.AlertNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, alert)
}

// @Router /alerts/read-all [patch]
func (h *AlertHandler) MarkAllRead(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	updated, err := h.alertService.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}

func sendRuleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrRuleNotFound):
		return SendError(c, apierrors.RuleNotFound)
	case errors.Is(err, models.ErrInvalidRuleType):
		return SendError(c, apierrors.RuleInvalidType, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrRuleThresholdRequired):
		return SendError(c, apierrors.RuleThresholdRequired, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrRuleCategoryRequired):
		return SendError(c, apierrors.RuleCategoryRequired, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidMoney):
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
