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

// RecurringHandler manages the schedules the recurring processor posts from
type RecurringHandler struct {
	recurringService services.RecurringServiceInterface
}

func NewRecurringHandler(recurringService services.RecurringServiceInterface) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRecurring schedules a repeating transaction
// @Summary Create recurring transaction
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRecurringRequest true "Schedule"
// @Success 201 {object} dto.RecurringResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, RECURRING_002 or RECURRING_003"
// @Router /recurring [post]
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	recurring, err := h.recurringService.CreateRecurring(c.Request().Context(), userID, &req)
	if err != nil {
		return sendRecurringError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewRecurringResponse(recurring))
}

// ListRecurring pages through the caller's schedules, active ones first
// @Router /recurring [get]
func (h *RecurringHandler) ListRecurring(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var page dto.PaginationParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid pagination parameters"))
	}

	response, err := h.recurringService.ListRecurring(c.Request().Context(), userID, page)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// @Router /recurring/{id} [get]
func (h *RecurringHandler) GetRecurring(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	recurringID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid recurring transaction ID"))
	}

	recurring, err := h.recurringService.GetRecurring(c.Request().Context(), userID, recurringID)
	if err != nil {
		return sendRecurringError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecurringResponse(recurring))
}

// UpdateRecurring changes the set fields. Setting active to false pauses the
// schedule; setting it back resumes from today.
// @Router /recurring/{id} [put]
func (h *RecurringHandler) UpdateRecurring(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	recurringID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid recurring transaction ID"))
	}

	var req dto.UpdateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	recurring, err := h.recurringService.UpdateRecurring(c.Request().Context(), userID, recurringID, &req)
	if err != nil {
		return sendRecurringError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecurringResponse(recurring))
}

// @Router /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	recurringID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid recurring transaction ID"))
	}

	if err := h.recurringService.DeleteRecurring(c.Request().Context(), userID, recurringID); err != nil {
		return sendRecurringError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func sendRecurringError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrRecurringNotFound):
		return SendError(c, apierrors.RecurringNotFound)
	case errors.Is(err, models.ErrInvalidFrequency):
		return SendError(c, apierrors.RecurringInvalidFrequency, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidSchedule), errors.Is(err, services.ErrInvalidRecurDate):
		return SendError(c, apierrors.RecurringInvalidSchedule, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidAmount), errors.Is(err, services.ErrInvalidMoney):
		return SendError(c, apierrors.TransactionInvalidAmount, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType, apierrors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
