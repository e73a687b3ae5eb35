package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ContactHandler maintains the email address that EMAIL notifications go to
type ContactHandler struct {
	contactService services.ContactServiceInterface
}

func NewContactHandler(contactService services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// UpdateContact sets the caller's notification email
// @Summary Set notification contact
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateContactRequest true "Contact"
// @Success 200 {object} models.NotificationContact
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid email"
// @Router /notifications/contact [put]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	contact, err := h.contactService.UpdateContact(c.Request().Context(), userID, req.Email)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, contact)
}

// @Router /notifications/contact [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	contact, err := h.contactService.GetContact(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return SendError(c, apierrors.SystemRouteNotFound, apierrors.WithDetails("No notification contact on file"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, contact)
}
