package handlers

import (
	"net/http"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ContactHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	contactService *service_mocks.MockContactServiceInterface
	handler        *ContactHandler
	echo           *echo.Echo
	testUserID     uuid.UUID
}

func (s *ContactHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.contactService = service_mocks.NewMockContactServiceInterface(s.ctrl)
	s.handler = NewContactHandler(s.contactService)
	s.echo = newTestEcho()
	s.testUserID = uuid.New()
}

func (s *ContactHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestContactHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerSuite))
}

func (s *ContactHandlerSuite) TestUpdateContact() {
	s.contactService.EXPECT().
		UpdateContact(gomock.Any(), s.testUserID, "me@example.com").
		Return(&models.NotificationContact{UserID: s.testUserID, Email: "me@example.com"}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPut, "/api/v1/notifications/contact",
		dto.UpdateContactRequest{Email: "me@example.com"}, s.testUserID)

	s.NoError(s.handler.UpdateContact(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "me@example.com")
}

func (s *ContactHandlerSuite) TestUpdateContact_InvalidEmail() {
	c, _ := newAuthedContext(s.echo, http.MethodPut, "/api/v1/notifications/contact",
		dto.UpdateContactRequest{Email: "not-an-email"}, s.testUserID)

	err := s.handler.UpdateContact(c)
	s.IsType(validator.ValidationErrors{}, err)
}

func (s *ContactHandlerSuite) TestGetContact() {
	s.Run("on file", func() {
		s.contactService.EXPECT().
			GetContact(gomock.Any(), s.testUserID).
			Return(&models.NotificationContact{UserID: s.testUserID, Email: "me@example.com"}, nil)

		c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/notifications/contact", nil, s.testUserID)
		s.NoError(s.handler.GetContact(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing", func() {
		s.contactService.EXPECT().
			GetContact(gomock.Any(), s.testUserID).
			Return(nil, services.ErrContactNotFound)

		c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/notifications/contact", nil, s.testUserID)
		s.NoError(s.handler.GetContact(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("SYSTEM_008", decodeError(rec).Error.Code)
	})
}
