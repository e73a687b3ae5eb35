package errors

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "0b9d2f1e-4c3a-4f7e-9a61-2d8e5c7b1a90"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_DefaultMessage() {
	response := NewErrorResponse(RecurringNotFound, s.traceID)

	s.Equal("RECURRING_001", response.Error.Code)
	s.Equal("Recurring transaction not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_OptionsApplyInOrder() {
	response := NewErrorResponse(BudgetInvalidMonth, s.traceID,
		WithMessage("month 2024-13 is out of range"),
		WithDetails("month: 2024-13"),
		WithDetails("month: must use YYYY-MM"),
	)

	s.Equal("BUDGET_002", response.Error.Code)
	s.Equal("month 2024-13 is out of range", response.Error.Message)
	s.Equal([]string{"month: must use YYYY-MM"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedByField() {
	response := NewValidationError(map[string]string{
		"type":      "must be INCOME or EXPENSE",
		"amount":    "must be greater than 0",
		"frequency": "is required",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(GetErrorMessage(ValidationGeneral), response.Error.Message)
	s.Equal([]string{
		"amount: must be greater than 0",
		"frequency: is required",
		"type: must be INCOME or EXPENSE",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_NoFields() {
	response := NewValidationError(nil, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_Classification() {
	testCases := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{"plain failure", stderrors.New("categorizer returned nil"), SystemInternalError},
		{"bad connection", fmt.Errorf("list transactions: %w", driver.ErrBadConn), SystemDatabaseError},
		{"closed connection", fmt.Errorf("record: %w", sql.ErrConnDone), SystemDatabaseError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			response, original := WrapSystemError(tc.err, s.traceID)

			s.Equal(string(tc.code), response.Error.Code)
			s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
			s.Same(tc.err, original)
		})
	}
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternals() {
	err := stderrors.New(`pq: relation "recurring_transactions" does not exist`)

	response, _ := WrapSystemError(err, s.traceID)
	body, marshalErr := json.Marshal(response)
	s.Require().NoError(marshalErr)

	s.NotContains(string(body), "recurring_transactions")
	s.NotContains(string(body), "pq:")
	s.Contains(string(body), s.traceID)
}

func (s *ResponseTestSuite) TestGetHTTPStatus_ByFamily() {
	testCases := []struct {
		status int
		codes  []ErrorCode
	}{
		{http.StatusBadRequest, []ErrorCode{
			ValidationGeneral, ValidationInvalidDate, ValidationInvalidID,
			TransactionInvalidAmount, TransactionInvalidType,
			RuleInvalidType, RuleThresholdRequired, RuleCategoryRequired,
			BudgetInvalidMonth, BudgetInvalidAmount, GoalInvalidTarget,
			RecurringInvalidFrequency, RecurringInvalidSchedule,
			ImportMissingFile, ReportInvalidLimit,
		}},
		{http.StatusUnauthorized, []ErrorCode{AuthInvalidToken, AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat}},
		{http.StatusForbidden, []ErrorCode{AuthInsufficientPermission}},
		{http.StatusNotFound, []ErrorCode{
			RuleNotFound, AlertNotFound, BudgetNotFound, GoalNotFound,
			TransactionNotFound, RecurringNotFound, SystemRouteNotFound,
		}},
		{http.StatusConflict, []ErrorCode{SystemDuplicateRequest}},
		{http.StatusRequestEntityTooLarge, []ErrorCode{ImportFileTooLarge}},
		{http.StatusUnprocessableEntity, []ErrorCode{ImportUnsupportedFormat, ImportParseFailed}},
		{http.StatusTooManyRequests, []ErrorCode{SystemRateLimitExceeded}},
		{http.StatusServiceUnavailable, []ErrorCode{SystemServiceUnavailable}},
		{http.StatusInternalServerError, []ErrorCode{
			SystemInternalError, SystemDatabaseError, SystemConfigurationError,
			SystemUnexpectedError, ReportGenerationFailed,
		}},
	}

	for _, tc := range testCases {
		for _, code := range tc.codes {
			s.Run(string(code), func() {
				s.Equal(tc.status, GetHTTPStatus(code))
				s.Equal(tc.status, NewErrorResponse(code, s.traceID).GetHTTPStatus())
			})
		}
	}
}

// Every registered code except the 500 family must map explicitly.
func (s *ResponseTestSuite) TestGetHTTPStatus_EveryClientCodeMapped() {
	for _, code := range registeredCodes {
		if GetHTTPStatus(code) != http.StatusInternalServerError {
			continue
		}
		s.Run(string(code), func() {
			s.Contains([]ErrorCode{
				SystemInternalError, SystemDatabaseError, SystemConfigurationError,
				SystemUnexpectedError, ReportGenerationFailed,
			}, code)
		})
	}
}

func (s *ResponseTestSuite) TestGetHTTPStatus_UnknownCode() {
	s.Equal(http.StatusInternalServerError, GetHTTPStatus("RECURRING_999"))
}

func (s *ResponseTestSuite) TestEnvelope_WireShape() {
	body, err := json.Marshal(NewErrorResponse(GoalInvalidTarget, s.traceID, WithDetails("target_amount: 0")))
	s.Require().NoError(err)

	s.JSONEq(`{
		"error": {
			"code": "GOAL_002",
			"message": "Savings goal target must be greater than zero",
			"details": ["target_amount: 0"],
			"trace_id": "0b9d2f1e-4c3a-4f7e-9a61-2d8e5c7b1a90"
		}
	}`, string(body))
}

func (s *ResponseTestSuite) TestEnvelope_EmptyDetailsOmitted() {
	body, err := json.Marshal(NewErrorResponse(SystemDuplicateRequest, s.traceID))
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.NotContains(decoded["error"], "details")
	s.Equal("SYSTEM_007", decoded["error"]["code"])
}
