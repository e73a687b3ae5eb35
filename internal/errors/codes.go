package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidToken           ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidID     ErrorCode = "VALIDATION_007"
)

// Alert rule error codes (RULE_*)
const (
	RuleNotFound          ErrorCode = "RULE_001"
	RuleInvalidType       ErrorCode = "RULE_002"
	RuleThresholdRequired ErrorCode = "RULE_003"
	RuleCategoryRequired  ErrorCode = "RULE_004"
)

// Alert history error codes (ALERT_*)
const (
	AlertNotFound ErrorCode = "ALERT_001"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidMonth  ErrorCode = "BUDGET_002"
	BudgetInvalidAmount ErrorCode = "BUDGET_003"
)

// Savings goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidTarget ErrorCode = "GOAL_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
)

// Recurring transaction error codes (RECURRING_*)
const (
	RecurringNotFound         ErrorCode = "RECURRING_001"
	RecurringInvalidFrequency ErrorCode = "RECURRING_002"
	RecurringInvalidSchedule  ErrorCode = "RECURRING_003"
)

// Import error codes (IMPORT_*)
const (
	ImportMissingFile       ErrorCode = "IMPORT_001"
	ImportUnsupportedFormat ErrorCode = "IMPORT_002"
	ImportParseFailed       ErrorCode = "IMPORT_003"
	ImportFileTooLarge      ErrorCode = "IMPORT_004"
)

// Report error codes (REPORT_*)
const (
	ReportGenerationFailed ErrorCode = "REPORT_001"
	ReportInvalidLimit     ErrorCode = "REPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemDuplicateRequest   ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidToken:           "Invalid or revoked authorization token",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidID:     "Invalid identifier format",

	// Alert rule errors
	RuleNotFound:          "Alert rule not found",
	RuleInvalidType:       "Invalid alert rule type",
	RuleThresholdRequired: "Threshold amount is required for this rule type",
	RuleCategoryRequired:  "Category is required for this rule type",

	// Alert errors
	AlertNotFound: "Alert not found",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidMonth:  "Budget month must use the YYYY-MM format",
	BudgetInvalidAmount: "Budget amount must be greater than zero",

	// Goal errors
	GoalNotFound:      "Savings goal not found",
	GoalInvalidTarget: "Savings goal target must be greater than zero",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionInvalidType:   "Invalid transaction type",

	// Recurring transaction errors
	RecurringNotFound:         "Recurring transaction not found",
	RecurringInvalidFrequency: "Frequency must be DAILY, WEEKLY, MONTHLY or YEARLY",
	RecurringInvalidSchedule:  "End date must not be before the start date",

	// Import errors
	ImportMissingFile:       "An import file is required",
	ImportUnsupportedFormat: "Unsupported import file format",
	ImportParseFailed:       "Import file could not be parsed",
	ImportFileTooLarge:      "Import file exceeds the maximum allowed size",

	// Report errors
	ReportGenerationFailed: "Report could not be generated",
	ReportInvalidLimit:     "Report limit must be between 1 and 50",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemDuplicateRequest:   "Duplicate request detected. Please wait before retrying",
	SystemRouteNotFound:      "The requested resource was not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
