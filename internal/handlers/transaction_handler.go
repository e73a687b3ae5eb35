package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultMaxUploadBytes int64 = 10 << 20

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	importService      services.ImportServiceInterface
	maxUploadBytes     int64
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	importService services.ImportServiceInterface,
	maxUploadBytes int64,
) *TransactionHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &TransactionHandler{
		transactionService: transactionService,
		importService:      importService,
		maxUploadBytes:     maxUploadBytes,
	}
}

// CreateTransaction records a single transaction for the authenticated user
// @Summary Create a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or TRANSACTION_002"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMoney), errors.Is(err, models.ErrInvalidAmount):
			return SendError(c, apierrors.TransactionInvalidAmount, apierrors.WithDetails(err.Error()))
		case errors.Is(err, models.ErrInvalidTransactionType):
			return SendError(c, apierrors.TransactionInvalidType, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrInvalidTransactionDate):
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// ListTransactions retrieves the caller's transactions, newest first
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Filter by start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter by end date (YYYY-MM-DD), inclusive"
// @Param type query string false "Filter by transaction type" Enums(INCOME, EXPENSE, CREDIT, DEBIT)
// @Param category query string false "Filter by category"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var filters dto.TransactionFilters
	var page dto.PaginationParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filters); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid pagination parameters"))
	}

	if err := c.Validate(filters); err != nil {
		return err
	}

	response, err := h.transactionService.ListTransactions(c.Request().Context(), userID, filters, page)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransactionDate) {
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// ImportTransactions bulk-loads a CSV or OFX/QFX statement
// @Summary Import transactions
// @Description Upload a CSV or OFX/QFX file as multipart field "file". Bad rows are skipped and reported.
// @Tags Transactions
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement file"
// @Param format query string false "csv, ofx or qfx; defaults to the file extension"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 - Missing file"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_004 - File too large"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_002 or IMPORT_003"
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, apierrors.ImportMissingFile)
	}
	if fileHeader.Size > h.maxUploadBytes {
		return SendError(c, apierrors.ImportFileTooLarge)
	}

	format := c.QueryParam("format")
	if format == "" {
		format = filepath.Ext(fileHeader.Filename)
	}
	format, err = services.NormalizeImportFormat(format)
	if err != nil {
		return SendError(c, apierrors.ImportUnsupportedFormat, apierrors.WithDetails(err.Error()))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	result, err := h.importService.Import(c.Request().Context(), userID, file, format)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrImportParse):
			return SendError(c, apierrors.ImportParseFailed, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrUnsupportedFormat):
			return SendError(c, apierrors.ImportUnsupportedFormat, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ImportResponse{Format: format, ImportResult: result})
}
