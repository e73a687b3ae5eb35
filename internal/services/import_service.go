package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ImportFormatCSV = "csv"
	ImportFormatOFX = "ofx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported import format")
	ErrImportParse       = errors.New("failed to parse import file")
)

var (
	csvDateLayouts = []string{
		"2006-01-02",
		"01/02/2006",
		"02/01/2006",
		"2006/01/02",
		"1/2/2006",
		"2/1/2006",
	}

	csvColumnAliases = map[string][]string{
		"date":        {"date", "transaction_date", "txn_date"},
		"description": {"description", "desc", "merchant", "name"},
		"amount":      {"amount", "value", "price", "total"},
		"category":    {"category", "class"},
		"type":        {"type", "transaction_type", "txn_type"},
		"merchant":    {"merchant_name", "merchant", "vendor"},
		"notes":       {"notes", "memo", "comment"},
	}

	amountCleaner = regexp.MustCompile(`[^0-9.\-]`)
)

type importService struct {
	recorder        TransactionServiceInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	events          EventLoggerInterface
	now             func() time.Time
}

func NewImportService(
	recorder TransactionServiceInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
) ImportServiceInterface {
	return &importService{
		recorder:        recorder,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		events:          events,
		now:             time.Now,
	}
}

// NormalizeImportFormat maps a format name or file extension to csv or ofx
func NormalizeImportFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), ".")) {
	case "csv", "":
		return ImportFormatCSV, nil
	case "ofx", "qfx":
		return ImportFormatOFX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Import reads rows sequentially and stores each through the transaction
// service. Bad rows are reported in the result and skipped. Cancellation is
// checked between rows.
func (s *importService) Import(ctx context.Context, userID uuid.UUID, r io.Reader, format string) (*models.ImportResult, error) {
	start := time.Now()

	format, err := NormalizeImportFormat(format)
	if err != nil {
		return nil, err
	}

	var result *models.ImportResult
	switch format {
	case ImportFormatOFX:
		result, err = s.importOFX(ctx, userID, r)
	default:
		result, err = s.importCSV(ctx, userID, r)
	}
	if err != nil {
		return result, err
	}

	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime("import."+format, elapsed)
	s.events.LogImportCompleted(ctx, userID, format, result, elapsed.Milliseconds())

	return result, nil
}

func (s *importService) importCSV(ctx context.Context, userID uuid.UUID, r io.Reader) (*models.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return models.NewImportResult(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}
	columns := mapColumns(header)

	result := models.NewImportResult()
	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		result.TotalRows++
		if err != nil {
			s.rowFailed(result, ImportFormatCSV, row, err.Error())
			continue
		}

		transaction, err := s.csvTransaction(userID, columns, record)
		if err != nil {
			s.rowFailed(result, ImportFormatCSV, row, err.Error())
			continue
		}
		s.store(ctx, result, ImportFormatCSV, row, transaction)
	}

	return result, nil
}

func (s *importService) csvTransaction(userID uuid.UUID, columns map[string]int, record []string) (*models.Transaction, error) {
	get := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date, err := s.parseCSVDate(get("date"))
	if err != nil {
		return nil, err
	}
	amount, err := parseCSVAmount(get("amount"))
	if err != nil {
		return nil, err
	}

	description := get("description")
	if description == "" {
		description = "Unknown"
	}

	txType := models.TransactionTypeExpense
	if strings.EqualFold(get("type"), models.TransactionTypeIncome) {
		txType = models.TransactionTypeIncome
	}

	return &models.Transaction{
		UserID:          userID,
		Amount:          amount,
		Type:            txType,
		Category:        get("category"),
		Description:     description,
		MerchantName:    get("merchant"),
		Notes:           get("notes"),
		TransactionDate: date,
		Source:          models.TransactionSourceCSV,
	}, nil
}

func (s *importService) parseCSVDate(value string) (time.Time, error) {
	if value == "" {
		return calendarDate(s.now()), nil
	}
	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", value)
}

// parseCSVAmount drops currency symbols and separators and keeps the
// absolute value
func parseCSVAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, errors.New("amount is required")
	}
	amount, err := decimal.NewFromString(amountCleaner.ReplaceAllString(value, ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", value)
	}
	return amount.Abs().Round(2), nil
}

// mapColumns resolves each field to the first alias present in the header,
// ignoring case
func mapColumns(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	columns := make(map[string]int, len(csvColumnAliases))
	for field, aliases := range csvColumnAliases {
		for _, alias := range aliases {
			if i, ok := index[alias]; ok {
				columns[field] = i
				break
			}
		}
	}
	return columns
}

func (s *importService) importOFX(ctx context.Context, userID uuid.UUID, r io.Reader) (*models.ImportResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(bytes.NewReader(bytes.TrimLeft(content, " \t\r\n")))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	var statementTxns []ofxgo.Transaction
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			statementTxns = append(statementTxns, stmt.BankTranList.Transactions...)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			statementTxns = append(statementTxns, stmt.BankTranList.Transactions...)
		}
	}

	result := models.NewImportResult()
	for i := range statementTxns {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		row := i + 1
		result.TotalRows++

		ofxTxn := &statementTxns[i]
		externalID := string(ofxTxn.FiTID)
		if externalID != "" {
			exists, err := s.transactionRepo.ExistsByExternalID(ctx, userID, externalID)
			if err != nil {
				s.rowFailed(result, ImportFormatOFX, row, err.Error())
				continue
			}
			if exists {
				s.rowFailed(result, ImportFormatOFX, row, "already imported: "+externalID)
				continue
			}
		}

		transaction, err := ofxTransaction(userID, ofxTxn)
		if err != nil {
			s.rowFailed(result, ImportFormatOFX, row, err.Error())
			continue
		}
		s.store(ctx, result, ImportFormatOFX, row, transaction)
	}

	return result, nil
}

func ofxTransaction(userID uuid.UUID, txn *ofxgo.Transaction) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(txn.TrnAmt.FloatString(2))
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %v", err)
	}

	description := strings.TrimSpace(string(txn.Name))
	if description == "" {
		description = strings.TrimSpace(string(txn.Memo))
	}
	merchant := ""
	if txn.Payee != nil {
		merchant = strings.TrimSpace(string(txn.Payee.Name))
	}

	y, m, d := txn.DtPosted.Time.Date()

	return &models.Transaction{
		UserID:          userID,
		Amount:          amount.Abs(),
		Type:            models.InferType(amount),
		Description:     description,
		MerchantName:    merchant,
		Notes:           strings.TrimSpace(string(txn.Memo)),
		TransactionDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Source:          models.TransactionSourceOFX,
		ExternalID:      string(txn.FiTID),
	}, nil
}

func (s *importService) store(ctx context.Context, result *models.ImportResult, format string, row int, transaction *models.Transaction) {
	if err := s.recorder.Record(ctx, transaction); err != nil {
		s.rowFailed(result, format, row, err.Error())
		return
	}
	result.AddSuccess()
	s.metrics.IncrementCounter("import.row", map[string]string{
		"format": format,
		"status": "success",
	})
}

func (s *importService) rowFailed(result *models.ImportResult, format string, row int, msg string) {
	result.AddError(row, msg)
	s.metrics.IncrementCounter("import.row", map[string]string{
		"format": format,
		"status": "failed",
	})
}
