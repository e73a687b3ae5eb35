package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"fintrack/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	moneyPattern      = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)
	budgetMonthFormat = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("money_nonneg", validateNonNegativeMoney)
	_ = v.RegisterValidation("rule_type", validateRuleType)
	_ = v.RegisterValidation("txn_type", validateTransactionType)
	_ = v.RegisterValidation("budget_month", validateBudgetMonth)
	_ = v.RegisterValidation("frequency", validateFrequency)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate runs struct validation with the registered rules
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// validateMoney accepts a positive amount with at most 2 decimal places
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := parseMoney(fl.Field().String())
	return ok && d.IsPositive()
}

func validateNonNegativeMoney(fl validator.FieldLevel) bool {
	d, ok := parseMoney(fl.Field().String())
	return ok && !d.IsNegative()
}

func parseMoney(raw string) (decimal.Decimal, bool) {
	if !moneyPattern.MatchString(raw) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func validateRuleType(fl validator.FieldLevel) bool {
	return models.IsValidRuleType(strings.ToUpper(fl.Field().String()))
}

// validateTransactionType accepts INCOME/EXPENSE and the CREDIT/DEBIT spellings
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(models.CanonicalType(fl.Field().String()))
}

func validateBudgetMonth(fl validator.FieldLevel) bool {
	return budgetMonthFormat.MatchString(fl.Field().String())
}

func validateFrequency(fl validator.FieldLevel) bool {
	return models.IsValidFrequency(models.Frequency(strings.ToUpper(fl.Field().String())))
}
