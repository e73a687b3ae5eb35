package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Amount  string `json:"amount" validate:"required,money"`
	Balance string `json:"currentAmount" validate:"omitempty,money_nonneg"`
	Type    string `json:"type" validate:"required,txn_type"`
	Rule    string `json:"ruleType" validate:"omitempty,rule_type"`
	Month   string `json:"month" validate:"omitempty,budget_month"`
	Every   string `json:"frequency" validate:"omitempty,frequency"`
	Hidden  string `json:"-" validate:"omitempty,max=1"`
}

func valid() sample {
	return sample{Amount: "12.50", Type: "EXPENSE"}
}

func fieldErrors(t *testing.T, err error) []string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

func TestValidator_Money(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		amount string
		ok     bool
	}{
		{"1", true},
		{"0.01", true},
		{"1000000.99", true},
		{"0", false},
		{"0.00", false},
		{"-5", false},
		{"1.005", false},
		{"1,00", false},
		{"abc", false},
		{".5", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			s := valid()
			s.Amount = tt.amount
			err := v.Validate(s)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{"amount"}, fieldErrors(t, err))
		})
	}
}

func TestValidator_NonNegativeMoney(t *testing.T) {
	v := NewValidator()

	s := valid()
	s.Balance = "0"
	assert.NoError(t, v.Validate(s))

	s.Balance = "-0.01"
	assert.Equal(t, []string{"currentAmount"}, fieldErrors(t, v.Validate(s)))
}

func TestValidator_TransactionType(t *testing.T) {
	v := NewValidator()

	for _, txType := range []string{"INCOME", "EXPENSE", "CREDIT", "DEBIT", "debit"} {
		s := valid()
		s.Type = txType
		assert.NoError(t, v.Validate(s), txType)
	}

	s := valid()
	s.Type = "TRANSFER"
	assert.Equal(t, []string{"type"}, fieldErrors(t, v.Validate(s)))
}

func TestValidator_RuleType(t *testing.T) {
	v := NewValidator()

	s := valid()
	s.Rule = "high_amount"
	assert.NoError(t, v.Validate(s))

	s.Rule = "SOMETHING_ELSE"
	assert.Equal(t, []string{"ruleType"}, fieldErrors(t, v.Validate(s)))
}

func TestValidator_BudgetMonth(t *testing.T) {
	v := NewValidator()

	for month, ok := range map[string]bool{
		"2024-01": true,
		"2024-12": true,
		"2024-13": false,
		"2024-00": false,
		"2024-3":  false,
		"24-03":   false,
	} {
		s := valid()
		s.Month = month
		if ok {
			assert.NoError(t, v.Validate(s), month)
		} else {
			assert.Equal(t, []string{"month"}, fieldErrors(t, v.Validate(s)), month)
		}
	}
}

func TestValidator_Frequency(t *testing.T) {
	v := NewValidator()

	for _, every := range []string{"DAILY", "weekly", "Monthly", "YEARLY"} {
		s := valid()
		s.Every = every
		assert.NoError(t, v.Validate(s), every)
	}

	s := valid()
	s.Every = "BIWEEKLY"
	assert.Equal(t, []string{"frequency"}, fieldErrors(t, v.Validate(s)))
}

func TestValidator_DashTagFallsBackToFieldName(t *testing.T) {
	s := valid()
	s.Hidden = "too long"

	assert.Equal(t, []string{"Hidden"}, fieldErrors(t, NewValidator().Validate(s)))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
