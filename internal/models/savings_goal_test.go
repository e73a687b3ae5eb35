package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSavingsGoal_Progress(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    int
	}{
		{name: "half way", current: "500", target: "1000", want: 50},
		{name: "rounds half up at two places", current: "1", target: "8", want: 13},
		{name: "over target", current: "1500", target: "1000", want: 150},
		{name: "zero target", current: "10", target: "0", want: 0},
		{name: "nothing saved", current: "0", target: "1000", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := SavingsGoal{
				CurrentAmount: decimal.RequireFromString(tt.current),
				TargetAmount:  decimal.RequireFromString(tt.target),
			}
			assert.Equal(t, tt.want, goal.Progress())
		})
	}
}

func TestBudget_ValidateAndLifecycle(t *testing.T) {
	budget := Budget{
		UserID:   uuid.New(),
		Category: "Food",
		Amount:   decimal.NewFromInt(400),
		Month:    "2024-03",
		State:    BudgetStateActive,
	}
	assert.NoError(t, budget.Validate())

	budget.Month = "03/2024"
	assert.ErrorIs(t, budget.Validate(), ErrInvalidBudgetMonth)

	budget.Month = "2024-03"
	budget.Amount = decimal.Zero
	assert.ErrorIs(t, budget.Validate(), ErrInvalidBudgetAmount)

	assert.True(t, budget.Deactivate())
	assert.False(t, budget.IsActive())
	assert.False(t, budget.Deactivate())

	assert.Equal(t, "2024-03", MonthOf(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)))
}

func TestPeriod_Days(t *testing.T) {
	p := Period{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 30, p.Days())
}

func TestImportResult_AddError(t *testing.T) {
	result := NewImportResult()
	result.AddSuccess()
	result.AddError(2, "invalid amount")

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, []string{"Row 2: invalid amount"}, result.Errors)
}
