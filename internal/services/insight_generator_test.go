package services

import (
	"testing"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func summaryWithRate(income, rate int64) models.FinancialSummary {
	return models.FinancialSummary{
		NetIncome:        decimal.NewFromInt(income),
		SavingsRate:      decimal.NewFromInt(rate),
		TransactionCount: 3,
	}
}

func overBudget(category string, amount, budget int64) models.CategoryAggregate {
	return models.CategoryAggregate{
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Budget:   decimal.NewFromInt(budget),
	}
}

func TestGenerateInsights_NoData(t *testing.T) {
	insights := GenerateInsights(models.FinancialSummary{}, nil)

	assert.Equal(t, []string{"Start adding transactions to get personalized financial insights."}, insights)
}

func TestGenerateInsights_SavingsRateBands(t *testing.T) {
	tests := []struct {
		name string
		rate int64
		want string
	}{
		{"excellent", 45, "Great job! Your savings rate of 45% is excellent."},
		{"good", 25, "Your savings rate of 25% is good. Consider increasing it to 30% or more."},
		{"boundary thirty is good", 30, "Your savings rate of 30% is good. Consider increasing it to 30% or more."},
		{"low", 10, "Your savings rate of 10% could be improved. Aim for at least 20%."},
		{"zero is low", 0, "Your savings rate of 0% could be improved. Aim for at least 20%."},
		{"negative", -10, insightOverspending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := GenerateInsights(summaryWithRate(1000, tt.rate), nil)
			assert.Equal(t, []string{tt.want}, insights)
		})
	}
}

func TestGenerateInsights_OverBudget(t *testing.T) {
	breakdown := []models.CategoryAggregate{
		overBudget("Food", 300, 1000),
		overBudget("Transport", 100, 50),
	}

	insights := GenerateInsights(models.FinancialSummary{TransactionCount: 2}, breakdown)

	assert.Equal(t, []string{
		"Transport is $50.00 (100%) over budget. Consider reducing spending in this category.",
	}, insights)
}

func TestGenerateInsights_CapsAtFour(t *testing.T) {
	breakdown := []models.CategoryAggregate{
		overBudget("A", 200, 100),
		overBudget("B", 200, 100),
		overBudget("C", 200, 100),
		overBudget("D", 200, 100),
		overBudget("E", 200, 100),
	}

	insights := GenerateInsights(summaryWithRate(1000, 35), breakdown)

	assert.Len(t, insights, MaxInsights)
	assert.Contains(t, insights[0], "savings rate of 35%")
	assert.Contains(t, insights[3], "C is $100.00")
}

func TestGenerateInsights_KeepTrackingFallback(t *testing.T) {
	summary := models.FinancialSummary{TotalExpenses: decimal.NewFromInt(10), TransactionCount: 1}

	insights := GenerateInsights(summary, []models.CategoryAggregate{overBudget("Food", 10, 1000)})

	assert.Equal(t, []string{insightKeepTracking}, insights)
}

func TestGenerateInsights_LengthBounds(t *testing.T) {
	for count := 0; count < 8; count++ {
		breakdown := make([]models.CategoryAggregate, 0, count)
		for i := 0; i < count; i++ {
			breakdown = append(breakdown, overBudget(string(rune('A'+i)), 150, 100))
		}
		for _, summary := range []models.FinancialSummary{{}, summaryWithRate(100, 5), {TransactionCount: 1}} {
			insights := GenerateInsights(summary, breakdown)
			assert.GreaterOrEqual(t, len(insights), 1)
			assert.LessOrEqual(t, len(insights), MaxInsights)
			assert.Equal(t, !summary.HasData(), insights[0] == insightNoData)
		}
	}
}
