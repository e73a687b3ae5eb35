package services

import (
	"fmt"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

const MaxInsights = 4

const (
	insightNoData        = "Start adding transactions to get personalized financial insights."
	insightKeepTracking  = "Keep tracking your expenses to get personalized insights."
	insightOverspending  = "You're spending more than you earn. Review your expenses to improve your financial health."
	insightRateExcellent = "Great job! Your savings rate of %d%% is excellent."
	insightRateGood      = "Your savings rate of %d%% is good. Consider increasing it to 30%% or more."
	insightRateLow       = "Your savings rate of %d%% could be improved. Aim for at least 20%%."
	insightOverBudget    = "%s is $%s (%d%%) over budget. Consider reducing spending in this category."
)

var (
	excellentRate = decimal.NewFromInt(30)
	goodRate      = decimal.NewFromInt(20)
)

// GenerateInsights turns a summary and its category breakdown into at most
// MaxInsights observations. The result is never empty.
func GenerateInsights(summary models.FinancialSummary, breakdown []models.CategoryAggregate) []string {
	if !summary.HasData() {
		return []string{insightNoData}
	}

	insights := make([]string, 0, MaxInsights)

	if summary.NetIncome.IsPositive() {
		insights = append(insights, savingsRateInsight(summary.SavingsRate))
	}

	for _, category := range breakdown {
		if len(insights) >= MaxInsights {
			break
		}
		if !category.IsOverBudget() {
			continue
		}
		overage := category.Overage()
		insights = append(insights, fmt.Sprintf(insightOverBudget,
			category.Category, overage.StringFixed(2), percentOf(overage, category.Budget)))
	}

	if len(insights) == 0 {
		insights = append(insights, insightKeepTracking)
	}

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}

// savingsRateInsight picks the first matching band from the top
func savingsRateInsight(rate decimal.Decimal) string {
	whole := rate.IntPart()
	switch {
	case rate.GreaterThan(excellentRate):
		return fmt.Sprintf(insightRateExcellent, whole)
	case rate.GreaterThan(goodRate):
		return fmt.Sprintf(insightRateGood, whole)
	case !rate.IsNegative():
		return fmt.Sprintf(insightRateLow, whole)
	default:
		return insightOverspending
	}
}
