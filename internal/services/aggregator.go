package services

import (
	"sort"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	categoryPalette = []string{"#3b82f6", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981", "#ef4444", "#6b7280"}
	goalPalette     = []string{"#10b981", "#3b82f6", "#f59e0b", "#8b5cf6"}
)

// TotalByType sums the amounts of transactions whose canonical type matches
// txType. Order independent; an empty list sums to zero.
func TotalByType(transactions []models.Transaction, txType string) decimal.Decimal {
	txType = models.CanonicalType(txType)
	total := decimal.Zero
	for i := range transactions {
		if kind, amount := classify(&transactions[i]); kind == txType {
			total = total.Add(amount)
		}
	}
	return total
}

// classify returns the canonical type and amount of t. An untyped row takes
// its type from the sign and counts its absolute amount, as Normalize would
// have stored it.
func classify(t *models.Transaction) (string, decimal.Decimal) {
	if strings.TrimSpace(t.Type) == "" {
		return models.InferType(t.Amount), t.Amount.Abs()
	}
	return models.CanonicalType(t.Type), t.Amount
}

// SavingsRate is savings as a percentage of income at 4 decimal places,
// 0 when there is no income
func SavingsRate(savings, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return savings.Mul(hundred).DivRound(income, 4)
}

// PercentageChange is the relative change from previous to current at 4
// decimal places. A zero base yields 0 whatever current is.
func PercentageChange(previous, current decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Mul(hundred).DivRound(previous, 4)
}

// Summarize compares the current period with the previous one
func Summarize(current, previous []models.Transaction) models.FinancialSummary {
	income := TotalByType(current, models.TransactionTypeIncome)
	expenses := TotalByType(current, models.TransactionTypeExpense)
	savings := income.Sub(expenses)
	rate := SavingsRate(savings, income)

	prevIncome := TotalByType(previous, models.TransactionTypeIncome)
	prevExpenses := TotalByType(previous, models.TransactionTypeExpense)
	prevSavings := prevIncome.Sub(prevExpenses)
	prevRate := SavingsRate(prevSavings, prevIncome)

	return models.FinancialSummary{
		NetIncome:         income,
		TotalExpenses:     expenses,
		NetSavings:        savings,
		SavingsRate:       rate,
		IncomeChange:      PercentageChange(prevIncome, income),
		ExpensesChange:    PercentageChange(prevExpenses, expenses),
		SavingsChange:     PercentageChange(prevSavings, savings),
		SavingsRateChange: rate.Sub(prevRate),
		TransactionCount:  len(current),
	}
}

// CategoryBreakdown groups expenses by category, largest total first. Equal
// totals keep the order in which their categories were first seen. budgetFor
// is called once per category.
func CategoryBreakdown(transactions []models.Transaction, budgetFor func(category string) decimal.Decimal) []models.CategoryAggregate {
	index := make(map[string]int)
	breakdown := make([]models.CategoryAggregate, 0)
	totalExpenses := decimal.Zero

	for i := range transactions {
		t := &transactions[i]
		if kind, _ := classify(t); kind != models.TransactionTypeExpense {
			continue
		}
		amount := t.Amount.Abs()
		totalExpenses = totalExpenses.Add(amount)

		pos, ok := index[t.Category]
		if !ok {
			pos = len(breakdown)
			index[t.Category] = pos
			breakdown = append(breakdown, models.CategoryAggregate{Category: t.Category, Amount: decimal.Zero})
		}
		breakdown[pos].Amount = breakdown[pos].Amount.Add(amount)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	for i := range breakdown {
		agg := &breakdown[i]
		agg.Budget = budgetFor(agg.Category)
		agg.Percentage = percentOf(agg.Amount, totalExpenses)
		if agg.Budget.IsPositive() {
			agg.BudgetUtilization = agg.Amount.Mul(hundred).DivRound(agg.Budget, 2)
		} else {
			agg.BudgetUtilization = decimal.Zero
		}
		agg.Color = categoryPalette[i%len(categoryPalette)]
	}

	return breakdown
}

// TopExpenses ranks expense vendors by total spend. Vendors are matched
// exactly; the category is the one on the vendor's first transaction. Ties
// keep first-occurrence order.
func TopExpenses(transactions []models.Transaction, limit int) []models.VendorAggregate {
	index := make(map[string]int)
	vendors := make([]models.VendorAggregate, 0)

	for i := range transactions {
		t := &transactions[i]
		if kind, _ := classify(t); kind != models.TransactionTypeExpense {
			continue
		}
		key := t.Vendor()
		pos, ok := index[key]
		if !ok {
			pos = len(vendors)
			index[key] = pos
			vendors = append(vendors, models.VendorAggregate{Vendor: key, Amount: decimal.Zero, Category: t.Category})
		}
		vendors[pos].Amount = vendors[pos].Amount.Add(t.Amount.Abs())
		vendors[pos].Frequency++
	}

	sort.SliceStable(vendors, func(i, j int) bool {
		return vendors[i].Amount.GreaterThan(vendors[j].Amount)
	})

	if limit >= 0 && len(vendors) > limit {
		vendors = vendors[:limit]
	}
	return vendors
}

// MonthlyBreakdown groups transactions by calendar month, oldest first
func MonthlyBreakdown(transactions []models.Transaction, target decimal.Decimal) []models.MonthlySummary {
	type monthKey struct {
		year  int
		month time.Month
	}

	groups := make(map[monthKey][]models.Transaction)
	keys := make([]monthKey, 0)
	for i := range transactions {
		d := transactions[i].TransactionDate
		key := monthKey{year: d.Year(), month: d.Month()}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], transactions[i])
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	months := make([]models.MonthlySummary, 0, len(keys))
	for _, key := range keys {
		income := TotalByType(groups[key], models.TransactionTypeIncome)
		expenses := TotalByType(groups[key], models.TransactionTypeExpense)
		months = append(months, models.MonthlySummary{
			Month:    key.month.String()[:3],
			Year:     key.year,
			Income:   income,
			Expenses: expenses,
			Savings:  income.Sub(expenses),
			Target:   target,
		})
	}
	return months
}

// GoalProgressList presents goals in stored order with a cycled palette
func GoalProgressList(goals []models.SavingsGoal) []models.GoalProgress {
	out := make([]models.GoalProgress, 0, len(goals))
	for i := range goals {
		g := &goals[i]
		out = append(out, models.GoalProgress{
			ID:       g.ID.String(),
			Name:     g.Name,
			Current:  g.CurrentAmount,
			Target:   g.TargetAmount,
			Progress: g.Progress(),
			Deadline: g.Deadline,
			Category: g.Category,
			Color:    goalPalette[i%len(goalPalette)],
		})
	}
	return out
}

// percentOf is part/total as a whole percentage, half-up; 0 for a zero total
func percentOf(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Mul(hundred).DivRound(total, 0).IntPart())
}
