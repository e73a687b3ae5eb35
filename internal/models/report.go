package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report range tokens
const (
	RangeLast7Days   = "last-7-days"
	RangeLast30Days  = "last-30-days"
	RangeLast3Months = "last-3-months"
	RangeLast6Months = "last-6-months"
	RangeLastYear    = "last-year"

	DefaultRange = RangeLast30Days
)

func RangeTokens() []string {
	return []string{RangeLast7Days, RangeLast30Days, RangeLast3Months, RangeLast6Months, RangeLastYear}
}

func IsValidRangeToken(token string) bool {
	for _, t := range RangeTokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Period is a closed date interval, Start <= End. A derived previous period
// ends where the current one starts and excludes that day.
type Period struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	EndExclusive bool      `json:"-"`
}

// Days is the length in whole calendar days between Start and End
func (p Period) Days() int {
	return int(dateOnly(p.End).Sub(dateOnly(p.Start)).Hours() / 24)
}

// Bounds returns the half-open instant range [from, to) covering the period
func (p Period) Bounds() (from, to time.Time) {
	from = dateOnly(p.Start)
	to = dateOnly(p.End)
	if !p.EndExclusive {
		to = to.AddDate(0, 0, 1)
	}
	return from, to
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type FinancialSummary struct {
	NetIncome         decimal.Decimal `json:"netIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetSavings        decimal.Decimal `json:"netSavings"`
	SavingsRate       decimal.Decimal `json:"savingsRate"`
	IncomeChange      decimal.Decimal `json:"incomeChange"`
	ExpensesChange    decimal.Decimal `json:"expensesChange"`
	SavingsChange     decimal.Decimal `json:"savingsChange"`
	SavingsRateChange decimal.Decimal `json:"savingsRateChange"`
	TransactionCount  int             `json:"transactionCount"`
}

// HasData is false when the current period had no transactions at all
func (s FinancialSummary) HasData() bool {
	return s.TransactionCount > 0
}

type CategoryAggregate struct {
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	Budget            decimal.Decimal `json:"budget"`
	Percentage        int             `json:"percentage"`
	BudgetUtilization decimal.Decimal `json:"budgetUtilization"`
	Color             string          `json:"color"`
}

func (c CategoryAggregate) IsOverBudget() bool {
	return c.Amount.GreaterThan(c.Budget)
}

// Overage is the amount spent above budget, zero when within budget
func (c CategoryAggregate) Overage() decimal.Decimal {
	if !c.IsOverBudget() {
		return decimal.Zero
	}
	return c.Amount.Sub(c.Budget)
}

type VendorAggregate struct {
	Vendor    string          `json:"vendor"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency int             `json:"frequency"`
	Category  string          `json:"category"`
}

type MonthlySummary struct {
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
	Target   decimal.Decimal `json:"target"`
}

type GoalProgress struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Current  decimal.Decimal `json:"current"`
	Target   decimal.Decimal `json:"target"`
	Progress int             `json:"progress"`
	Deadline *time.Time      `json:"deadline,omitempty"`
	Category string          `json:"category,omitempty"`
	Color    string          `json:"color"`
}

type FinancialReport struct {
	Range             string              `json:"range"`
	Period            Period              `json:"period"`
	Summary           FinancialSummary    `json:"summary"`
	MonthlyData       []MonthlySummary    `json:"monthlyData"`
	CategoryBreakdown []CategoryAggregate `json:"categoryBreakdown"`
	SavingsGoals      []GoalProgress      `json:"savingsGoals"`
	TopExpenses       []VendorAggregate   `json:"topExpenses"`
	Insights          []string            `json:"insights"`
	Degraded          bool                `json:"degraded"`
	GeneratedAt       time.Time           `json:"generatedAt"`
}
