package dto

import "fintrack/internal/models"

// ReportParams selects the report period. Unknown ranges fall back to the
// 30 day default instead of failing validation.
type ReportParams struct {
	Range string `query:"range"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

type SummaryResponse struct {
	Range   string                  `json:"range"`
	Period  models.Period           `json:"period"`
	Summary models.FinancialSummary `json:"summary"`
}

type CategoryBreakdownResponse struct {
	Range      string                     `json:"range"`
	Categories []models.CategoryAggregate `json:"categories"`
}

type TopExpensesResponse struct {
	Range    string                   `json:"range"`
	Expenses []models.VendorAggregate `json:"expenses"`
}

type InsightsResponse struct {
	Range    string   `json:"range"`
	Insights []string `json:"insights"`
}

type MonthlyResponse struct {
	Range  string                  `json:"range"`
	Months []models.MonthlySummary `json:"months"`
}
