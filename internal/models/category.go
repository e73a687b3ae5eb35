package models

// Suggested categories used when an imported or generated transaction carries
// none. Categories stay free-form: reports group by whatever string is stored.
const (
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transport"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryTravel         = "Travel"
	CategoryIncome         = "Income"
	CategoryOther          = DefaultCategory
)

const (
	CategorizationMethodProvided    = "PROVIDED"
	CategorizationMethodMerchant    = "MERCHANT"
	CategorizationMethodDescription = "DESCRIPTION"
	CategorizationMethodFallback    = "FALLBACK"
)

func SuggestedCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryIncome,
		CategoryOther,
	}
}

// CategorizationResult contains the result of transaction categorization
type CategorizationResult struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matchedPattern,omitempty"`
}
