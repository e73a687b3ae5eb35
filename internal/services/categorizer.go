package services

import (
	"strings"

	"fintrack/internal/models"
)

const fuzzyMatchThreshold = 0.7

type categorizer struct {
	merchantPatterns    []merchantPattern
	descriptionPatterns []descriptionPattern
}

type merchantPattern struct {
	pattern        string
	normalizedName string
	category       string
	confidence     float64
}

type descriptionPattern struct {
	keywords   []string
	category   string
	confidence float64
}

// NewCategorizer creates a CategorizerInterface backed by the built-in
// merchant and keyword tables
func NewCategorizer() CategorizerInterface {
	return &categorizer{
		merchantPatterns:    initMerchantPatterns(),
		descriptionPatterns: initDescriptionPatterns(),
	}
}

// CategorizeByMerchant categorizes based on merchant name. Patterns are tried
// in table order so overlapping names resolve the same way every time.
func (c *categorizer) CategorizeByMerchant(merchantName string) (string, float64) {
	if merchantName == "" {
		return models.CategoryOther, 0.0
	}

	normalized := normalizeForMatching(merchantName)
	for _, p := range c.merchantPatterns {
		if strings.Contains(normalized, normalizeForMatching(p.pattern)) {
			return p.category, p.confidence
		}
	}

	fuzzyMerchant, score := c.FuzzyMatchMerchant(merchantName)
	if fuzzyMerchant != "" {
		if p, ok := c.lookup(fuzzyMerchant); ok {
			return p.category, score * p.confidence
		}
	}

	return models.CategoryOther, 0.0
}

// CategorizeByDescription categorizes based on transaction description
func (c *categorizer) CategorizeByDescription(description string) (string, float64) {
	if description == "" {
		return models.CategoryOther, 0.0
	}

	for _, p := range c.descriptionPatterns {
		for _, keyword := range p.keywords {
			if containsIgnoreCase(description, keyword) {
				return p.category, p.confidence
			}
		}
	}

	return models.CategoryOther, 0.0
}

// FuzzyMatchMerchant returns the known merchant closest to input by edit
// distance, or "" when nothing scores above the threshold
func (c *categorizer) FuzzyMatchMerchant(input string) (string, float64) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", 0.0
	}

	var bestMatch string
	var bestScore float64
	for _, p := range c.merchantPatterns {
		score := calculateSimilarity(input, strings.ToLower(p.pattern))
		if score > bestScore && score > fuzzyMatchThreshold {
			bestScore = score
			bestMatch = p.pattern
		}
	}

	return bestMatch, bestScore
}

// CategorizeTransaction keeps a category the caller supplied and otherwise
// tries the merchant, then the description
func (c *categorizer) CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult {
	if transaction == nil {
		return fallbackCategorization()
	}

	if category := strings.TrimSpace(transaction.Category); category != "" {
		return &models.CategorizationResult{
			Category:   category,
			Method:     models.CategorizationMethodProvided,
			Confidence: 1.0,
		}
	}

	if transaction.MerchantName != "" {
		category, confidence := c.CategorizeByMerchant(transaction.MerchantName)
		if category != models.CategoryOther {
			return &models.CategorizationResult{
				Category:       category,
				Method:         models.CategorizationMethodMerchant,
				Confidence:     confidence,
				MatchedPattern: "Merchant:" + transaction.MerchantName,
			}
		}
	}

	if transaction.Description != "" {
		category, confidence := c.CategorizeByDescription(transaction.Description)
		if category == models.CategoryOther {
			category, confidence = c.CategorizeByMerchant(transaction.Description)
		}
		if category != models.CategoryOther {
			return &models.CategorizationResult{
				Category:       category,
				Method:         models.CategorizationMethodDescription,
				Confidence:     confidence,
				MatchedPattern: "Description",
			}
		}
	}

	return fallbackCategorization()
}

func (c *categorizer) lookup(pattern string) (merchantPattern, bool) {
	for _, p := range c.merchantPatterns {
		if p.pattern == pattern {
			return p, true
		}
	}
	return merchantPattern{}, false
}

func fallbackCategorization() *models.CategorizationResult {
	return &models.CategorizationResult{
		Category:   models.CategoryOther,
		Method:     models.CategorizationMethodFallback,
		Confidence: 0.0,
	}
}

func initMerchantPatterns() []merchantPattern {
	return []merchantPattern{
		// Groceries
		{pattern: "Walmart", normalizedName: "Walmart", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Kroger", normalizedName: "Kroger", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Safeway", normalizedName: "Safeway", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Whole Foods", normalizedName: "Whole Foods Market", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Trader Joe", normalizedName: "Trader Joes", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Costco", normalizedName: "Costco", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Aldi", normalizedName: "Aldi", category: models.CategoryGroceries, confidence: 0.95},

		// Dining
		{pattern: "Starbucks", normalizedName: "Starbucks", category: models.CategoryDining, confidence: 0.95},
		{pattern: "McDonald", normalizedName: "McDonalds", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Chipotle", normalizedName: "Chipotle", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Subway", normalizedName: "Subway", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Taco Bell", normalizedName: "Taco Bell", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Panera", normalizedName: "Panera Bread", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Dunkin", normalizedName: "Dunkin Donuts", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Pizza Hut", normalizedName: "Pizza Hut", category: models.CategoryDining, confidence: 0.95},

		// Transport
		{pattern: "Uber", normalizedName: "Uber", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Lyft", normalizedName: "Lyft", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Shell", normalizedName: "Shell", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Chevron", normalizedName: "Chevron", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Exxon", normalizedName: "ExxonMobil", category: models.CategoryTransportation, confidence: 0.95},

		// Entertainment
		{pattern: "Netflix", normalizedName: "Netflix", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "Spotify", normalizedName: "Spotify", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "AMC", normalizedName: "AMC Theaters", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "Hulu", normalizedName: "Hulu", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "Disney", normalizedName: "Disney Plus", category: models.CategoryEntertainment, confidence: 0.90},

		// Shopping
		{pattern: "Target", normalizedName: "Target", category: models.CategoryShopping, confidence: 0.90},
		{pattern: "Amazon", normalizedName: "Amazon", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "Best Buy", normalizedName: "Best Buy", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "Home Depot", normalizedName: "Home Depot", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "Ikea", normalizedName: "IKEA", category: models.CategoryShopping, confidence: 0.95},

		// Bills & Utilities
		{pattern: "AT&T", normalizedName: "AT&T", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "Verizon", normalizedName: "Verizon", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "T-Mobile", normalizedName: "T-Mobile", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "Comcast", normalizedName: "Comcast", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "PG&E", normalizedName: "Pacific Gas & Electric", category: models.CategoryBillsUtilities, confidence: 0.95},

		// Healthcare
		{pattern: "CVS", normalizedName: "CVS Pharmacy", category: models.CategoryHealthcare, confidence: 0.95},
		{pattern: "Walgreens", normalizedName: "Walgreens", category: models.CategoryHealthcare, confidence: 0.95},

		// Travel
		{pattern: "Delta", normalizedName: "Delta Air Lines", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "Southwest", normalizedName: "Southwest Airlines", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "Marriott", normalizedName: "Marriott", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "Hilton", normalizedName: "Hilton", category: models.CategoryTravel, confidence: 0.95},
	}
}

func initDescriptionPatterns() []descriptionPattern {
	return []descriptionPattern{
		{
			keywords:   []string{"Direct Deposit", "Salary", "Payroll", "Paycheck", "Wage", "Employer"},
			category:   models.CategoryIncome,
			confidence: 0.95,
		},
		{
			keywords:   []string{"Rent", "Electric", "Water Bill", "Internet", "Phone Bill", "Utility", "Insurance"},
			category:   models.CategoryBillsUtilities,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Grocery", "Supermarket", "Market"},
			category:   models.CategoryGroceries,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Restaurant", "Cafe", "Coffee", "Lunch", "Dinner"},
			category:   models.CategoryDining,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Gas Station", "Fuel", "Parking", "Transit", "Taxi"},
			category:   models.CategoryTransportation,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Pharmacy", "Doctor", "Dental", "Clinic", "Hospital"},
			category:   models.CategoryHealthcare,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Tuition", "Course", "Textbook"},
			category:   models.CategoryEducation,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Airline", "Hotel", "Flight"},
			category:   models.CategoryTravel,
			confidence: 0.80,
		},
	}
}

// calculateSimilarity scores two strings in [0,1] by Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// normalizeForMatching lowercases and strips separators
func normalizeForMatching(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "", "'", "", ".", "").Replace(s)
}
