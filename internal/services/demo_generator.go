package services

import (
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoMerchant struct {
	Name     string
	Category string
}

type demoGenerator struct {
	merchantPool []demoMerchant
	faker        *gofakeit.Faker
	employer     string
}

const (
	biWeeklyDays      = 14
	maxDailyPurchases = 4
	refundProbability = 0.05
	defaultDemoMonths = 3
	billDayUpperBound = 28
)

type DemoGeneratorOption func(*demoGenerator)

// WithDemoSeed makes the generated history reproducible
func WithDemoSeed(seed uint64) DemoGeneratorOption {
	return func(g *demoGenerator) {
		g.faker = gofakeit.New(seed)
	}
}

// NewDemoGenerator creates a generator seeded from the clock unless
// WithDemoSeed is given
func NewDemoGenerator(opts ...DemoGeneratorOption) DemoGeneratorInterface {
	g := &demoGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(uint64(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.employer = g.faker.Company()
	return g
}

func initializeMerchantPool() []demoMerchant {
	return []demoMerchant{
		// Groceries
		{"Walmart Supercenter", models.CategoryGroceries},
		{"Kroger", models.CategoryGroceries},
		{"Whole Foods Market", models.CategoryGroceries},
		{"Safeway", models.CategoryGroceries},
		{"Trader Joe's", models.CategoryGroceries},
		{"Costco Wholesale", models.CategoryGroceries},
		{"Aldi", models.CategoryGroceries},

		// Dining
		{"Starbucks", models.CategoryDining},
		{"McDonald's", models.CategoryDining},
		{"Chipotle Mexican Grill", models.CategoryDining},
		{"Subway", models.CategoryDining},
		{"Panera Bread", models.CategoryDining},
		{"Chick-fil-A", models.CategoryDining},
		{"Olive Garden", models.CategoryDining},
		{"Pizza Hut", models.CategoryDining},

		// Transport
		{"Uber", models.CategoryTransportation},
		{"Lyft", models.CategoryTransportation},
		{"Shell", models.CategoryTransportation},
		{"Chevron", models.CategoryTransportation},
		{"Amtrak", models.CategoryTransportation},

		// Shopping
		{"Amazon.com", models.CategoryShopping},
		{"Best Buy", models.CategoryShopping},
		{"Home Depot", models.CategoryShopping},
		{"Target", models.CategoryShopping},
		{"Nike", models.CategoryShopping},
		{"IKEA", models.CategoryShopping},

		// Entertainment
		{"Netflix", models.CategoryEntertainment},
		{"Spotify", models.CategoryEntertainment},
		{"AMC Theaters", models.CategoryEntertainment},
		{"PlayStation Network", models.CategoryEntertainment},

		// Healthcare
		{"CVS Pharmacy", models.CategoryHealthcare},
		{"Walgreens", models.CategoryHealthcare},
		{"Quest Diagnostics", models.CategoryHealthcare},

		// Travel
		{"Delta Air Lines", models.CategoryTravel},
		{"Marriott Hotels", models.CategoryTravel},

		// Education
		{"Udemy", models.CategoryEducation},
		{"Coursera", models.CategoryEducation},
	}
}

// GenerateHistory returns the given number of months of salary, bills and
// daily purchases ending at end, oldest first
func (g *demoGenerator) GenerateHistory(userID uuid.UUID, end time.Time, months int) []models.Transaction {
	if months <= 0 {
		months = defaultDemoMonths
	}
	end = calendarDate(end)
	start := end.AddDate(0, -months, 0)

	history := g.GenerateSalary(userID, start, end)
	history = append(history, g.GenerateBills(userID, start, end)...)
	history = append(history, g.GenerateDailyPurchases(userID, start, end)...)

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].TransactionDate.Before(history[j].TransactionDate)
	})
	return history
}

// GenerateSalary generates bi-weekly salary deposits
func (g *demoGenerator) GenerateSalary(userID uuid.UUID, start, end time.Time) []models.Transaction {
	salaryAmounts := []float64{2500.00, 3000.00, 3500.00, 4000.00, 4500.00}
	salary := decimal.NewFromFloat(salaryAmounts[g.faker.IntRange(0, len(salaryAmounts)-1)])

	transactions := make([]models.Transaction, 0)
	for date := start.AddDate(0, 0, biWeeklyDays); !date.After(end); date = date.AddDate(0, 0, biWeeklyDays) {
		transactions = append(transactions, g.transaction(userID, date, salary,
			models.TransactionTypeIncome, models.CategoryIncome, "Direct Deposit - Salary Payment", g.employer))
	}
	return transactions
}

// GenerateBills generates one payment per utility per month on a random day
func (g *demoGenerator) GenerateBills(userID uuid.UUID, start, end time.Time) []models.Transaction {
	billers := []string{"Electric Company", "Internet Provider", "Water Department", "Phone Bill"}

	transactions := make([]models.Transaction, 0)
	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
		for _, biller := range billers {
			date := month.AddDate(0, 0, g.faker.IntRange(0, billDayUpperBound-1))
			if date.Before(start) || date.After(end) {
				continue
			}
			transactions = append(transactions, g.transaction(userID, date, g.GenerateAmount(models.CategoryBillsUtilities),
				models.TransactionTypeExpense, models.CategoryBillsUtilities, "Bill Payment - "+biller, biller))
		}
	}
	return transactions
}

// GenerateDailyPurchases generates one to four purchases per day with an
// occasional refund
func (g *demoGenerator) GenerateDailyPurchases(userID uuid.UUID, start, end time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0)
	for date := start; date.Before(end); date = date.AddDate(0, 0, 1) {
		purchases := g.faker.IntRange(1, maxDailyPurchases)
		for i := 0; i < purchases; i++ {
			merchant := g.merchantPool[g.faker.IntRange(0, len(g.merchantPool)-1)]
			amount := g.GenerateAmount(merchant.Category)

			if g.faker.Float64Range(0, 1) < refundProbability {
				transactions = append(transactions, g.transaction(userID, date, amount,
					models.TransactionTypeIncome, merchant.Category, "Refund - "+merchant.Name, merchant.Name))
				continue
			}
			transactions = append(transactions, g.transaction(userID, date, amount,
				models.TransactionTypeExpense, merchant.Category, "Purchase at "+merchant.Name, merchant.Name))
		}
	}
	return transactions
}

// GenerateAmount generates a realistic amount based on category
func (g *demoGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := getAmountRange(category)
	return decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2)
}

func getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryGroceries:      {15.00, 250.00},
		models.CategoryDining:         {8.00, 120.00},
		models.CategoryTransportation: {10.00, 80.00},
		models.CategoryShopping:       {25.00, 450.00},
		models.CategoryEntertainment:  {10.00, 60.00},
		models.CategoryBillsUtilities: {50.00, 250.00},
		models.CategoryHealthcare:     {20.00, 300.00},
		models.CategoryTravel:         {100.00, 800.00},
		models.CategoryEducation:      {30.00, 200.00},
		models.CategoryIncome:         {2000.00, 8000.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

func (g *demoGenerator) transaction(userID uuid.UUID, date time.Time, amount decimal.Decimal, txType, category, description, merchant string) models.Transaction {
	return models.Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		Amount:          amount,
		Type:            txType,
		Category:        category,
		Description:     description,
		MerchantName:    merchant,
		TransactionDate: date,
		Source:          models.TransactionSourceDemo,
	}
}
