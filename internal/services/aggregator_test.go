package services

import (
	"math/rand"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AggregatorTestSuite struct {
	suite.Suite
	userID uuid.UUID
	date   time.Time
}

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}

func (s *AggregatorTestSuite) SetupTest() {
	s.userID = uuid.New()
	s.date = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func (s *AggregatorTestSuite) txn(txType string, amount int64, category, vendor string) models.Transaction {
	return models.Transaction{
		ID:              uuid.New(),
		UserID:          s.userID,
		Type:            txType,
		Amount:          decimal.NewFromInt(amount),
		Category:        category,
		Description:     vendor,
		TransactionDate: s.date,
	}
}

func fixedBudgets(budgets map[string]int64, fallback int64) func(string) decimal.Decimal {
	return func(category string) decimal.Decimal {
		if amount, ok := budgets[category]; ok {
			return decimal.NewFromInt(amount)
		}
		return decimal.NewFromInt(fallback)
	}
}

func (s *AggregatorTestSuite) TestSummarize_EmptyPreviousPeriod() {
	current := []models.Transaction{
		s.txn(models.TransactionTypeIncome, 1000, "Salary", "ACME"),
		s.txn(models.TransactionTypeExpense, 300, "Food", "Market"),
		s.txn(models.TransactionTypeExpense, 200, "Food", "Market"),
	}

	summary := Summarize(current, nil)

	s.Equal("1000.00", summary.NetIncome.StringFixed(2))
	s.Equal("500.00", summary.TotalExpenses.StringFixed(2))
	s.Equal("500.00", summary.NetSavings.StringFixed(2))
	s.Equal("50.0000", summary.SavingsRate.StringFixed(4))
	s.True(summary.IncomeChange.IsZero())
	s.True(summary.ExpensesChange.IsZero())
	s.True(summary.SavingsChange.IsZero())
	s.Equal("50.0000", summary.SavingsRateChange.StringFixed(4))
	s.Equal(3, summary.TransactionCount)
}

func (s *AggregatorTestSuite) TestSummarize_ComparesWithPreviousPeriod() {
	current := []models.Transaction{
		s.txn(models.TransactionTypeIncome, 2000, "Salary", "ACME"),
		s.txn(models.TransactionTypeExpense, 1500, "Rent", "Landlord"),
	}
	previous := []models.Transaction{
		s.txn(models.TransactionTypeIncome, 1000, "Salary", "ACME"),
		s.txn(models.TransactionTypeExpense, 500, "Rent", "Landlord"),
	}

	summary := Summarize(current, previous)

	s.Equal("100.0000", summary.IncomeChange.StringFixed(4))
	s.Equal("200.0000", summary.ExpensesChange.StringFixed(4))
	s.Equal("0.0000", summary.SavingsChange.StringFixed(4))
	s.Equal("25.0000", summary.SavingsRate.StringFixed(4))
	s.Equal("-25.0000", summary.SavingsRateChange.StringFixed(4))
}

func (s *AggregatorTestSuite) TestTotalByType() {
	s.Run("empty list sums to zero", func() {
		s.True(TotalByType(nil, models.TransactionTypeIncome).IsZero())
	})

	s.Run("legacy spellings count as their canonical type", func() {
		list := []models.Transaction{
			s.txn(models.TransactionTypeDebit, 40, "Food", "A"),
			s.txn(models.TransactionTypeExpense, 60, "Food", "B"),
			s.txn(models.TransactionTypeCredit, 10, "Refund", "C"),
		}
		s.Equal("100", TotalByType(list, models.TransactionTypeExpense).String())
		s.Equal("10", TotalByType(list, models.TransactionTypeIncome).String())
	})

	s.Run("independent of order", func() {
		list := make([]models.Transaction, 0, 50)
		for i := 0; i < 50; i++ {
			txType := models.TransactionTypeExpense
			if i%3 == 0 {
				txType = models.TransactionTypeIncome
			}
			list = append(list, models.Transaction{Type: txType, Amount: decimal.New(int64(i*137+1), -2)})
		}
		want := TotalByType(list, models.TransactionTypeExpense)

		rng := rand.New(rand.NewSource(7))
		for round := 0; round < 10; round++ {
			rng.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
			s.True(want.Equal(TotalByType(list, models.TransactionTypeExpense)))
		}
	})
}

func (s *AggregatorTestSuite) TestSavingsRate() {
	s.True(SavingsRate(decimal.NewFromInt(100), decimal.Zero).IsZero())
	s.Equal("33.3333", SavingsRate(decimal.NewFromInt(1), decimal.NewFromInt(3)).StringFixed(4))
	s.Equal("-50.0000", SavingsRate(decimal.NewFromInt(-500), decimal.NewFromInt(1000)).StringFixed(4))
}

func (s *AggregatorTestSuite) TestPercentageChange() {
	s.Run("zero base yields zero", func() {
		for _, current := range []int64{0, 1, 500, -20} {
			s.True(PercentageChange(decimal.Zero, decimal.NewFromInt(current)).IsZero())
		}
	})

	s.Run("unchanged value yields zero", func() {
		for _, p := range []int64{1, 250, -75} {
			s.True(PercentageChange(decimal.NewFromInt(p), decimal.NewFromInt(p)).IsZero())
		}
	})

	s.Run("rounds half up at four places", func() {
		s.Equal("-33.3333", PercentageChange(decimal.NewFromInt(3), decimal.NewFromInt(2)).StringFixed(4))
		s.Equal("66.6667", PercentageChange(decimal.NewFromInt(3), decimal.NewFromInt(5)).StringFixed(4))
	})
}

func (s *AggregatorTestSuite) TestCategoryBreakdown_PercentagesAndBudgets() {
	list := []models.Transaction{
		s.txn(models.TransactionTypeExpense, 300, "Food", "Market"),
		s.txn(models.TransactionTypeExpense, 100, "Transport", "Metro"),
		s.txn(models.TransactionTypeIncome, 5000, "Salary", "ACME"),
	}

	breakdown := CategoryBreakdown(list, fixedBudgets(map[string]int64{"Food": 1000, "Transport": 50}, 1000))

	s.Require().Len(breakdown, 2)
	s.Equal("Food", breakdown[0].Category)
	s.Equal("300", breakdown[0].Amount.String())
	s.Equal(75, breakdown[0].Percentage)
	s.False(breakdown[0].IsOverBudget())
	s.Equal("30.00", breakdown[0].BudgetUtilization.StringFixed(2))

	s.Equal("Transport", breakdown[1].Category)
	s.Equal(25, breakdown[1].Percentage)
	s.True(breakdown[1].IsOverBudget())
	s.Equal("50", breakdown[1].Overage().String())
	s.Equal("200.00", breakdown[1].BudgetUtilization.StringFixed(2))
}

func (s *AggregatorTestSuite) TestCategoryBreakdown_OrderingAndColors() {
	list := []models.Transaction{
		s.txn(models.TransactionTypeExpense, 10, "Books", "A"),
		s.txn(models.TransactionTypeExpense, 50, "Travel", "B"),
		s.txn(models.TransactionTypeExpense, 10, "Coffee", "C"),
		s.txn(models.TransactionTypeExpense, 40, "Travel", "D"),
	}

	breakdown := CategoryBreakdown(list, fixedBudgets(nil, 1000))

	s.Require().Len(breakdown, 3)
	s.Equal([]string{"Travel", "Books", "Coffee"},
		[]string{breakdown[0].Category, breakdown[1].Category, breakdown[2].Category})
	for i := range breakdown {
		s.Equal(categoryPalette[i%len(categoryPalette)], breakdown[i].Color)
	}
}

func (s *AggregatorTestSuite) TestCategoryBreakdown_Properties() {
	categories := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	list := make([]models.Transaction, 0)
	for i := 0; i < 40; i++ {
		list = append(list, s.txn(models.TransactionTypeExpense, int64(7*i%23+1), categories[i%len(categories)], "v"))
	}

	breakdown := CategoryBreakdown(list, fixedBudgets(nil, 1000))

	s.Len(breakdown, len(categories))
	sum := 0
	for i := range breakdown {
		sum += breakdown[i].Percentage
		s.True(breakdown[i].Amount.IsPositive())
		if i > 0 {
			s.True(breakdown[i-1].Amount.GreaterThanOrEqual(breakdown[i].Amount))
		}
	}
	// each share is rounded half-up on its own, so the sum may pass 100 by at
	// most half a point per category
	s.LessOrEqual(sum, 100+len(breakdown)/2)
	s.Equal(categoryPalette[7%len(categoryPalette)], breakdown[7].Color)
}

func (s *AggregatorTestSuite) TestCategoryBreakdown_PerCategoryRoundingCanSumAbove100() {
	list := []models.Transaction{
		s.txn(models.TransactionTypeExpense, 6, "Rent", "Landlord"),
		s.txn(models.TransactionTypeExpense, 1, "Coffee", "Cafe"),
		s.txn(models.TransactionTypeExpense, 1, "Books", "Shop"),
	}

	breakdown := CategoryBreakdown(list, fixedBudgets(nil, 1000))

	s.Require().Len(breakdown, 3)
	s.Equal(75, breakdown[0].Percentage)
	s.Equal(13, breakdown[1].Percentage)
	s.Equal(13, breakdown[2].Percentage)
}

func (s *AggregatorTestSuite) TestUntypedTransactionsTakeTypeFromSign() {
	salary := s.txn("", 2000, "Salary", "ACME")
	groceries := s.txn("", -150, "Groceries", "Market")
	rent := s.txn(models.TransactionTypeExpense, 900, "Rent", "Landlord")
	list := []models.Transaction{salary, groceries, rent}

	s.Equal("2000.00", TotalByType(list, models.TransactionTypeIncome).StringFixed(2))
	s.Equal("1050.00", TotalByType(list, models.TransactionTypeExpense).StringFixed(2))

	breakdown := CategoryBreakdown(list, fixedBudgets(nil, 1000))
	s.Require().Len(breakdown, 2)
	s.Equal("Rent", breakdown[0].Category)
	s.Equal("Groceries", breakdown[1].Category)
	s.Equal("150.00", breakdown[1].Amount.StringFixed(2))

	top := TopExpenses(list, 5)
	s.Require().Len(top, 2)
	s.Equal("Market", top[1].Vendor)
	s.Equal("150.00", top[1].Amount.StringFixed(2))

	summary := Summarize(list, nil)
	s.Equal("950.00", summary.NetSavings.StringFixed(2))
}

func (s *AggregatorTestSuite) TestCategoryBreakdown_NoExpenses() {
	list := []models.Transaction{s.txn(models.TransactionTypeIncome, 100, "Salary", "ACME")}

	s.Empty(CategoryBreakdown(list, fixedBudgets(nil, 1000)))
}

func (s *AggregatorTestSuite) TestCategoryBreakdown_LooksUpEachBudgetOnce() {
	calls := map[string]int{}
	list := []models.Transaction{
		s.txn(models.TransactionTypeExpense, 10, "Food", "A"),
		s.txn(models.TransactionTypeExpense, 20, "Food", "B"),
		s.txn(models.TransactionTypeExpense, 30, "Gym", "C"),
	}

	CategoryBreakdown(list, func(category string) decimal.Decimal {
		calls[category]++
		return decimal.NewFromInt(100)
	})

	s.Equal(map[string]int{"Food": 1, "Gym": 1}, calls)
}

func (s *AggregatorTestSuite) TestTopExpenses_GroupsByVendor() {
	list := []models.Transaction{
		s.txn(models.TransactionTypeExpense, 50, "Food", "A"),
		s.txn(models.TransactionTypeExpense, 70, "Dining", "A"),
		s.txn(models.TransactionTypeExpense, 10, "Food", "B"),
	}

	top := TopExpenses(list, 1)

	s.Require().Len(top, 1)
	s.Equal("A", top[0].Vendor)
	s.Equal("120", top[0].Amount.String())
	s.Equal(2, top[0].Frequency)
	s.Equal("Food", top[0].Category)
}

func (s *AggregatorTestSuite) TestTopExpenses_Rules() {
	merchant := s.txn(models.TransactionTypeExpense, 25, "Food", "card purchase")
	merchant.MerchantName = "Store"

	list := []models.Transaction{
		s.txn(models.TransactionTypeExpense, 30, "Food", "store"),
		merchant,
		s.txn(models.TransactionTypeIncome, 900, "Salary", "Store"),
		s.txn(models.TransactionTypeExpense, 30, "Food", "Bakery"),
	}

	top := TopExpenses(list, 10)

	s.Require().Len(top, 3)
	s.Equal("store", top[0].Vendor)
	s.Equal("Bakery", top[1].Vendor)
	s.Equal("Store", top[2].Vendor)
	s.Equal("25", top[2].Amount.String())

	s.Len(TopExpenses(list, 2), 2)
	s.Empty(TopExpenses(list, 0))
}

func (s *AggregatorTestSuite) TestMonthlyBreakdown() {
	jan := s.txn(models.TransactionTypeIncome, 3000, "Salary", "ACME")
	jan.TransactionDate = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	janSpend := s.txn(models.TransactionTypeExpense, 1000, "Rent", "Landlord")
	janSpend.TransactionDate = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	dec := s.txn(models.TransactionTypeExpense, 200, "Gifts", "Shop")
	dec.TransactionDate = time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC)

	months := MonthlyBreakdown([]models.Transaction{jan, dec, janSpend}, decimal.NewFromInt(1500))

	s.Require().Len(months, 2)
	s.Equal("Dec", months[0].Month)
	s.Equal(2023, months[0].Year)
	s.Equal("-200", months[0].Savings.String())
	s.Equal("Jan", months[1].Month)
	s.Equal("3000", months[1].Income.String())
	s.Equal("1000", months[1].Expenses.String())
	s.Equal("2000", months[1].Savings.String())
	s.Equal("1500", months[1].Target.String())
}

func (s *AggregatorTestSuite) TestGoalProgressList() {
	goals := make([]models.SavingsGoal, 5)
	for i := range goals {
		goals[i] = models.SavingsGoal{
			ID:            uuid.New(),
			Name:          "goal",
			TargetAmount:  decimal.NewFromInt(300),
			CurrentAmount: decimal.NewFromInt(100),
		}
	}
	goals[4].TargetAmount = decimal.Zero

	progress := GoalProgressList(goals)

	s.Require().Len(progress, 5)
	s.Equal(33, progress[0].Progress)
	s.Equal(0, progress[4].Progress)
	s.Equal("#10b981", progress[0].Color)
	s.Equal("#8b5cf6", progress[3].Color)
	s.Equal("#10b981", progress[4].Color)
}
