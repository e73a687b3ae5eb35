package services

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DemoGeneratorTestSuite struct {
	suite.Suite
	generator *demoGenerator
	userID    uuid.UUID
	start     time.Time
	end       time.Time
}

func TestDemoGeneratorSuite(t *testing.T) {
	suite.Run(t, new(DemoGeneratorTestSuite))
}

func (s *DemoGeneratorTestSuite) SetupTest() {
	s.generator = NewDemoGenerator(WithDemoSeed(42)).(*demoGenerator)
	s.userID = uuid.New()
	s.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (s *DemoGeneratorTestSuite) TestGenerateSalary_BiWeekly() {
	salary := s.generator.GenerateSalary(s.userID, s.start, s.end)

	s.Len(salary, 6)
	for i, txn := range salary {
		s.Equal(models.TransactionTypeIncome, txn.Type)
		s.Equal(models.CategoryIncome, txn.Category)
		s.True(txn.Amount.Equal(salary[0].Amount))
		s.Equal(s.generator.employer, txn.MerchantName)
		if i > 0 {
			s.Equal(14*24*time.Hour, txn.TransactionDate.Sub(salary[i-1].TransactionDate))
		}
	}
}

func (s *DemoGeneratorTestSuite) TestGenerateBills_WithinRange() {
	bills := s.generator.GenerateBills(s.userID, s.start, s.end)

	s.Len(bills, 12)
	for _, bill := range bills {
		s.Equal(models.CategoryBillsUtilities, bill.Category)
		s.Equal(models.TransactionTypeExpense, bill.Type)
		s.False(bill.TransactionDate.Before(s.start))
		s.False(bill.TransactionDate.After(s.end))
	}
}

func (s *DemoGeneratorTestSuite) TestGenerateDailyPurchases() {
	purchases := s.generator.GenerateDailyPurchases(s.userID, s.start, s.start.AddDate(0, 0, 10))

	s.GreaterOrEqual(len(purchases), 10)
	s.LessOrEqual(len(purchases), 40)

	perDay := make(map[time.Time]int)
	for _, txn := range purchases {
		perDay[txn.TransactionDate]++
		s.True(txn.Amount.IsPositive())
		s.Equal(models.TransactionSourceDemo, txn.Source)
		s.NoError(txn.Validate())
	}
	s.Len(perDay, 10)
}

func (s *DemoGeneratorTestSuite) TestGenerateAmount_Ranges() {
	for range 50 {
		amount := s.generator.GenerateAmount(models.CategoryTravel)
		s.True(amount.GreaterThanOrEqual(decimal.NewFromInt(100)))
		s.True(amount.LessThanOrEqual(decimal.NewFromInt(800)))
		s.True(amount.Equal(amount.Round(2)))
	}

	minValue, maxValue := getAmountRange("Pets")
	s.Equal(10.0, minValue)
	s.Equal(100.0, maxValue)
}

func (s *DemoGeneratorTestSuite) TestGenerateHistory_SortedAndSeeded() {
	end := time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)
	history := s.generator.GenerateHistory(s.userID, end, 0)

	s.NotEmpty(history)
	for i := 1; i < len(history); i++ {
		s.False(history[i].TransactionDate.Before(history[i-1].TransactionDate))
	}
	s.False(history[0].TransactionDate.Before(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))

	again := NewDemoGenerator(WithDemoSeed(42)).GenerateHistory(s.userID, end, 0)
	s.Require().Len(again, len(history))
	for i := range history {
		s.True(history[i].Amount.Equal(again[i].Amount))
		s.Equal(history[i].Description, again[i].Description)
	}
}
