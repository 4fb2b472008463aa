package services

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"finvoice/internal/models"
)

type ResponseGeneratorTestSuite struct {
	suite.Suite
	generator *ResponseGenerator
}

func TestResponseGeneratorSuite(t *testing.T) {
	suite.Run(t, new(ResponseGeneratorTestSuite))
}

func (s *ResponseGeneratorTestSuite) SetupTest() {
	s.generator = NewResponseGenerator()
}

func (s *ResponseGeneratorTestSuite) TestFormatCents() {
	s.Equal("$0.00", s.generator.FormatCents(0))
	s.Equal("$0.01", s.generator.FormatCents(1))
	s.Equal("$2.50", s.generator.FormatCents(250))
	s.Equal("$225.00", s.generator.FormatCents(22500))
	s.Equal("$1234.56", s.generator.FormatCents(123456))
}

func (s *ResponseGeneratorTestSuite) TestFormatCentsRoundTrip() {
	// Reading the two-decimal string back reconstructs the cent value
	for i := 0; i < 100; i++ {
		cents := int64(gofakeit.Number(0, 10_000_000))
		formatted := s.generator.FormatCents(cents)

		dollars, err := strconv.ParseFloat(strings.TrimPrefix(formatted, "$"), 64)
		s.Require().NoError(err)
		s.Equal(cents, int64(dollars*100+0.5), "formatted: %s", formatted)
	}
}

func (s *ResponseGeneratorTestSuite) TestTransactionSummary() {
	transactions := []models.Transaction{
		{Amount: 10000},
		{Amount: 12500},
	}

	s.Equal("You spent $225.00 this month on food .",
		s.generator.TransactionSummary(transactions, "this month", "food"))
	s.Equal("You spent $225.00 this month .",
		s.generator.TransactionSummary(transactions, "this month", ""))
	s.Equal("You spent $225.00 on food .",
		s.generator.TransactionSummary(transactions, "", "food"))
	s.Equal("You spent $225.00 .",
		s.generator.TransactionSummary(transactions, "", ""))
}

func (s *ResponseGeneratorTestSuite) TestTransactionSummaryEmpty() {
	s.Equal(NoTransactionsMessage, s.generator.TransactionSummary(nil, "today", "food"))
}

func (s *ResponseGeneratorTestSuite) TestTransactionList() {
	transactions := []models.Transaction{
		{Amount: 1250, Description: "Starbucks", Date: "2024-03-04"},
		{Amount: 4575, Description: "Chipotle Mexican Grill", Date: "2024-03-03"},
	}

	reply := s.generator.TransactionList(transactions, DefaultTransactionLimit)
	s.Equal("Here are your recent transactions: $12.50 for Starbucks on 2024-03-04. $45.75 for Chipotle Mexican Grill on 2024-03-03. ", reply)
}

func (s *ResponseGeneratorTestSuite) TestTransactionListTruncation() {
	var transactions []models.Transaction
	for i := 0; i < 8; i++ {
		transactions = append(transactions, models.Transaction{
			Amount:      int64(gofakeit.Number(100, 50000)),
			Description: gofakeit.Company(),
			Date:        "2024-03-01",
		})
	}

	reply := s.generator.TransactionList(transactions, 5)
	s.Equal(5, strings.Count(reply, " for "), "exactly limit entries are read out")
	s.Contains(reply, "And 3 more transactions. ")
}

func (s *ResponseGeneratorTestSuite) TestTransactionListDefaults() {
	reply := s.generator.TransactionList([]models.Transaction{{Amount: 500}}, 0)
	s.Contains(reply, "$5.00 for Unknown on Unknown. ")
}

func (s *ResponseGeneratorTestSuite) TestVirtualCardList() {
	cards := []models.VirtualCard{
		{LastFour: "1234", Balance: 50000},
		{Balance: 0},
	}

	reply := s.generator.VirtualCardList(cards)
	s.Equal("You have 2 virtual cards. Card ending in 1234 has a balance of $500.00. Card ending in unknown has a balance of $0.00. ", reply)
}

func (s *ResponseGeneratorTestSuite) TestVirtualCardListEmpty() {
	s.Equal(NoVirtualCardsMessage, s.generator.VirtualCardList(nil))
	// Empty replies are fixed strings, not accumulated state
	s.Equal(NoVirtualCardsMessage, s.generator.VirtualCardList(nil))
}

func (s *ResponseGeneratorTestSuite) TestExpenseCategoryList() {
	categories := []models.ExpenseCategory{
		{Name: "Travel"},
		{Name: "Food"},
		{Name: "Office"},
	}

	s.Equal("You have 3 expense categories: Travel, Food, Office.",
		s.generator.ExpenseCategoryList(categories))
}

func (s *ResponseGeneratorTestSuite) TestExpenseCategoryListDefaults() {
	s.Equal("You have 1 expense categories: Unknown.",
		s.generator.ExpenseCategoryList([]models.ExpenseCategory{{}}))
	s.Equal(NoExpenseCategoriesMessage, s.generator.ExpenseCategoryList(nil))
}

func (s *ResponseGeneratorTestSuite) TestFixedMessages() {
	s.Contains(s.generator.WelcomeMessage(), "virtual cards")
	s.Contains(s.generator.HelpMessage(), "1) Check your virtual cards")
	s.Equal("I encountered an error: boom. Please try again or ask for help.",
		s.generator.ErrorMessage(fmt.Errorf("boom")))
}
