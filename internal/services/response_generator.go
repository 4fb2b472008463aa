package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"finvoice/internal/models"
)

// DefaultTransactionLimit caps how many transactions a spoken list reads out
const DefaultTransactionLimit = 5

// Fixed replies for empty collections and unrecognized commands
const (
	NoVirtualCardsMessage      = "You don't have any virtual cards."
	NoTransactionsMessage      = "I couldn't find any transactions matching your criteria."
	NoExpenseCategoriesMessage = "You don't have any expense categories."

	VirtualCardHintMessage     = "I can help you with your virtual cards. You can ask me to list your virtual cards or show details about a specific card."
	TransactionHintMessage     = "I can help you with your transactions. You can ask me how much you spent or to list your recent transactions."
	ExpenseCategoryHintMessage = "I can help you with your expense categories. You can ask me to list your categories."
	ReceiptMessage             = "I can help you upload receipts. Tell me which transaction the receipt belongs to and I will attach the photo for you."
	UnknownCommandMessage      = "I'm not sure how to help with that. You can ask me about your virtual cards, transactions, expense categories, or uploading receipts."
)

// ResponseGenerator builds the spoken reply strings. All methods are pure
// text construction; speech synthesis happens downstream.
type ResponseGenerator struct{}

func NewResponseGenerator() *ResponseGenerator {
	return &ResponseGenerator{}
}

// FormatCents renders integer cents as a fixed two-decimal dollar amount
func (g *ResponseGenerator) FormatCents(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// TransactionSummary renders the aggregate-spend reply. The time period and
// category clauses are included only when present.
func (g *ResponseGenerator) TransactionSummary(transactions []models.Transaction, timePeriod, category string) string {
	if len(transactions) == 0 {
		return NoTransactionsMessage
	}

	var total int64
	for _, txn := range transactions {
		total += txn.Amount
	}

	var b strings.Builder
	b.WriteString("You spent " + g.FormatCents(total) + " ")
	if timePeriod != "" {
		b.WriteString(timePeriod + " ")
	}
	if category != "" {
		b.WriteString("on " + category + " ")
	}
	b.WriteString(".")
	return b.String()
}

// TransactionList reads out up to limit transactions in input order and
// summarizes the remainder as a count
func (g *ResponseGenerator) TransactionList(transactions []models.Transaction, limit int) string {
	if len(transactions) == 0 {
		return NoTransactionsMessage
	}
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	var b strings.Builder
	b.WriteString("Here are your recent transactions: ")

	count := len(transactions)
	if count > limit {
		count = limit
	}
	for _, txn := range transactions[:count] {
		fmt.Fprintf(&b, "%s for %s on %s. ", g.FormatCents(txn.Amount), txn.DisplayDescription(), txn.DisplayDate())
	}
	if remaining := len(transactions) - limit; remaining > 0 {
		fmt.Fprintf(&b, "And %d more transactions. ", remaining)
	}
	return b.String()
}

// VirtualCardList reads out every card with its last four digits and
// balance. Missing fields fall back to their documented defaults instead of
// failing.
func (g *ResponseGenerator) VirtualCardList(cards []models.VirtualCard) string {
	if len(cards) == 0 {
		return NoVirtualCardsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d virtual cards. ", len(cards))
	for _, card := range cards {
		fmt.Fprintf(&b, "Card ending in %s has a balance of %s. ", card.DisplayLastFour(), g.FormatCents(card.Balance))
	}
	return b.String()
}

// ExpenseCategoryList reads out the category names as a comma-joined
// sentence
func (g *ResponseGenerator) ExpenseCategoryList(categories []models.ExpenseCategory) string {
	if len(categories) == 0 {
		return NoExpenseCategoriesMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d expense categories: ", len(categories))
	for _, category := range categories {
		b.WriteString(category.DisplayName() + ", ")
	}
	return strings.TrimSuffix(b.String(), ", ") + "."
}

// WelcomeMessage greets the caller at session start
func (g *ResponseGenerator) WelcomeMessage() string {
	return "Hello! I'm your Extend voice assistant. I can help you manage your virtual cards, check your transactions, view expense categories, and upload receipts. How can I assist you today?"
}

// HelpMessage enumerates the supported commands
func (g *ResponseGenerator) HelpMessage() string {
	return "I can help you with the following: 1) Check your virtual cards, 2) View your transactions, 3) List your expense categories, 4) Upload receipts. What would you like to do?"
}

// ErrorMessage wraps an error in a spoken apology
func (g *ResponseGenerator) ErrorMessage(err error) string {
	return fmt.Sprintf("I encountered an error: %s. Please try again or ask for help.", err)
}
