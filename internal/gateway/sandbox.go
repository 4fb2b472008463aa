package gateway

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"finvoice/internal/models"
)

const (
	sandboxCardCount       = 3
	sandboxHistoryDays     = 90
	sandboxDailyMaxCharges = 3
	sandboxMinAmountCents  = 350
	sandboxMaxAmountCents  = 48000
)

type sandboxMerchant struct {
	name     string
	category string
}

// sandboxMerchantPool mirrors the category vocabulary the filter extractor
// recognizes so spoken filters always have matching data to hit
var sandboxMerchantPool = []sandboxMerchant{
	{"Delta Air Lines", "travel"},
	{"United Airlines", "travel"},
	{"Marriott Hotels", "travel"},
	{"Hilton Hotels", "travel"},
	{"Uber", "travel"},
	{"Starbucks", "food"},
	{"Chipotle Mexican Grill", "food"},
	{"Panera Bread", "food"},
	{"Whole Foods Market", "food"},
	{"Olive Garden", "food"},
	{"Staples", "office"},
	{"Office Depot", "office"},
	{"Amazon Business", "office"},
	{"FedEx Office", "office"},
	{"Netflix", "entertainment"},
	{"Spotify", "entertainment"},
	{"AMC Theaters", "entertainment"},
	{"PlayStation Network", "entertainment"},
	{"AT&T", "utilities"},
	{"Comcast Xfinity", "utilities"},
	{"PG&E", "utilities"},
	{"Verizon Wireless", "utilities"},
}

var sandboxCategoryNames = []string{"Travel", "Food", "Office", "Entertainment", "Utilities"}

// Sandbox is an in-memory GatewayInterface for development and demos. It
// fabricates a stable data set from a seed so the same commands produce the
// same spoken answers across restarts.
type Sandbox struct {
	cards        []models.VirtualCard
	transactions []models.Transaction
	categories   []models.ExpenseCategory
	rng          *rand.Rand
}

// NewSandbox builds a sandbox gateway with ~90 days of generated history
// anchored to now
func NewSandbox(seed int64, now time.Time) *Sandbox {
	s := &Sandbox{rng: rand.New(rand.NewSource(seed))}
	s.generateCards()
	s.generateTransactions(now)
	s.generateCategories()
	return s
}

func (s *Sandbox) generateCards() {
	for i := 0; i < sandboxCardCount; i++ {
		s.cards = append(s.cards, models.VirtualCard{
			ID:       fmt.Sprintf("vc_%04d", i+1),
			LastFour: fmt.Sprintf("%04d", s.rng.Intn(10000)),
			Balance:  int64(s.rng.Intn(500000)) + 10000,
		})
	}
}

func (s *Sandbox) generateTransactions(now time.Time) {
	id := 0
	for day := sandboxHistoryDays; day >= 0; day-- {
		date := now.AddDate(0, 0, -day).Format(models.DateLayout)
		for n := s.rng.Intn(sandboxDailyMaxCharges + 1); n > 0; n-- {
			merchant := sandboxMerchantPool[s.rng.Intn(len(sandboxMerchantPool))]
			id++
			s.transactions = append(s.transactions, models.Transaction{
				ID:          fmt.Sprintf("txn_%05d", id),
				Amount:      int64(s.rng.Intn(sandboxMaxAmountCents-sandboxMinAmountCents)) + sandboxMinAmountCents,
				Description: merchant.name,
				Date:        date,
				Category:    merchant.category,
			})
		}
	}
}

func (s *Sandbox) generateCategories() {
	for i, name := range sandboxCategoryNames {
		s.categories = append(s.categories, models.ExpenseCategory{
			ID:   fmt.Sprintf("ec_%02d", i+1),
			Name: name,
		})
	}
}

// ListVirtualCards returns the generated card set
func (s *Sandbox) ListVirtualCards(ctx context.Context) ([]models.VirtualCard, error) {
	return append([]models.VirtualCard(nil), s.cards...), nil
}

// ListTransactions applies the filters locally over the generated history
func (s *Sandbox) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	matched := make([]models.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if filters.DateRange != nil && !filters.DateRange.Contains(txn.Date) {
			continue
		}
		if filters.Category != "" && txn.Category != filters.Category {
			continue
		}
		matched = append(matched, txn)
	}
	return matched, nil
}

// ListExpenseCategories returns the generated category set
func (s *Sandbox) ListExpenseCategories(ctx context.Context) ([]models.ExpenseCategory, error) {
	return append([]models.ExpenseCategory(nil), s.categories...), nil
}

// CreateReceiptAttachment accepts any upload and fabricates an attachment
// record for it
func (s *Sandbox) CreateReceiptAttachment(ctx context.Context, transactionID, filename string, file io.Reader) (*models.ReceiptAttachment, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return nil, err
	}
	return &models.ReceiptAttachment{
		ID:            fmt.Sprintf("ra_%06d", s.rng.Intn(1000000)),
		TransactionID: transactionID,
		URL:           "https://sandbox.invalid/receipts/" + filename,
	}, nil
}

// AutomatchReceipts reports an immediately-completed matching job
func (s *Sandbox) AutomatchReceipts(ctx context.Context) (*models.AutomatchJob, error) {
	return &models.AutomatchJob{
		ID:     fmt.Sprintf("am_%06d", s.rng.Intn(1000000)),
		Status: "COMPLETED",
	}, nil
}
