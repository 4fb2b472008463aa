package gateway

import (
	"context"
	"io"
	"time"

	"finvoice/internal/models"
)

// GatewayInterface is the narrow surface of the spend-management API the
// assistant consumes. Empty result collections are successes, never errors;
// any error returned here represents a transport, auth, or backend failure
// and is propagated to the caller untouched.
type GatewayInterface interface {
	// ListVirtualCards returns every virtual card on the account
	ListVirtualCards(ctx context.Context) ([]models.VirtualCard, error)

	// ListTransactions returns transactions matching the given filters.
	// Zero-value filters request the unfiltered collection.
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)

	// ListExpenseCategories returns the account's expense categories
	ListExpenseCategories(ctx context.Context) ([]models.ExpenseCategory, error)

	// CreateReceiptAttachment uploads a receipt image and attaches it to a
	// transaction
	CreateReceiptAttachment(ctx context.Context, transactionID, filename string, file io.Reader) (*models.ReceiptAttachment, error)

	// AutomatchReceipts starts an asynchronous job matching previously
	// uploaded receipts to transactions
	AutomatchReceipts(ctx context.Context) (*models.AutomatchJob, error)
}

// MetricsRecorder is the slice of the metrics service the gateway client
// records into. Declared here so the client does not depend on the services
// package.
type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
