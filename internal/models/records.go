package models

// Records returned by the spend-management gateway. The gateway's JSON may
// omit any field; absent fields keep their zero values and the Display*
// helpers apply the documented spoken-text defaults instead of failing.
// All monetary amounts are integers in minor currency units (cents).

// VirtualCard is a provisioned virtual payment card
type VirtualCard struct {
	ID       string `json:"id,omitempty"`
	LastFour string `json:"lastFour,omitempty"`
	// Balance is the remaining balance in cents. Missing balance reads as 0.
	Balance int64 `json:"balance,omitempty"`
}

// DisplayLastFour returns the card's last four digits, or "unknown" when the
// gateway did not supply them
func (c VirtualCard) DisplayLastFour() string {
	if c.LastFour == "" {
		return "unknown"
	}
	return c.LastFour
}

// Transaction is a card transaction as reported by the gateway
type Transaction struct {
	ID string `json:"id,omitempty"`
	// Amount is the transaction amount in cents
	Amount      int64  `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
	// Date is the transaction date as a YYYY-MM-DD string, kept verbatim
	Date     string `json:"date,omitempty"`
	Category string `json:"category,omitempty"`
}

// DisplayDescription returns the transaction description, or "Unknown" when
// the gateway did not supply one
func (t Transaction) DisplayDescription() string {
	if t.Description == "" {
		return "Unknown"
	}
	return t.Description
}

// DisplayDate returns the transaction date, or "Unknown" when missing
func (t Transaction) DisplayDate() string {
	if t.Date == "" {
		return "Unknown"
	}
	return t.Date
}

// ExpenseCategory is a user-defined spend category
type ExpenseCategory struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// DisplayName returns the category name, or "Unknown" when missing
func (c ExpenseCategory) DisplayName() string {
	if c.Name == "" {
		return "Unknown"
	}
	return c.Name
}

// ReceiptAttachment is the gateway's record of an uploaded receipt image
type ReceiptAttachment struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId,omitempty"`
	URL           string `json:"url,omitempty"`
}

// AutomatchJob tracks an asynchronous receipt-to-transaction matching run
type AutomatchJob struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}
