package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"finvoice/internal/config"
	"finvoice/internal/models"
)

const tokenLifetime = 5 * time.Minute

var ErrMissingCredentials = errors.New("gateway client requires an API key and secret")

// APIError is a non-2xx response from the spend-management API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Message)
}

// IsAuthFailure reports whether the API rejected our credentials
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Client is the HTTP implementation of GatewayInterface. Each request
// carries a short-lived HS256 bearer token minted from the API key pair.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	metrics    MetricsRecorder
	now        func() time.Time
}

// NewClient creates a gateway client from explicit configuration. Missing
// credentials are a construction-time error, not a deferred panic.
func NewClient(cfg config.GatewayConfig, metrics MetricsRecorder) (*Client, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrMissingCredentials
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    metrics,
		now:        time.Now,
	}, nil
}

// Response envelopes used by the spend-management API
type virtualCardsEnvelope struct {
	VirtualCards []models.VirtualCard `json:"virtualCards"`
}

type transactionsEnvelope struct {
	Report struct {
		Transactions []models.Transaction `json:"transactions"`
	} `json:"report"`
}

type expenseCategoriesEnvelope struct {
	ExpenseCategories []models.ExpenseCategory `json:"expenseCategories"`
}

type apiErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ListVirtualCards returns every virtual card on the account
func (c *Client) ListVirtualCards(ctx context.Context) ([]models.VirtualCard, error) {
	var envelope virtualCardsEnvelope
	if err := c.get(ctx, "list_virtual_cards", "/virtualcards", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.VirtualCards, nil
}

// ListTransactions returns transactions matching the given filters. Filter
// parameters are omitted from the query entirely when not requested, so an
// empty filter set is indistinguishable from "no filtering" on the wire.
func (c *Client) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	query := url.Values{}
	if filters.DateRange != nil {
		query.Set("startDate", filters.DateRange.StartString())
		query.Set("endDate", filters.DateRange.EndString())
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}

	var envelope transactionsEnvelope
	if err := c.get(ctx, "list_transactions", "/transactions", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Report.Transactions, nil
}

// ListExpenseCategories returns the account's expense categories
func (c *Client) ListExpenseCategories(ctx context.Context) ([]models.ExpenseCategory, error) {
	var envelope expenseCategoriesEnvelope
	if err := c.get(ctx, "list_expense_categories", "/expensecategories", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.ExpenseCategories, nil
}

// CreateReceiptAttachment uploads a receipt image and attaches it to the
// given transaction
func (c *Client) CreateReceiptAttachment(ctx context.Context, transactionID, filename string, file io.Reader) (*models.ReceiptAttachment, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("transactionId", transactionID); err != nil {
		return nil, fmt.Errorf("building receipt upload: %w", err)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building receipt upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("building receipt upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building receipt upload: %w", err)
	}

	var attachment models.ReceiptAttachment
	err = c.do(ctx, "create_receipt_attachment", http.MethodPost, "/receiptattachments", nil, &body, writer.FormDataContentType(), &attachment)
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// AutomatchReceipts starts an asynchronous receipt matching job
func (c *Client) AutomatchReceipts(ctx context.Context) (*models.AutomatchJob, error) {
	var job models.AutomatchJob
	err := c.do(ctx, "automatch_receipts", http.MethodPost, "/receiptattachments/automatch", nil, nil, "", &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out interface{}) error {
	return c.do(ctx, operation, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("building gateway request: %w", err)
	}

	token, err := c.bearerToken()
	if err != nil {
		return fmt.Errorf("signing gateway token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	c.recordRequest(operation, status, c.now().Sub(start))
	if err != nil {
		return fmt.Errorf("calling gateway %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding gateway response: %w", err)
	}
	return nil
}

// bearerToken mints a short-lived HS256 token identifying the API key.
// The key ID travels in the header and the secret signs the claims.
func (c *Client) bearerToken() (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.apiKey,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = c.apiKey
	return token.SignedString([]byte(c.apiSecret))
}

func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errBody apiErrorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&errBody); err == nil {
		if errBody.Message != "" {
			apiErr.Message = errBody.Message
		} else {
			apiErr.Message = errBody.Error
		}
	}
	return apiErr
}

func (c *Client) recordRequest(operation, status string, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.IncrementCounter("gateway.request", map[string]string{
		"operation": operation,
		"status":    status,
	})
	c.metrics.RecordProcessingTime("gateway.request", duration)
}
