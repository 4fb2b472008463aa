package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finvoice/internal/config"
)

const techQuery = "(technology OR artificial intelligence OR AI) AND (business OR market OR company)"

var ErrMissingAPIKey = errors.New("news client requires an API key")

// Article is a single story returned by the news API. Only the fields the
// briefing needs are decoded.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type searchResponse struct {
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// APIError is a rejected request to the news API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("news API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("news API returned status %d: %s", e.StatusCode, e.Message)
}

// Client fetches technology and AI focused stories from the news API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a news client from explicit configuration
func NewClient(cfg config.NewsConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
	}, nil
}

// FetchTechNews returns stories about technology and AI with business
// relevance published over the last day, most relevant first
func (c *Client) FetchTechNews(ctx context.Context) ([]Article, error) {
	query := url.Values{}
	query.Set("q", techQuery)
	query.Set("language", "en")
	query.Set("sortBy", "relevancy")
	query.Set("from", c.now().AddDate(0, 0, -1).Format("2006-01-02"))
	query.Set("apiKey", c.apiKey)

	endpoint := c.baseURL + "/v2/everything?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building news request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling news API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading news response: %w", err)
	}

	var search searchResponse
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(body, &search) == nil {
			apiErr.Message = search.Message
		}
		return nil, apiErr
	}

	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("decoding news response: %w", err)
	}
	// The API reports application-level failures with a 200 status
	if search.Status != "ok" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: search.Message}
	}

	return search.Articles, nil
}
