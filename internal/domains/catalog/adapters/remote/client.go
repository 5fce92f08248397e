// Package remote fetches the catalog from the upstream product API
// (FakeStore-compatible JSON surface).
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
	"github.com/shopilens/storefront-api/internal/domains/catalog/ports"
)

var _ ports.Source = (*Client)(nil)

// Client talks to the remote product API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient instantiates the catalog source with sane defaults.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("catalog base URL is required")
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

type ratingPayload struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

type productPayload struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Rating      ratingPayload `json:"rating"`
}

// FetchProducts retrieves the full catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API unexpected status: %s", resp.Status)
	}

	var payloads []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	products := make([]domain.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, domain.Product{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
			Rating:      domain.Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
		})
	}
	return products, nil
}
