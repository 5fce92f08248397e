// Package cart is the Go client for the storefront cart API. The Client
// speaks the HTTP endpoints and carries the cart cookie in its jar; the
// Cache keeps an observable copy of the cart for UI code; a Session ties
// the two together.
package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/shopilens/storefront-api/internal/domains/cart/adapters/http/mapper"
)

// StatusError carries a rejection from the cart API, message included.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cart API rejected the request (%d): %s", e.Status, e.Message)
}

// Client calls the cart endpoints of one storefront locale. The cookie jar
// holds the cart token between calls, so a Client behaves like one browser
// session.
type Client struct {
	baseURL    string
	locale     string
	httpClient *http.Client
}

// NewClient builds a cart client. Passing a nil http.Client installs a
// default one with a cookie jar; a caller-provided client must bring its own
// jar or the cart will reset on every call.
func NewClient(baseURL, locale string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("cart base URL is required")
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil, errors.New("locale is required")
	}
	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("build cookie jar: %w", err)
		}
		httpClient = &http.Client{Timeout: 5 * time.Second, Jar: jar}
	}
	return &Client{baseURL: baseURL, locale: locale, httpClient: httpClient}, nil
}

// Get fetches the current cart.
func (c *Client) Get(ctx context.Context) ([]mapper.LineItem, error) {
	return c.do(ctx, http.MethodGet, "", nil)
}

// Add puts the product into the cart, merging quantities when it is already
// there.
func (c *Client) Add(ctx context.Context, product mapper.Product, quantity int64) ([]mapper.LineItem, error) {
	return c.do(ctx, http.MethodPost, "", mapper.AddItemRequest{
		Product:  &product,
		Quantity: &quantity,
	})
}

// SetQuantity sets the exact quantity of a line item. Zero or less removes it.
func (c *Client) SetQuantity(ctx context.Context, productID, quantity int64) ([]mapper.LineItem, error) {
	return c.do(ctx, http.MethodPut, "", mapper.UpdateItemRequest{
		ProductID: &productID,
		Quantity:  &quantity,
	})
}

// Remove drops a line item from the cart.
func (c *Client) Remove(ctx context.Context, productID int64) ([]mapper.LineItem, error) {
	return c.do(ctx, http.MethodDelete, "?productId="+strconv.FormatInt(productID, 10), nil)
}

// Clear empties the cart.
func (c *Client) Clear(ctx context.Context) ([]mapper.LineItem, error) {
	return c.do(ctx, http.MethodDelete, "", nil)
}

func (c *Client) do(ctx context.Context, method, query string, payload any) ([]mapper.LineItem, error) {
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode cart request: %w", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	url := c.baseURL + "/" + c.locale + "/cart/api/cart" + query
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build cart request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call cart API: %w", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Data    []mapper.LineItem `json:"data"`
		Success bool              `json:"success"`
		Error   string            `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &StatusError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode cart response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &StatusError{Status: resp.StatusCode, Message: message}
	}
	if envelope.Data == nil {
		envelope.Data = []mapper.LineItem{}
	}
	return envelope.Data, nil
}
