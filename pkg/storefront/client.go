// Package storefront is the client side of the storefront API: the session
// cart kept in sync with the server, the wishlist kept in local storage and
// a filtered view of the catalog.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"langnghe/internal/models"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("storefront API error (%d): %s %v", e.Status, e.Message, e.Fields)
	}
	return fmt.Sprintf("storefront API error (%d): %s", e.Status, e.Message)
}

// Client calls the REST API mounted at baseURL (e.g. "http://localhost:8080/api").
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client. A nil httpClient gets a default with a 10s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Message
			apiErr.Fields = payload.Errors
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, &products)
	return products, err
}

func (c *Client) Product(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(slug), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.do(ctx, http.MethodGet, "/cart/"+url.PathEscape(sessionID), nil, &items)
	return items, err
}

func (c *Client) AddCartItem(ctx context.Context, input models.CartItemInput) (*models.CartItem, error) {
	var item models.CartItem
	if err := c.do(ctx, http.MethodPost, "/cart", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem returns nil when the server deleted the row.
func (c *Client) UpdateCartItem(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	var resp struct {
		Success bool             `json:"success"`
		Item    *models.CartItem `json:"item"`
	}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", id), map[string]int{"quantity": quantity}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Item, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", id), nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/session/"+url.PathEscape(sessionID), nil, nil)
}

func (c *Client) Subscribe(ctx context.Context, name, email string) error {
	return c.do(ctx, http.MethodPost, "/subscribe", map[string]string{"name": name, "email": email}, nil)
}
