package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"lunchtime/lunch-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MockAPIClient talks to the generic record store that serves the dishes and
// orders collections. Every failure, transport or status, is reported as
// domain.ErrNetworkFailure.
type MockAPIClient struct {
	baseURL string
	client  HTTPClient
}

func NewMockAPIClient(baseURL string, client HTTPClient) *MockAPIClient {
	return &MockAPIClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (c *MockAPIClient) ListDishes(ctx context.Context) ([]domain.RawDish, error) {
	var dishes []domain.RawDish
	if err := c.do(ctx, http.MethodGet, "/dishes", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (c *MockAPIClient) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *MockAPIClient) CreateOrder(ctx context.Context, payload domain.OrderPayload) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *MockAPIClient) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

func (c *MockAPIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetworkFailure, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrNetworkFailure, method, path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode response: %v", domain.ErrNetworkFailure, method, path, err)
	}
	return nil
}
