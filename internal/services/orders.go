package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"commerce-gateway/internal/models"
)

// OrdersConfig represents downstream orders API configuration
type OrdersConfig struct {
	BaseURL string
}

// OrdersService talks to the downstream orders API. Listing fetches the
// full order set; search filters that set in memory since the
// downstream exposes no query parameters.
type OrdersService struct {
	config OrdersConfig
	client *http.Client
}

// NewOrdersService creates a new orders client
func NewOrdersService(config OrdersConfig, client *http.Client) *OrdersService {
	return &OrdersService{
		config: config,
		client: client,
	}
}

// ListOrders fetches all orders from the downstream service
func (s *OrdersService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	body, err := s.do(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}

	var orders []*models.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("%w: failed to decode order list: %s", models.ErrOrdersUnavailable, err)
	}

	return orders, nil
}

// GetOrder fetches a single order by id
func (s *OrdersService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	body, err := s.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode order: %s", models.ErrOrdersUnavailable, err)
	}

	return &order, nil
}

// SearchOrders fetches all orders and applies the filters in memory
func (s *OrdersService) SearchOrders(ctx context.Context, filters OrderSearchFilters) ([]*models.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrders(orders, filters), nil
}

// CreateOrder posts a new order downstream
func (s *OrdersService) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	body, err := s.do(ctx, http.MethodPost, "/orders", payload)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode created order: %s", models.ErrOrdersUnavailable, err)
	}

	return &order, nil
}

func (s *OrdersService) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	url := strings.TrimRight(s.config.BaseURL, "/") + path

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create orders request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrOrdersUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %s", models.ErrOrdersUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.ErrOrderNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: downstream rejected request: %s", models.ErrInvalidInput, strings.TrimSpace(string(body)))
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", models.ErrOrdersUnavailable, resp.StatusCode)
	}
}

// FilterOrders applies search filters to an in-memory order list
func FilterOrders(orders []*models.Order, filters OrderSearchFilters) []*models.Order {
	email := strings.ToLower(strings.TrimSpace(filters.Email))

	matched := make([]*models.Order, 0, len(orders))
	for _, order := range orders {
		if filters.Status != "" && order.Status != filters.Status {
			continue
		}
		if email != "" && strings.ToLower(order.Email) != email {
			continue
		}
		if filters.CreatedAfter != nil && !order.CreatedAt.After(*filters.CreatedAfter) {
			continue
		}
		matched = append(matched, order)
	}

	return matched
}
