package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLineItem represents a single line of an order
type OrderLineItem struct {
	ProductID int     `json:"product_id"`
	VariantID int     `json:"variant_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order represents an order as reported by the downstream orders API
type Order struct {
	ID         int             `json:"id"`
	Number     string          `json:"number"`
	Email      string          `json:"email"`
	Status     OrderStatus     `json:"status"`
	TotalPrice float64         `json:"total_price"`
	LineItems  []OrderLineItem `json:"line_items"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderCreateRequest represents a request to place an order downstream
type OrderCreateRequest struct {
	Email     string          `json:"email"`
	LineItems []OrderLineItem `json:"line_items"`
}

// Validate checks the order request before it is sent downstream
func (r *OrderCreateRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: billing email is required", ErrInvalidInput)
	}
	if len(r.LineItems) == 0 {
		return fmt.Errorf("%w: order must contain at least one line item", ErrInvalidInput)
	}
	for _, item := range r.LineItems {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: line item quantity must be positive", ErrInvalidInput)
		}
	}
	return nil
}

// PromoCode represents a promotion as reported by the downstream promo API
type PromoCode struct {
	Code            string     `json:"code"`
	DiscountPercent float64    `json:"discount_percent"`
	Active          bool       `json:"active"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}
