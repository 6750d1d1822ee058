package models

import "errors"

// Common errors used throughout the application
var (
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrProductNotFound     = errors.New("product not found")
	ErrLineNotFound        = errors.New("item not in cart")
	ErrOutOfStock          = errors.New("product out of stock")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrdersUnavailable   = errors.New("orders service unavailable")
	ErrPromoNotFound       = errors.New("promo code not found")
	ErrPromoUnavailable    = errors.New("promo service unavailable")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidInput        = errors.New("invalid input")
)
