package services

import (
	"context"
	"time"

	"commerce-gateway/internal/models"
)

// ProductCatalog defines the interface to the downstream product catalog
type ProductCatalog interface {
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	SearchProducts(ctx context.Context, filters ProductSearchFilters) ([]*models.Product, error)
}

// CartServiceInterface defines the delegated cart state machine.
// Operations never mutate the input cart on failure; the returned cart
// is a new value the caller persists.
type CartServiceInterface interface {
	Add(ctx context.Context, cart *models.Cart, productID int) (*models.Cart, error)
	Remove(cart *models.Cart, variantID int) (*models.Cart, error)
	IncrementByOne(ctx context.Context, cart *models.Cart, variantID int) (*models.Cart, error)
	DecrementByOne(cart *models.Cart, variantID int) (*models.Cart, error)
}

// LocalCartServiceInterface defines the gateway-local cart variant
type LocalCartServiceInterface interface {
	Add(ctx context.Context, cart models.LocalCart, productID int) (models.LocalCart, error)
	Remove(cart models.LocalCart, productID int) (models.LocalCart, error)
}

// OrdersServiceInterface defines the interface to the downstream orders API
type OrdersServiceInterface interface {
	ListOrders(ctx context.Context) ([]*models.Order, error)
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	SearchOrders(ctx context.Context, filters OrderSearchFilters) ([]*models.Order, error)
	CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*models.Order, error)
}

// PromoServiceInterface defines the interface to the downstream promo API
type PromoServiceInterface interface {
	GetPromoCode(ctx context.Context, code string) (*models.PromoCode, error)
}

// AppointmentRepositoryInterface defines the appointment storage operations
type AppointmentRepositoryInterface interface {
	Create(reference string, req *models.AppointmentCreateRequest) (*models.Appointment, error)
	GetByReference(reference string) (*models.Appointment, error)
	ListUpcoming(after time.Time, limit int) ([]*models.Appointment, error)
	UpdateStatus(reference string, status models.AppointmentStatus) (*models.Appointment, error)
	Delete(reference string) error
}

// AppointmentServiceInterface defines the interface for appointment services
type AppointmentServiceInterface interface {
	Book(req *models.AppointmentCreateRequest) (*models.Appointment, error)
	GetByReference(reference string) (*models.Appointment, error)
	ListUpcoming(limit int) ([]*models.Appointment, error)
	Cancel(reference string) (*models.Appointment, error)
	Delete(reference string) error
}

// ProductSearchFilters represents search filters for products
type ProductSearchFilters struct {
	Query       string
	PriceMin    *float64
	PriceMax    *float64
	InStockOnly bool
}

// OrderSearchFilters represents search filters for orders
type OrderSearchFilters struct {
	Status       models.OrderStatus
	Email        string
	CreatedAfter *time.Time
}
