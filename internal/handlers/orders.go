package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"commerce-gateway/internal/models"
	"commerce-gateway/internal/services"
)

// OrdersHandler proxies order operations to the downstream orders API
// and turns the client's cart cookie into an order at checkout.
type OrdersHandler struct {
	orders    services.OrdersServiceInterface
	cookieTTL time.Duration
}

// NewOrdersHandler creates a new orders handler
func NewOrdersHandler(orders services.OrdersServiceInterface, cookieTTL time.Duration) *OrdersHandler {
	if cookieTTL <= 0 {
		cookieTTL = DefaultCartCookieTTL
	}
	return &OrdersHandler{
		orders:    orders,
		cookieTTL: cookieTTL,
	}
}

// RegisterRoutes mounts the order endpoints on the router
func (h *OrdersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.List)
	r.Get("/orders/{id}", h.GetByID)
	r.Post("/checkout", h.Checkout)
}

// List returns orders, filtered in memory when query parameters are set.
// Supported parameters: status, email, created_after (RFC 3339).
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := services.OrderSearchFilters{
		Status: models.OrderStatus(r.URL.Query().Get("status")),
		Email:  r.URL.Query().Get("email"),
	}

	if raw := r.URL.Query().Get("created_after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			renderError(w, http.StatusBadRequest, "invalid created_after, expected RFC 3339 timestamp")
			return
		}
		filters.CreatedAfter = &t
	}

	orders, err := h.orders.SearchOrders(r.Context(), filters)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, orders)
}

// GetByID returns a single order
func (h *OrdersHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		renderError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, order)
}

// checkoutRequest is the checkout request body
type checkoutRequest struct {
	Email string `json:"email"`
}

// Checkout places an order from the cart cookie and clears the cart on
// success. The cart cookie is left untouched when order creation fails.
func (h *OrdersHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart := &models.Cart{}
	readCartCookie(r, cart)
	if cart.IsEmpty() {
		renderError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	lineItems := make([]models.OrderLineItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lineItems = append(lineItems, models.OrderLineItem{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Title:     line.Title,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(r.Context(), &models.OrderCreateRequest{
		Email:     req.Email,
		LineItems: lineItems,
	})
	if err != nil {
		renderServiceError(w, err)
		return
	}

	// Clear the cart after a successful purchase
	writeCartCookie(w, &models.Cart{Lines: []models.CartLine{}}, h.cookieTTL)
	renderJSON(w, http.StatusCreated, order)
}
