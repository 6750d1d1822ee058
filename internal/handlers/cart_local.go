package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"commerce-gateway/internal/models"
	"commerce-gateway/internal/services"
)

// LocalCartHandler serves the gateway-local cart variant: a plain
// product-id to quantity mapping with no inventory checks.
type LocalCartHandler struct {
	carts     services.LocalCartServiceInterface
	cookieTTL time.Duration
}

// NewLocalCartHandler creates a new local cart handler
func NewLocalCartHandler(carts services.LocalCartServiceInterface, cookieTTL time.Duration) *LocalCartHandler {
	if cookieTTL <= 0 {
		cookieTTL = DefaultCartCookieTTL
	}
	return &LocalCartHandler{
		carts:     carts,
		cookieTTL: cookieTTL,
	}
}

// RegisterRoutes mounts the local cart endpoints on the router.
// The per-variant addbyone/removebyone operations do not exist in this
// variant, so those routes are not mounted.
func (h *LocalCartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/cart", h.GetCart)
	r.Post("/cart/add/{productId}", h.Add)
	r.Post("/cart/remove/{productId}", h.Remove)
}

// GetCart returns the current cart mapping
func (h *LocalCartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.readCart(r)
	renderJSON(w, http.StatusOK, cart)
}

// Add increments a product's quantity by one
func (h *LocalCartHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	cart := h.readCart(r)
	updated, err := h.carts.Add(r.Context(), cart, productID)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	writeCartCookie(w, updated, h.cookieTTL)
	renderJSON(w, http.StatusOK, updated)
}

// Remove deletes a product's entry from the cart
func (h *LocalCartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	cart := h.readCart(r)
	updated, err := h.carts.Remove(cart, productID)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	writeCartCookie(w, updated, h.cookieTTL)
	renderJSON(w, http.StatusOK, updated)
}

func (h *LocalCartHandler) readCart(r *http.Request) models.LocalCart {
	cart := models.LocalCart{}
	readCartCookie(r, &cart)
	return cart
}
