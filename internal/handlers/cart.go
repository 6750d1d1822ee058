package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"commerce-gateway/internal/models"
	"commerce-gateway/internal/services"
)

// CartHandler serves the delegated cart: line items with snapshotted
// title/price, quantity changes checked against live catalog inventory.
// The cart lives entirely in the client's cookie; each request reads it,
// applies one transition and writes it back on success.
type CartHandler struct {
	carts     services.CartServiceInterface
	cookieTTL time.Duration
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts services.CartServiceInterface, cookieTTL time.Duration) *CartHandler {
	if cookieTTL <= 0 {
		cookieTTL = DefaultCartCookieTTL
	}
	return &CartHandler{
		carts:     carts,
		cookieTTL: cookieTTL,
	}
}

// RegisterRoutes mounts the cart endpoints on the router
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/cart", h.GetCart)
	r.Post("/cart/add/{productId}", h.Add)
	r.Post("/cart/remove/{variantId}", h.Remove)
	r.Post("/cart/addbyone/{variantId}", h.AddByOne)
	r.Post("/cart/removebyone/{variantId}", h.RemoveByOne)
}

// GetCart returns the current cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.readCart(r)
	renderJSON(w, http.StatusOK, cart)
}

// Add puts one unit of a product into the cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
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

// Remove deletes a line from the cart
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.Atoi(chi.URLParam(r, "variantId"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid variant id")
		return
	}

	cart := h.readCart(r)
	updated, err := h.carts.Remove(cart, variantID)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	writeCartCookie(w, updated, h.cookieTTL)
	renderJSON(w, http.StatusOK, updated)
}

// AddByOne raises a line's quantity by one, stock permitting
func (h *CartHandler) AddByOne(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.Atoi(chi.URLParam(r, "variantId"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid variant id")
		return
	}

	cart := h.readCart(r)
	updated, err := h.carts.IncrementByOne(r.Context(), cart, variantID)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	writeCartCookie(w, updated, h.cookieTTL)
	renderJSON(w, http.StatusOK, updated)
}

// RemoveByOne lowers a line's quantity by one, removing it at zero
func (h *CartHandler) RemoveByOne(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.Atoi(chi.URLParam(r, "variantId"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid variant id")
		return
	}

	cart := h.readCart(r)
	updated, err := h.carts.DecrementByOne(cart, variantID)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	writeCartCookie(w, updated, h.cookieTTL)
	renderJSON(w, http.StatusOK, updated)
}

func (h *CartHandler) readCart(r *http.Request) *models.Cart {
	cart := &models.Cart{}
	readCartCookie(r, cart)
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return cart
}
