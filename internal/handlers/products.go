package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"commerce-gateway/internal/services"
)

// ProductsHandler proxies product browsing to the downstream catalog
type ProductsHandler struct {
	catalog services.ProductCatalog
}

// NewProductsHandler creates a new products handler
func NewProductsHandler(catalog services.ProductCatalog) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// RegisterRoutes mounts the product endpoints on the router
func (h *ProductsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.GetByID)
}

// List returns products, filtered in memory when query parameters are set.
// Supported parameters: q (title substring), price_min, price_max,
// in_stock (true/1).
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, ok := parseProductFilters(w, r)
	if !ok {
		return
	}

	products, err := h.catalog.SearchProducts(r.Context(), filters)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, products)
}

// GetByID returns a single product
func (h *ProductsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		renderError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.GetProductByID(r.Context(), id)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, product)
}

func parseProductFilters(w http.ResponseWriter, r *http.Request) (services.ProductSearchFilters, bool) {
	filters := services.ProductSearchFilters{
		Query: r.URL.Query().Get("q"),
	}

	if raw := r.URL.Query().Get("price_min"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			renderError(w, http.StatusBadRequest, "invalid price_min")
			return filters, false
		}
		filters.PriceMin = &value
	}

	if raw := r.URL.Query().Get("price_max"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			renderError(w, http.StatusBadRequest, "invalid price_max")
			return filters, false
		}
		filters.PriceMax = &value
	}

	if raw := r.URL.Query().Get("in_stock"); raw == "true" || raw == "1" {
		filters.InStockOnly = true
	}

	return filters, true
}
