package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"commerce-gateway/internal/services"
)

// PromosHandler proxies promo code lookups to the downstream promo API
type PromosHandler struct {
	promos services.PromoServiceInterface
}

// NewPromosHandler creates a new promos handler
func NewPromosHandler(promos services.PromoServiceInterface) *PromosHandler {
	return &PromosHandler{promos: promos}
}

// RegisterRoutes mounts the promo endpoints on the router
func (h *PromosHandler) RegisterRoutes(r chi.Router) {
	r.Get("/promos/{code}", h.GetByCode)
}

// GetByCode returns the promotion for a code, or 404
func (h *PromosHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	promo, err := h.promos.GetPromoCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, promo)
}
