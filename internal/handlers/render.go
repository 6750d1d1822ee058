package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"commerce-gateway/internal/models"
)

// errorResponse is the JSON body returned for all failures
type errorResponse struct {
	Error string `json:"error"`
}

// renderJSON writes v as a JSON response with the given status
func renderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// renderError writes a JSON error body with the given status
func renderError(w http.ResponseWriter, status int, message string) {
	renderJSON(w, status, errorResponse{Error: message})
}

// renderServiceError maps a service error to an HTTP status and a short
// human-readable message. Nothing propagates to the client unformatted.
func renderServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidProductID):
		renderError(w, http.StatusBadRequest, "invalid product id")
	case errors.Is(err, models.ErrInvalidInput):
		renderError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrOutOfStock):
		renderError(w, http.StatusBadRequest, "product is out of stock")
	case errors.Is(err, models.ErrInsufficientStock):
		renderError(w, http.StatusBadRequest, "not enough stock available")
	case errors.Is(err, models.ErrProductNotFound):
		renderError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, models.ErrLineNotFound):
		renderError(w, http.StatusNotFound, "item not in cart")
	case errors.Is(err, models.ErrOrderNotFound):
		renderError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, models.ErrPromoNotFound):
		renderError(w, http.StatusNotFound, "promo code not found")
	case errors.Is(err, models.ErrAppointmentNotFound):
		renderError(w, http.StatusNotFound, "appointment not found")
	case errors.Is(err, models.ErrCatalogUnavailable):
		renderError(w, http.StatusServiceUnavailable, "product catalog is unavailable")
	case errors.Is(err, models.ErrOrdersUnavailable):
		renderError(w, http.StatusServiceUnavailable, "orders service is unavailable")
	case errors.Is(err, models.ErrPromoUnavailable):
		renderError(w, http.StatusServiceUnavailable, "promo service is unavailable")
	default:
		log.Printf("Unhandled service error: %v", err)
		renderError(w, http.StatusInternalServerError, "internal server error")
	}
}
