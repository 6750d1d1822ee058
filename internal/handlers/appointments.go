package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"commerce-gateway/internal/models"
	"commerce-gateway/internal/services"
)

// AppointmentsHandler serves appointment booking and lookup. When the
// gateway runs without a database the service is nil and every route
// answers 503.
type AppointmentsHandler struct {
	appointments services.AppointmentServiceInterface
}

// NewAppointmentsHandler creates a new appointments handler
func NewAppointmentsHandler(appointments services.AppointmentServiceInterface) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

// RegisterRoutes mounts the appointment endpoints on the router
func (h *AppointmentsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/appointments", h.List)
	r.Post("/appointments", h.Book)
	r.Get("/appointments/{reference}", h.GetByReference)
	r.Post("/appointments/{reference}/cancel", h.Cancel)
	r.Delete("/appointments/{reference}", h.Delete)
}

// Book creates a new appointment
func (h *AppointmentsHandler) Book(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req models.AppointmentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appointment, err := h.appointments.Book(&req)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, appointment)
}

// List returns upcoming booked appointments
func (h *AppointmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	appointments, err := h.appointments.ListUpcoming(limit)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	if appointments == nil {
		appointments = []*models.Appointment{}
	}
	renderJSON(w, http.StatusOK, appointments)
}

// GetByReference returns a single appointment
func (h *AppointmentsHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	appointment, err := h.appointments.GetByReference(chi.URLParam(r, "reference"))
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, appointment)
}

// Cancel marks an appointment as cancelled
func (h *AppointmentsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	appointment, err := h.appointments.Cancel(chi.URLParam(r, "reference"))
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, appointment)
}

// Delete removes an appointment record entirely
func (h *AppointmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	if err := h.appointments.Delete(chi.URLParam(r, "reference")); err != nil {
		renderServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AppointmentsHandler) available(w http.ResponseWriter) bool {
	if h.appointments == nil {
		renderError(w, http.StatusServiceUnavailable, "appointments are not available")
		return false
	}
	return true
}
