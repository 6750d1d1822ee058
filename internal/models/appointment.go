package models

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus represents the state of a booked appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a customer appointment
type Appointment struct {
	ID            int               `json:"id"`
	Reference     string            `json:"reference"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	StartsAt      time.Time         `json:"starts_at"`
	Notes         string            `json:"notes,omitempty"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// AppointmentCreateRequest represents a request to book an appointment
type AppointmentCreateRequest struct {
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	StartsAt      time.Time `json:"starts_at"`
	Notes         string    `json:"notes"`
}

// Validate checks the booking request
func (r *AppointmentCreateRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.CustomerEmail) == "" || !strings.Contains(r.CustomerEmail, "@") {
		return fmt.Errorf("%w: a valid customer email is required", ErrInvalidInput)
	}
	if r.StartsAt.IsZero() {
		return fmt.Errorf("%w: appointment time is required", ErrInvalidInput)
	}
	if r.StartsAt.Before(time.Now()) {
		return fmt.Errorf("%w: appointment time must be in the future", ErrInvalidInput)
	}
	return nil
}
