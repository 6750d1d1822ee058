package services

import (
	"time"

	"github.com/google/uuid"

	"commerce-gateway/internal/models"
)

// AppointmentService handles appointment booking and lookup
type AppointmentService struct {
	repo AppointmentRepositoryInterface
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo AppointmentRepositoryInterface) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// Book validates the request and stores a new appointment with a
// generated public reference.
func (s *AppointmentService) Book(req *models.AppointmentCreateRequest) (*models.Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reference := uuid.New().String()
	return s.repo.Create(reference, req)
}

// GetByReference retrieves an appointment by its public reference
func (s *AppointmentService) GetByReference(reference string) (*models.Appointment, error) {
	if _, err := uuid.Parse(reference); err != nil {
		return nil, models.ErrAppointmentNotFound
	}
	return s.repo.GetByReference(reference)
}

// ListUpcoming returns booked appointments starting after now
func (s *AppointmentService) ListUpcoming(limit int) ([]*models.Appointment, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.ListUpcoming(time.Now(), limit)
}

// Cancel transitions a booked appointment to cancelled
func (s *AppointmentService) Cancel(reference string) (*models.Appointment, error) {
	if _, err := uuid.Parse(reference); err != nil {
		return nil, models.ErrAppointmentNotFound
	}
	return s.repo.UpdateStatus(reference, models.AppointmentStatusCancelled)
}

// Delete removes an appointment permanently. Cancel is the customer
// path; Delete is for purging records entirely.
func (s *AppointmentService) Delete(reference string) error {
	if _, err := uuid.Parse(reference); err != nil {
		return models.ErrAppointmentNotFound
	}
	return s.repo.Delete(reference)
}
