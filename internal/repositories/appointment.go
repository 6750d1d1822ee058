package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"commerce-gateway/internal/models"
)

// AppointmentRepository handles appointment data operations
type AppointmentRepository struct {
	db *sql.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create inserts a new appointment and returns the stored row
func (r *AppointmentRepository) Create(reference string, req *models.AppointmentCreateRequest) (*models.Appointment, error) {
	query := `
		INSERT INTO appointments (reference, customer_name, customer_email, starts_at, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, reference, customer_name, customer_email, starts_at, notes, status, created_at, updated_at`

	now := time.Now()
	appointment := &models.Appointment{}

	err := r.db.QueryRow(
		query,
		reference,
		req.CustomerName,
		req.CustomerEmail,
		req.StartsAt,
		req.Notes,
		models.AppointmentStatusBooked,
		now,
		now,
	).Scan(
		&appointment.ID,
		&appointment.Reference,
		&appointment.CustomerName,
		&appointment.CustomerEmail,
		&appointment.StartsAt,
		&appointment.Notes,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return appointment, nil
}

// GetByReference retrieves an appointment by its public reference
func (r *AppointmentRepository) GetByReference(reference string) (*models.Appointment, error) {
	query := `
		SELECT id, reference, customer_name, customer_email, starts_at, notes, status, created_at, updated_at
		FROM appointments
		WHERE reference = $1`

	appointment := &models.Appointment{}
	err := r.db.QueryRow(query, reference).Scan(
		&appointment.ID,
		&appointment.Reference,
		&appointment.CustomerName,
		&appointment.CustomerEmail,
		&appointment.StartsAt,
		&appointment.Notes,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return appointment, nil
}

// ListUpcoming returns appointments starting after the given time, soonest first
func (r *AppointmentRepository) ListUpcoming(after time.Time, limit int) ([]*models.Appointment, error) {
	query := `
		SELECT id, reference, customer_name, customer_email, starts_at, notes, status, created_at, updated_at
		FROM appointments
		WHERE starts_at > $1 AND status = $2
		ORDER BY starts_at ASC
		LIMIT $3`

	rows, err := r.db.Query(query, after, models.AppointmentStatusBooked, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*models.Appointment
	for rows.Next() {
		appointment := &models.Appointment{}
		err := rows.Scan(
			&appointment.ID,
			&appointment.Reference,
			&appointment.CustomerName,
			&appointment.CustomerEmail,
			&appointment.StartsAt,
			&appointment.Notes,
			&appointment.Status,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}

// UpdateStatus transitions an appointment to the given status
func (r *AppointmentRepository) UpdateStatus(reference string, status models.AppointmentStatus) (*models.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE reference = $3
		RETURNING id, reference, customer_name, customer_email, starts_at, notes, status, created_at, updated_at`

	appointment := &models.Appointment{}
	err := r.db.QueryRow(query, status, time.Now(), reference).Scan(
		&appointment.ID,
		&appointment.Reference,
		&appointment.CustomerName,
		&appointment.CustomerEmail,
		&appointment.StartsAt,
		&appointment.Notes,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	return appointment, nil
}

// Delete removes an appointment permanently
func (r *AppointmentRepository) Delete(reference string) error {
	result, err := r.db.Exec("DELETE FROM appointments WHERE reference = $1", reference)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return models.ErrAppointmentNotFound
	}

	return nil
}
