package appointmentRepo

import (
	"context"
	"time"

	"petopia/models"
)

// AppointmentRepository defines methods for appointment data access.
// Get methods return (nil, nil) when no document matches.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// Update rewrites an existing appointment record in a single document write.
	Update(ctx context.Context, appt *models.Appointment) error
	// Delete removes an appointment by its ID.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll retrieves all appointments sorted by date descending.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByOwner retrieves all appointments for an owner.
	GetByOwner(ctx context.Context, ownerID string) ([]models.Appointment, error)
	// GetByClinic retrieves all appointments for a clinic sorted by date descending.
	GetByClinic(ctx context.Context, clinicID string) ([]models.Appointment, error)
	// FindConfirmedInWindow retrieves Confirmed appointments with a date in
	// [from, to) whose given reminder flag is not yet set.
	FindConfirmedInWindow(ctx context.Context, from, to time.Time, flag models.ReminderFlag) ([]models.Appointment, error)
	// MarkReminderSent sets the given reminder flag. Flags are monotonic and
	// never cleared.
	MarkReminderSent(ctx context.Context, id string, flag models.ReminderFlag) error
}
