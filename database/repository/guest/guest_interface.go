package guestRepo

import (
	"context"

	"petopia/models"
)

// GuestRepository defines methods for guest data access.
// Get methods return (nil, nil) when no document matches.
type GuestRepository interface {
	// Create inserts a new guest record.
	Create(ctx context.Context, guest *models.Guest) error
	// GetByID retrieves a guest by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	// GetByEmail retrieves a guest by its unique email.
	GetByEmail(ctx context.Context, email string) (*models.Guest, error)
	// AppendAppointment adds an appointment reference to the guest's list.
	AppendAppointment(ctx context.Context, guestID, appointmentID string) error
}
