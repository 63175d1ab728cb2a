// Package appointment owns the appointment lifecycle: booking in its three
// variants, OTP-gated guest verification, status transitions with their
// timestamp side effects, and the best-effort document/notification fan-out
// that follows each committing write.
package appointment

import (
	"context"
	"time"

	appointmentRepo "petopia/database/repository/appointment"
	catalogRepo "petopia/database/repository/catalog"
	guestRepo "petopia/database/repository/guest"
	ownerRepo "petopia/database/repository/owner"
	petRepo "petopia/database/repository/pet"
	"petopia/models"
	"petopia/services/document"
	"petopia/services/notification"
	"petopia/services/otp"
	"petopia/utils"

	"go.uber.org/zap"
)

// AppointmentService defines the appointment lifecycle operations.
type AppointmentService interface {
	// BookForOwner books for a registered owner, resolving or creating the
	// described pet. No OTP gate.
	BookForOwner(ctx context.Context, req models.OwnerBookingRequest) (*models.Appointment, error)
	// StageGuestBooking stages a guest booking behind an emailed OTP.
	// Nothing is persisted until verification.
	StageGuestBooking(ctx context.Context, req models.GuestBookingRequest) error
	// VerifyGuestBooking consumes a staged booking: on success the guest and
	// appointment are created and the staged entry removed.
	VerifyGuestBooking(ctx context.Context, email, code string) (*models.Appointment, error)
	// BookForClinic books directly for an existing owner and pet, already
	// confirmed, and notifies the clinic with a follow-up summary.
	BookForClinic(ctx context.Context, req models.ClinicBookingRequest) (*models.Appointment, error)
	// Update applies a status transition and/or field updates, then sends a
	// status-specific notification.
	Update(ctx context.Context, id string, req models.AppointmentUpdate) (*models.AppointmentView, error)
	// Delete hard-deletes an appointment.
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*models.AppointmentView, error)
	ListAll(ctx context.Context) ([]models.AppointmentView, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.AppointmentView, error)
	ListByClinic(ctx context.Context, clinicID string) ([]models.AppointmentView, error)
	OwnersWithAppointments(ctx context.Context, clinicID string) ([]models.ClinicOwnerSummary, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Pets         petRepo.PetRepository
	Owners       ownerRepo.OwnerRepository
	Guests       guestRepo.GuestRepository
	Catalog      catalogRepo.CatalogRepository
	OTP          otp.Broker
	Notifier     notification.Service
	Documents    document.Generator
	Logger       *zap.Logger

	// FrontendURL is the base of the verification URL embedded in QR codes.
	FrontendURL string

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAppointmentService) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAppointmentService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
