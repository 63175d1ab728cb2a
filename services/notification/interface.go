// Package notification delivers templated email to owners, guests, and
// clinics. Sends are fire-and-forget relative to the transition that
// triggered them: the caller logs failures and never rolls back.
package notification

import (
	"context"

	"petopia/models"
)

// Service defines methods for sending appointment email.
type Service interface {
	// SendOTP delivers a one-time code for guest booking verification.
	SendOTP(ctx context.Context, email, code string) error
	// SendBookingConfirmation delivers the confirmation email with the
	// receipt document attached.
	SendBookingConfirmation(ctx context.Context, email string, details models.AppointmentEmail, receipt []byte) error
	// SendStatusUpdate delivers the status-specific email; the receipt is
	// attached only when non-nil (Completed transitions).
	SendStatusUpdate(ctx context.Context, email string, details models.AppointmentEmail, status models.AppointmentStatus, receipt []byte) error
	// SendClinicFollowUp delivers the post-visit follow-up to the clinic.
	SendClinicFollowUp(ctx context.Context, email string, details models.FollowUpEmail, receipt []byte) error
	// SendReminder delivers a scheduled appointment reminder.
	SendReminder(ctx context.Context, email string, details models.ReminderEmail) error
}
