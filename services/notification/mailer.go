package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"petopia/config"
	"petopia/models"

	"gopkg.in/gomail.v2"
)

// Mailer is the SMTP implementation of Service.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates a Mailer from the loaded application config.
func NewMailer() *Mailer {
	cfg := config.AppConfig
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.EmailFrom,
	}
}

func (m *Mailer) send(to, subject, htmlBody string, attachmentName string, attachment []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if attachment != nil {
		msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(attachment))
			return err
		}))
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}
	return nil
}

// SendOTP delivers a one-time code for guest booking verification.
func (m *Mailer) SendOTP(ctx context.Context, email, code string) error {
	return m.send(email, "Your OTP Code - Petopia", otpBody(code), "", nil)
}

// SendBookingConfirmation delivers the confirmation email with the receipt attached.
func (m *Mailer) SendBookingConfirmation(ctx context.Context, email string, details models.AppointmentEmail, receipt []byte) error {
	name := fmt.Sprintf("appointment-%s.pdf", details.AppointmentID)
	return m.send(email, "Appointment Confirmation - Petopia", confirmationBody(details), name, receipt)
}

// SendStatusUpdate delivers the status-specific email; the receipt is
// attached only when non-nil.
func (m *Mailer) SendStatusUpdate(ctx context.Context, email string, details models.AppointmentEmail, status models.AppointmentStatus, receipt []byte) error {
	subject, body := statusUpdate(details, status)
	name := fmt.Sprintf("appointment-%s.pdf", details.AppointmentID)
	return m.send(email, subject, body, name, receipt)
}

// SendClinicFollowUp delivers the post-visit follow-up to the clinic.
func (m *Mailer) SendClinicFollowUp(ctx context.Context, email string, details models.FollowUpEmail, receipt []byte) error {
	name := fmt.Sprintf("appointment-%s.pdf", details.AppointmentID)
	return m.send(email, "Follow-up Reminder - Petopia", followUpBody(details), name, receipt)
}

// SendReminder delivers a scheduled appointment reminder.
func (m *Mailer) SendReminder(ctx context.Context, email string, details models.ReminderEmail) error {
	return m.send(email, "Appointment Reminder - Petopia", reminderBody(details), "", nil)
}
