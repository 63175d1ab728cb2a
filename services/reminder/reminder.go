// Package reminder sweeps upcoming confirmed appointments and emails the
// owner or guest ahead of the visit. Each appointment carries one monotonic
// flag per reminder kind, so a sweep that runs every minute still sends each
// reminder at most once.
package reminder

import (
	"context"
	"time"

	appointmentRepo "petopia/database/repository/appointment"
	catalogRepo "petopia/database/repository/catalog"
	guestRepo "petopia/database/repository/guest"
	ownerRepo "petopia/database/repository/owner"
	"petopia/models"
	"petopia/services/notification"
	"petopia/utils"

	"go.uber.org/zap"
)

// Sweeper finds due reminders and dispatches them.
type Sweeper struct {
	Appointments appointmentRepo.AppointmentRepository
	Owners       ownerRepo.OwnerRepository
	Guests       guestRepo.GuestRepository
	Catalog      catalogRepo.CatalogRepository
	Notifier     notification.Service
	Logger       *zap.Logger

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (s *Sweeper) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Sweeper) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// Sweep runs both reminder passes. The one-day pass covers appointments
// falling anywhere within tomorrow's calendar day; the five-hour pass covers
// appointments starting within the half hour leading up to five hours from
// now.
func (s *Sweeper) Sweep(ctx context.Context) error {
	now := s.clock()

	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	if err := s.sweepWindow(ctx, tomorrow, tomorrow.AddDate(0, 0, 1), models.ReminderOneDay); err != nil {
		return err
	}

	fiveHours := now.Add(5 * time.Hour)
	return s.sweepWindow(ctx, fiveHours.Add(-30*time.Minute), fiveHours, models.ReminderFiveHours)
}

func (s *Sweeper) sweepWindow(ctx context.Context, from, to time.Time, flag models.ReminderFlag) error {
	appts, err := s.Appointments.FindConfirmedInWindow(ctx, from, to, flag)
	if err != nil {
		return err
	}

	for i := range appts {
		appt := &appts[i]

		email, name := s.resolveRecipient(ctx, appt)
		clinicName := s.resolveClinicName(ctx, appt.ClinicID)
		if email == "" || clinicName == "" {
			s.logger().Warn("missing recipient or clinic, skipping reminder",
				zap.String("appointmentID", appt.ID), zap.String("flag", string(flag)))
			continue
		}

		details := models.ReminderEmail{
			PetOwnerName: name,
			ClinicName:   clinicName,
			Date:         appt.Date.Format("January 2, 2006"),
			StartTime:    appt.Date.Format("3:04 PM"),
		}
		if err := s.Notifier.SendReminder(ctx, email, details); err != nil {
			s.logger().Error("failed to send reminder",
				zap.String("appointmentID", appt.ID),
				zap.String("email", email), zap.Error(err))
		}

		// The flag is set regardless of the send outcome so a transient
		// mailer failure cannot turn into a reminder storm.
		if err := s.Appointments.MarkReminderSent(ctx, appt.ID, flag); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sweeper) resolveRecipient(ctx context.Context, appt *models.Appointment) (email, name string) {
	switch {
	case appt.OwnerID != "":
		owner, err := s.Owners.GetByID(ctx, appt.OwnerID)
		if err != nil {
			s.logger().Error("failed to load owner for reminder", zap.Error(err))
			return "", ""
		}
		if owner == nil {
			return "", ""
		}
		return owner.Email, owner.FirstName
	case appt.GuestID != "":
		guest, err := s.Guests.GetByID(ctx, appt.GuestID)
		if err != nil {
			s.logger().Error("failed to load guest for reminder", zap.Error(err))
			return "", ""
		}
		if guest == nil {
			return "", ""
		}
		return guest.Email, guest.FirstName
	}
	return "", ""
}

func (s *Sweeper) resolveClinicName(ctx context.Context, clinicID string) string {
	clinic, err := s.Catalog.GetClinicByID(ctx, clinicID)
	if err != nil {
		s.logger().Error("failed to load clinic for reminder", zap.Error(err))
		return ""
	}
	if clinic == nil {
		return ""
	}
	return clinic.Name
}
