package appointment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"petopia/models"

	"go.uber.org/zap"
)

// Update applies a status transition and/or field updates to an appointment,
// then notifies the owner or guest. The timestamp side effects per status:
// Confirmed sets confirmedAt and clears the rest, Completed sets completedAt
// and clears the rest, Canceled sets rejectedAt and clears the rest, Pending
// clears all three, and In-progress / Ready-for-pickup backfill confirmedAt
// only when it was never set.
func (s *DefaultAppointmentService) Update(ctx context.Context, id string, req models.AppointmentUpdate) (*models.AppointmentView, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, &NotFoundError{Resource: "appointment"}
	}

	now := s.clock()
	var status models.AppointmentStatus
	if req.Status != "" {
		parsed, ok := models.ParseAppointmentStatus(req.Status)
		if !ok {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid status value %q", req.Status)}
		}
		status = parsed
		appt.Status = status

		switch status {
		case models.StatusCompleted:
			appt.CompletedAt = &now
			appt.ConfirmedAt = nil
			appt.RejectedAt = nil
			if req.MedicalConcern != "" {
				s.appendMedicalHistory(ctx, appt, req.MedicalConcern)
			}
		case models.StatusCanceled:
			appt.RejectedAt = &now
			appt.ConfirmedAt = nil
			appt.CompletedAt = nil
		case models.StatusConfirmed:
			appt.ConfirmedAt = &now
			appt.CompletedAt = nil
			appt.RejectedAt = nil
		case models.StatusInProgress, models.StatusReadyForPickup:
			if appt.ConfirmedAt == nil {
				appt.ConfirmedAt = &now
			}
		case models.StatusPending:
			appt.ConfirmedAt = nil
			appt.CompletedAt = nil
			appt.RejectedAt = nil
		}
	}

	if req.Notes != "" {
		appt.Notes = req.Notes
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		if req.Time != "" {
			date, err = withClockTime(date, req.Time)
			if err != nil {
				return nil, err
			}
		}
		appt.Date = date
	}
	if req.Price != "" {
		appt.Price = req.Price
	}
	if req.MedicalConcern != "" {
		appt.MedicalConcern = req.MedicalConcern
	}
	appt.UpdatedAt = now

	if err := s.Appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	view, err := s.buildView(ctx, appt)
	if err != nil {
		return nil, err
	}
	if status != "" {
		s.dispatchStatusUpdate(ctx, appt, status)
	}
	return view, nil
}

// withClockTime replaces the hour and minute of d from an "HH:MM" string.
func withClockTime(d time.Time, clock string) (time.Time, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("invalid time %q", clock)}
	}
	hours, err1 := strconv.Atoi(parts[0])
	minutes, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("invalid time %q", clock)}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hours, minutes, 0, 0, d.Location()), nil
}

// appendMedicalHistory records a completed visit's concern on the pet. Guest
// pets are embedded snapshots with no standalone record, so they are skipped.
func (s *DefaultAppointmentService) appendMedicalHistory(ctx context.Context, appt *models.Appointment, concern string) {
	if appt.PetID == "" || appt.GuestID != "" {
		s.logger().Info("no standalone pet record, skipping medical history",
			zap.String("appointmentID", appt.ID))
		return
	}
	if err := s.Pets.AppendMedicalHistory(ctx, appt.PetID, concern); err != nil {
		s.logger().Error("failed to append medical history",
			zap.String("petID", appt.PetID), zap.Error(err))
	}
}

// dispatchStatusUpdate emails the owner or guest about the new status. A
// Completed transition attaches the receipt.
func (s *DefaultAppointmentService) dispatchStatusUpdate(ctx context.Context, appt *models.Appointment, status models.AppointmentStatus) {
	email, firstName, petName, petType := s.resolveRecipient(ctx, appt)
	if email == "" {
		s.logger().Warn("no recipient email found, skipping status update",
			zap.String("appointmentID", appt.ID))
		return
	}

	var clinicName, clinicAddress, clinicEmail, serviceName string
	if clinic, err := s.Catalog.GetClinicByID(ctx, appt.ClinicID); err != nil {
		s.logger().Error("failed to load clinic for status update", zap.Error(err))
	} else if clinic != nil {
		clinicName, clinicAddress, clinicEmail = clinic.Name, clinic.Address, clinic.Email
	}
	if service, err := s.Catalog.GetServiceByID(ctx, appt.ServiceID); err != nil {
		s.logger().Error("failed to load service for status update", zap.Error(err))
	} else if service != nil {
		serviceName = service.Name
	}

	price := "Not specified"
	if appt.Price != "" {
		price = "₱" + appt.Price
	}
	details := models.AppointmentEmail{
		AppointmentID: appt.ID,
		ClinicName:    clinicName,
		ClinicAddress: clinicAddress,
		ClinicEmail:   clinicEmail,
		Date:          formatDateTime(appt.Date),
		ServiceName:   serviceName,
		PetName:       petName,
		PetType:       petType,
		FirstName:     firstName,
		Notes:         appt.Notes,
		Price:         price,
	}

	var receipt []byte
	if status == models.StatusCompleted {
		receipt = s.renderReceipt(models.ReceiptDetails{
			AppointmentID:  appt.ID,
			ClinicName:     clinicName,
			ClinicAddress:  clinicAddress,
			Date:           formatDateTime(appt.Date),
			ServiceName:    serviceName,
			PetName:        petName,
			PetType:        petType,
			Notes:          appt.Notes,
			FirstName:      firstName,
			MedicalConcern: appt.MedicalConcern,
		})
	}

	if err := s.Notifier.SendStatusUpdate(ctx, email, details, status, receipt); err != nil {
		s.logger().Error("failed to send status update email",
			zap.String("appointmentID", appt.ID),
			zap.String("email", email), zap.Error(err))
	}
}

// resolveRecipient finds who gets notified about an appointment and the pet
// it concerns.
func (s *DefaultAppointmentService) resolveRecipient(ctx context.Context, appt *models.Appointment) (email, firstName, petName, petType string) {
	switch {
	case appt.OwnerID != "":
		owner, err := s.Owners.GetByID(ctx, appt.OwnerID)
		if err != nil {
			s.logger().Error("failed to load owner", zap.Error(err))
			return "", "", "", ""
		}
		if owner == nil {
			return "", "", "", ""
		}
		email, firstName = owner.Email, owner.FirstName
		if appt.PetID != "" {
			if pet, err := s.Pets.GetByID(ctx, appt.PetID); err != nil {
				s.logger().Error("failed to load pet", zap.Error(err))
			} else if pet != nil {
				petName, petType = pet.Name, pet.Type
			}
		}
	case appt.GuestID != "":
		guest, err := s.Guests.GetByID(ctx, appt.GuestID)
		if err != nil {
			s.logger().Error("failed to load guest", zap.Error(err))
			return "", "", "", ""
		}
		if guest == nil {
			return "", "", "", ""
		}
		email, firstName = guest.Email, guest.FirstName
		for _, p := range guest.Pets {
			if p.ID == appt.PetID {
				petName, petType = p.Name, p.Type
				break
			}
		}
		if petName == "" && len(guest.Pets) > 0 {
			petName, petType = guest.Pets[0].Name, guest.Pets[0].Type
		}
	}
	return email, firstName, petName, petType
}
