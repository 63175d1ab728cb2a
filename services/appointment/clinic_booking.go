package appointment

import (
	"context"
	"fmt"

	"petopia/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookForClinic books directly for an existing owner and pet. The
// appointment starts out Confirmed, and the clinic receives a follow-up
// summary dated seven days after the visit.
func (s *DefaultAppointmentService) BookForClinic(ctx context.Context, req models.ClinicBookingRequest) (*models.Appointment, error) {
	if req.OwnerID == "" || req.PetID == "" || req.ClinicID == "" ||
		req.ServiceID == "" || req.Date == "" {
		return nil, &ValidationError{Message: "missing required fields for clinic booking"}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	date = withTimeOfDay(date, now)

	owner, err := s.Owners.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner: %w", err)
	}
	if owner == nil {
		return nil, &NotFoundError{Resource: "owner"}
	}
	pet, err := s.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}
	if pet == nil {
		return nil, &NotFoundError{Resource: "pet"}
	}

	confirmedAt := now
	appt := &models.Appointment{
		ID:             uuid.NewString(),
		OwnerID:        req.OwnerID,
		PetID:          req.PetID,
		ClinicID:       req.ClinicID,
		VetID:          req.VetID,
		ServiceID:      req.ServiceID,
		Date:           date,
		Status:         models.StatusConfirmed,
		Notes:          req.Notes,
		MedicalConcern: req.MedicalConcern.String(),
		IsVerified:     true,
		ConfirmedAt:    &confirmedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.dispatchClinicFollowUp(ctx, appt, owner, pet)
	return appt, nil
}

// dispatchClinicFollowUp sends the post-visit summary to the clinic's own
// email. A clinic without an email is skipped with a log line.
func (s *DefaultAppointmentService) dispatchClinicFollowUp(ctx context.Context, appt *models.Appointment, owner *models.Owner, pet *models.Pet) {
	clinic, err := s.Catalog.GetClinicByID(ctx, appt.ClinicID)
	if err != nil {
		s.logger().Error("failed to load clinic for follow-up", zap.Error(err))
		return
	}
	if clinic == nil || clinic.Email == "" {
		s.logger().Warn("no clinic email found, skipping follow-up",
			zap.String("appointmentID", appt.ID), zap.String("clinicID", appt.ClinicID))
		return
	}

	var serviceName string
	if service, err := s.Catalog.GetServiceByID(ctx, appt.ServiceID); err != nil {
		s.logger().Error("failed to load service for follow-up", zap.Error(err))
	} else if service != nil {
		serviceName = service.Name
	}

	receipt := s.renderReceipt(models.ReceiptDetails{
		AppointmentID:  appt.ID,
		ClinicName:     clinic.Name,
		ClinicAddress:  clinic.Address,
		Date:           formatDateTime(appt.Date),
		ServiceName:    serviceName,
		PetName:        pet.Name,
		PetType:        pet.Type,
		Notes:          appt.Notes,
		FirstName:      owner.FirstName,
		MedicalConcern: appt.MedicalConcern,
	})

	followUpDate := appt.Date.AddDate(0, 0, 7)
	details := models.FollowUpEmail{
		AppointmentID:  appt.ID,
		ClinicName:     clinic.Name,
		FirstName:      owner.FirstName,
		LastName:       owner.LastName,
		PetName:        pet.Name,
		ServiceName:    serviceName,
		FollowUpDate:   formatDateTime(followUpDate),
		Notes:          appt.Notes,
		MedicalConcern: appt.MedicalConcern,
	}
	if err := s.Notifier.SendClinicFollowUp(ctx, clinic.Email, details, receipt); err != nil {
		s.logger().Error("failed to send clinic follow-up",
			zap.String("appointmentID", appt.ID),
			zap.String("email", clinic.Email), zap.Error(err))
	}
}
