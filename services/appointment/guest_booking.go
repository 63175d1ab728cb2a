package appointment

import (
	"context"
	"fmt"

	"petopia/models"
	"petopia/services/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StageGuestBooking stages a guest booking behind an emailed one-time code.
// Re-staging the same email overwrites the previous entry; nothing is
// persisted until VerifyGuestBooking succeeds.
func (s *DefaultAppointmentService) StageGuestBooking(ctx context.Context, req models.GuestBookingRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.PetName == "" || req.PetType == "" ||
		req.ClinicID == "" || req.ServiceID == "" || req.Date == "" {
		return &ValidationError{Message: "missing required fields for guest booking"}
	}

	existing, err := s.Guests.GetByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to look up guest: %w", err)
	}
	if existing != nil {
		return &ConflictError{Message: "a guest account with this email already exists"}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}

	staged := otp.StagedBooking{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Pet: models.GuestPet{
			ID:     uuid.NewString(),
			Name:   req.PetName,
			Type:   req.PetType,
			Breed:  req.PetBreed,
			Gender: req.PetGender,
			Age:    req.PetAge,
		},
		ClinicID:       req.ClinicID,
		ServiceID:      req.ServiceID,
		VetID:          req.VetID,
		Date:           date,
		Notes:          req.Notes,
		MedicalConcern: req.MedicalConcern,
		Code:           code,
		ExpiresAt:      s.clock().Add(otp.DefaultTTL),
	}
	if err := s.OTP.Stage(ctx, req.Email, staged, otp.DefaultTTL); err != nil {
		return fmt.Errorf("failed to stage guest booking: %w", err)
	}

	if err := s.Notifier.SendOTP(ctx, req.Email, code); err != nil {
		s.logger().Error("failed to send OTP email",
			zap.String("email", req.Email), zap.Error(err))
	}
	return nil
}

// VerifyGuestBooking consumes a staged booking. A failed code check leaves
// the staged entry intact; the entry is deleted only after the guest and
// appointment records are durably created.
func (s *DefaultAppointmentService) VerifyGuestBooking(ctx context.Context, email, code string) (*models.Appointment, error) {
	if email == "" || code == "" {
		return nil, &ValidationError{Message: "email and otp are required"}
	}

	staged, err := s.OTP.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staged booking: %w", err)
	}
	if staged == nil {
		return nil, &OTPError{Message: "no pending booking found, please request a new OTP"}
	}
	now := s.clock()
	if staged.Code != code || staged.Expired(now) {
		return nil, &OTPError{Message: "invalid or expired OTP"}
	}

	guest := &models.Guest{
		ID:           uuid.NewString(),
		FirstName:    staged.FirstName,
		LastName:     staged.LastName,
		Email:        staged.Email,
		Phone:        staged.Phone,
		Pets:         []models.GuestPet{staged.Pet},
		Appointments: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Guests.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	appt := &models.Appointment{
		ID:             uuid.NewString(),
		GuestID:        guest.ID,
		PetID:          staged.Pet.ID,
		ClinicID:       staged.ClinicID,
		VetID:          staged.VetID,
		ServiceID:      staged.ServiceID,
		Date:           withTimeOfDay(staged.Date, now),
		Status:         models.StatusPending,
		Notes:          staged.Notes,
		MedicalConcern: staged.MedicalConcern,
		IsVerified:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.Guests.AppendAppointment(ctx, guest.ID, appt.ID); err != nil {
		s.logger().Error("failed to link appointment to guest",
			zap.String("guestID", guest.ID), zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	// Both records are committed; the staged entry is spent.
	if err := s.OTP.Delete(ctx, email); err != nil {
		s.logger().Error("failed to delete staged booking",
			zap.String("email", email), zap.Error(err))
	}

	s.dispatchConfirmation(ctx, appt, staged.Email, staged.FirstName, staged.Pet.Name, staged.Pet.Type)
	return appt, nil
}
