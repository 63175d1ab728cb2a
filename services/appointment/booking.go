package appointment

import (
	"context"
	"fmt"

	"petopia/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookForOwner books an appointment for a registered owner. The pet is
// matched against the owner's existing pets by name (case-insensitive) and
// type; a miss creates a new pet record.
func (s *DefaultAppointmentService) BookForOwner(ctx context.Context, req models.OwnerBookingRequest) (*models.Appointment, error) {
	if req.OwnerID == "" || req.PetName == "" || req.PetType == "" ||
		req.ServiceID == "" || req.ClinicID == "" || req.Date == "" {
		return nil, &ValidationError{Message: "missing required fields for registered owner booking"}
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

	pet, err := s.Pets.FindByOwnerNameType(ctx, req.OwnerID, req.PetName, req.PetType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up pet: %w", err)
	}
	if pet == nil {
		pet = &models.Pet{
			ID:        uuid.NewString(),
			OwnerID:   req.OwnerID,
			Name:      req.PetName,
			Type:      req.PetType,
			Breed:     req.PetBreed,
			Gender:    req.PetGender,
			Age:       req.PetAge,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Pets.Create(ctx, pet); err != nil {
			return nil, fmt.Errorf("failed to create pet: %w", err)
		}
		s.logger().Info("created pet for booking",
			zap.String("petID", pet.ID), zap.String("ownerID", req.OwnerID))
	}

	appt := &models.Appointment{
		ID:             uuid.NewString(),
		OwnerID:        req.OwnerID,
		PetID:          pet.ID,
		ClinicID:       req.ClinicID,
		VetID:          req.VetID,
		ServiceID:      req.ServiceID,
		Date:           date,
		Status:         models.StatusPending,
		Notes:          req.Notes,
		MedicalConcern: req.MedicalConcern,
		IsVerified:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.dispatchConfirmation(ctx, appt, owner.Email, owner.FirstName, pet.Name, pet.Type)
	return appt, nil
}
