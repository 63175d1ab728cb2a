package appointment

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "petopia/database/repository/appointment"
	"petopia/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetByID returns the display projection of a single appointment.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.AppointmentView, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, &NotFoundError{Resource: "appointment"}
	}
	return s.buildView(ctx, appt)
}

// ListAll returns every appointment, newest first.
func (s *DefaultAppointmentService) ListAll(ctx context.Context) ([]models.AppointmentView, error) {
	appts, err := s.Appointments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return s.buildViews(ctx, appts)
}

// ListByOwner returns an owner's appointments. An owner with none is
// reported as not found.
func (s *DefaultAppointmentService) ListByOwner(ctx context.Context, ownerID string) ([]models.AppointmentView, error) {
	appts, err := s.Appointments.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if len(appts) == 0 {
		return nil, &NotFoundError{Resource: "appointments for this owner"}
	}
	return s.buildViews(ctx, appts)
}

// ListByClinic returns a clinic's appointments, newest first. An empty list
// is a valid result.
func (s *DefaultAppointmentService) ListByClinic(ctx context.Context, clinicID string) ([]models.AppointmentView, error) {
	if err := uuid.Validate(clinicID); err != nil {
		return nil, &ValidationError{Message: "invalid clinic id"}
	}
	appts, err := s.Appointments.GetByClinic(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return s.buildViews(ctx, appts)
}

// Delete hard-deletes an appointment.
func (s *DefaultAppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.Appointments.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return &NotFoundError{Resource: "appointment"}
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

// OwnersWithAppointments aggregates, per registered owner, the distinct pets
// and services seen on that owner's appointments at the given clinic. Guest
// appointments are excluded.
func (s *DefaultAppointmentService) OwnersWithAppointments(ctx context.Context, clinicID string) ([]models.ClinicOwnerSummary, error) {
	if err := uuid.Validate(clinicID); err != nil {
		return nil, &ValidationError{Message: "invalid clinic id"}
	}
	appts, err := s.Appointments.GetByClinic(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	var order []string
	summaries := make(map[string]*models.ClinicOwnerSummary)
	seenPets := make(map[string]map[string]bool)
	seenServices := make(map[string]map[string]bool)

	for i := range appts {
		appt := &appts[i]
		if appt.OwnerID == "" {
			continue
		}

		summary, ok := summaries[appt.OwnerID]
		if !ok {
			owner, err := s.Owners.GetByID(ctx, appt.OwnerID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch owner: %w", err)
			}
			if owner == nil {
				s.logger().Warn("appointment references missing owner",
					zap.String("appointmentID", appt.ID), zap.String("ownerID", appt.OwnerID))
				continue
			}
			summary = &models.ClinicOwnerSummary{
				ID:        owner.ID,
				FirstName: owner.FirstName,
				LastName:  owner.LastName,
				Email:     owner.Email,
				Pets:      []models.Pet{},
				Services:  []models.Service{},
			}
			summaries[appt.OwnerID] = summary
			seenPets[appt.OwnerID] = make(map[string]bool)
			seenServices[appt.OwnerID] = make(map[string]bool)
			order = append(order, appt.OwnerID)
		}

		if appt.PetID != "" && !seenPets[appt.OwnerID][appt.PetID] {
			pet, err := s.Pets.GetByID(ctx, appt.PetID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch pet: %w", err)
			}
			if pet != nil {
				summary.Pets = append(summary.Pets, *pet)
				seenPets[appt.OwnerID][appt.PetID] = true
			}
		}
		if appt.ServiceID != "" && !seenServices[appt.OwnerID][appt.ServiceID] {
			service, err := s.Catalog.GetServiceByID(ctx, appt.ServiceID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch service: %w", err)
			}
			if service != nil {
				summary.Services = append(summary.Services, *service)
				seenServices[appt.OwnerID][appt.ServiceID] = true
			}
		}
	}

	if len(order) == 0 {
		return nil, &NotFoundError{Resource: "appointments for this clinic"}
	}

	result := make([]models.ClinicOwnerSummary, 0, len(order))
	for _, ownerID := range order {
		result = append(result, *summaries[ownerID])
	}
	return result, nil
}
