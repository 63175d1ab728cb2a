package appointment

import (
	"context"
	"fmt"
	"strings"

	"petopia/models"

	"go.uber.org/zap"
)

// buildView assembles the display projection of an appointment, resolving
// the owner or guest, the pet, and the clinic/service names. Missing
// references degrade to empty fields rather than failing the read.
func (s *DefaultAppointmentService) buildView(ctx context.Context, appt *models.Appointment) (*models.AppointmentView, error) {
	view := &models.AppointmentView{
		Appointment:   *appt,
		FormattedDate: formatDate(appt.Date),
		FormattedTime: formatTime(appt.Date),
	}

	switch {
	case appt.OwnerID != "":
		owner, err := s.Owners.GetByID(ctx, appt.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch owner: %w", err)
		}
		if owner != nil {
			view.OwnerName = strings.TrimSpace(owner.FirstName + " " + owner.LastName)
		}
		if appt.PetID != "" {
			pet, err := s.Pets.GetByID(ctx, appt.PetID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch pet: %w", err)
			}
			if pet != nil {
				view.PetDetails = fmt.Sprintf("%s (%s)", pet.Name, pet.Type)
				view.PetAvatar = pet.Avatar
				view.PetAge = pet.Age
				view.PetGender = pet.Gender
			}
		}
	case appt.GuestID != "":
		guest, err := s.Guests.GetByID(ctx, appt.GuestID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch guest: %w", err)
		}
		if guest != nil {
			view.OwnerName = strings.TrimSpace(guest.FirstName + " " + guest.LastName)
			details := make([]string, 0, len(guest.Pets))
			for _, p := range guest.Pets {
				details = append(details, fmt.Sprintf("%s (%s)", p.Name, p.Type))
			}
			view.PetDetails = strings.Join(details, ", ")
		}
	}

	if clinic, err := s.Catalog.GetClinicByID(ctx, appt.ClinicID); err != nil {
		s.logger().Error("failed to fetch clinic for view", zap.Error(err))
	} else if clinic != nil {
		view.ClinicName = clinic.Name
	}
	if service, err := s.Catalog.GetServiceByID(ctx, appt.ServiceID); err != nil {
		s.logger().Error("failed to fetch service for view", zap.Error(err))
	} else if service != nil {
		view.ServiceName = service.Name
	}

	return view, nil
}

func (s *DefaultAppointmentService) buildViews(ctx context.Context, appts []models.Appointment) ([]models.AppointmentView, error) {
	views := make([]models.AppointmentView, 0, len(appts))
	for i := range appts {
		view, err := s.buildView(ctx, &appts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}
