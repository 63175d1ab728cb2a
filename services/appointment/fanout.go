package appointment

import (
	"context"

	"petopia/models"

	"go.uber.org/zap"
)

// verifyURL is the link embedded in the appointment QR code.
func (s *DefaultAppointmentService) verifyURL(appointmentID string) string {
	return s.FrontendURL + "/verify?appointmentId=" + appointmentID
}

// renderReceipt produces the receipt document with its embedded QR code.
// Failures are logged and yield nil; the email goes out without an
// attachment rather than not at all.
func (s *DefaultAppointmentService) renderReceipt(details models.ReceiptDetails) []byte {
	qr, err := s.Documents.QRCode(s.verifyURL(details.AppointmentID))
	if err != nil {
		s.logger().Error("failed to generate QR code",
			zap.String("appointmentID", details.AppointmentID), zap.Error(err))
		qr = nil
	}
	receipt, err := s.Documents.Receipt(details, qr)
	if err != nil {
		s.logger().Error("failed to generate receipt",
			zap.String("appointmentID", details.AppointmentID), zap.Error(err))
		return nil
	}
	return receipt
}

// dispatchConfirmation sends the booking confirmation with the receipt
// attached. The booking is already committed; nothing here rolls it back.
func (s *DefaultAppointmentService) dispatchConfirmation(ctx context.Context, appt *models.Appointment, email, firstName, petName, petType string) {
	if email == "" {
		s.logger().Warn("no recipient email, skipping confirmation",
			zap.String("appointmentID", appt.ID))
		return
	}

	var clinicName, clinicAddress, clinicEmail, serviceName string
	if clinic, err := s.Catalog.GetClinicByID(ctx, appt.ClinicID); err != nil {
		s.logger().Error("failed to load clinic for confirmation", zap.Error(err))
	} else if clinic != nil {
		clinicName, clinicAddress, clinicEmail = clinic.Name, clinic.Address, clinic.Email
	}
	if service, err := s.Catalog.GetServiceByID(ctx, appt.ServiceID); err != nil {
		s.logger().Error("failed to load service for confirmation", zap.Error(err))
	} else if service != nil {
		serviceName = service.Name
	}

	receipt := s.renderReceipt(models.ReceiptDetails{
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
	}
	if err := s.Notifier.SendBookingConfirmation(ctx, email, details, receipt); err != nil {
		s.logger().Error("failed to send booking confirmation",
			zap.String("appointmentID", appt.ID),
			zap.String("email", email), zap.Error(err))
	}
}
