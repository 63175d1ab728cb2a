package notification

import (
	"fmt"

	"petopia/models"
)

const autoFooter = `<hr><p style="font-size: 12px; color: gray;">This is an automated message from Petopia. Please do not reply to this email.</p>`

func otpBody(code string) string {
	return fmt.Sprintf(`
		<p>Hello,</p>
		<p>Your OTP code is: <strong>%s</strong>. This code will expire in 5 minutes.</p>
		<p>Thanks for choosing <strong>Petopia</strong> 🐾</p>
		<br /><small>This is an automated email. Please do not reply to this message.</small>`, code)
}

func confirmationBody(d models.AppointmentEmail) string {
	return fmt.Sprintf(`
		<h2>Appointment Confirmation</h2>
		<p>Thank you %s for booking an appointment at <strong>%s</strong>!</p>
		<p><strong>Appointment ID:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Service:</strong> %s</p>
		<p><strong>Pet Name:</strong> %s</p>
		<p><strong>Clinic Address:</strong> %s</p>
		<p><strong>Notes:</strong> %s</p>
		<p>We look forward to seeing you and your furry friend!</p>%s`,
		d.FirstName, d.ClinicName, d.AppointmentID, d.Date, d.ServiceName, d.PetName, d.ClinicAddress, d.Notes, autoFooter)
}

// statusUpdate returns the subject and body for a status-transition email.
func statusUpdate(d models.AppointmentEmail, status models.AppointmentStatus) (string, string) {
	switch status {
	case models.StatusConfirmed:
		return "Service Confirmed - Petopia", fmt.Sprintf(`
			<h2>Your Service is Confirmed!</h2>
			<p>Thank you %s for booking an appointment at <strong>%s</strong>!</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Pet Name:</strong> %s</p>
			<p>We look forward to seeing you and your furry friend!</p>%s`,
			d.FirstName, d.ClinicName, d.Date, d.ServiceName, d.PetName, autoFooter)
	case models.StatusCompleted:
		return "Service Completed - Petopia", fmt.Sprintf(`
			<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: auto; border: 1px solid #ddd;">
				<h2 style="text-align: center; color: #4CAF50;">🐾 Petopia Invoice 🐾</h2>
				<p style="text-align: center;">Thank you for visiting <strong>%s</strong>!</p>
				<h3>Appointment Details:</h3>
				<p><strong>Date &amp; Time:</strong> %s</p>
				<p><strong>Service:</strong> %s</p>
				<p><strong>Pet Name:</strong> %s</p>
				<p><strong>Notes:</strong> %s</p>
				<h3>Billing Summary:</h3>
				<p><strong>Total Amount:</strong> %s</p>
				<p style="text-align: center;">📍 %s</p>
				<p style="text-align: center; font-size: 14px; color: #888;">
					If you have any questions, please contact us at <strong>%s</strong>.<br>
					Thank you and see you again soon!
				</p>%s
			</div>`,
			d.ClinicName, d.Date, d.ServiceName, d.PetName, d.Notes, d.Price, d.ClinicAddress, d.ClinicEmail, autoFooter)
	case models.StatusCanceled:
		return "Appointment Cancelled - Petopia", fmt.Sprintf(`
			<h2>Your Appointment has been Cancelled</h2>
			<p>We're sorry to inform you that your appointment at <strong>%s</strong> has been cancelled.</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Pet Name:</strong> %s</p>
			<p>If you have any questions, please contact us.</p>%s`,
			d.ClinicName, d.Date, d.ServiceName, d.PetName, autoFooter)
	case models.StatusInProgress:
		return "Service In Progress - Petopia", fmt.Sprintf(`
			<h2>Service is Currently In progress!</h2>
			<p>Thank you for your patience while we take care of your furry friend at <strong>%s</strong>.</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Pet Name:</strong> %s</p>
			<p>We will keep you updated on the progress!</p>%s`,
			d.ClinicName, d.Date, d.ServiceName, d.PetName, autoFooter)
	case models.StatusReadyForPickup:
		return "Ready for Pickup - Petopia", fmt.Sprintf(`
			<h2>Your Pet is Ready for Pickup!</h2>
			<p>%s is all done at <strong>%s</strong> and ready to go home.</p>
			<p><strong>Service:</strong> %s</p>
			<p>See you soon!</p>%s`,
			d.PetName, d.ClinicName, d.ServiceName, autoFooter)
	default: // Pending and any future states share the generic notice.
		return "Appointment Update - Petopia", fmt.Sprintf(`
			<h2>Your Appointment has been Updated</h2>
			<p>Your appointment at <strong>%s</strong> is now <strong>%s</strong>.</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Pet Name:</strong> %s</p>%s`,
			d.ClinicName, string(status), d.Date, d.ServiceName, d.PetName, autoFooter)
	}
}

func followUpBody(d models.FollowUpEmail) string {
	return fmt.Sprintf(`
		<h2>Follow-up Visit Summary</h2>
		<p>Appointment <strong>%s</strong> at <strong>%s</strong> for %s %s.</p>
		<p><strong>Pet:</strong> %s</p>
		<p><strong>Service:</strong> %s</p>
		<p><strong>Suggested follow-up date:</strong> %s</p>
		<p><strong>Notes:</strong> %s</p>
		<p><strong>Medical concern:</strong> %s</p>%s`,
		d.AppointmentID, d.ClinicName, d.FirstName, d.LastName, d.PetName, d.ServiceName, d.FollowUpDate, d.Notes, d.MedicalConcern, autoFooter)
}

func reminderBody(d models.ReminderEmail) string {
	startTime := d.StartTime
	if startTime == "" {
		startTime = "N/A"
	}
	return fmt.Sprintf(`
		<h2>Hi %s!</h2>
		<p>This is a friendly reminder that you have an appointment scheduled at <strong>%s</strong>.</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time:</strong> %s</p>
		<p>See you soon! 🐾</p>
		<br/><p>- Petopia Team</p>%s`,
		d.PetOwnerName, d.ClinicName, d.Date, startTime, autoFooter)
}
