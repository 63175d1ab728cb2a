package models

// AppointmentEmail is the detail bundle for confirmation and status-update
// emails. Dates are preformatted display strings.
type AppointmentEmail struct {
	AppointmentID string
	ClinicName    string
	ClinicAddress string
	ClinicEmail   string
	Date          string
	ServiceName   string
	PetName       string
	PetType       string
	FirstName     string
	Notes         string
	Price         string
}

// FollowUpEmail is the detail bundle for the post-visit follow-up sent to
// the clinic after a clinic-initiated booking.
type FollowUpEmail struct {
	AppointmentID  string
	ClinicName     string
	FirstName      string
	LastName       string
	PetName        string
	ServiceName    string
	FollowUpDate   string
	Notes          string
	MedicalConcern string
}

// ReminderEmail is the detail bundle for scheduled appointment reminders.
type ReminderEmail struct {
	PetOwnerName string
	ClinicName   string
	Date         string
	StartTime    string
}

// ReceiptDetails is the input to receipt-document generation.
type ReceiptDetails struct {
	AppointmentID  string
	ClinicName     string
	ClinicAddress  string
	Date           string
	ServiceName    string
	PetName        string
	PetType        string
	Notes          string
	FirstName      string
	MedicalConcern string
}
