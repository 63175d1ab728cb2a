package models

// AppointmentView is the display projection of an appointment with its
// resolved references. It is assembled on read and never persisted.
type AppointmentView struct {
	Appointment

	OwnerName  string `json:"ownerName"`
	PetDetails string `json:"petDetails"`

	PetAvatar string `json:"petAvatar,omitempty"`
	PetAge    int    `json:"petAge,omitempty"`
	PetGender string `json:"petGender,omitempty"`

	ClinicName  string `json:"clinicName,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`

	// Display-only strings derived from Date.
	FormattedDate string `json:"formattedDate"`
	FormattedTime string `json:"formattedTime"`
}

// ClinicOwnerSummary aggregates, per owner, the pets and services seen on
// that owner's appointments at one clinic.
type ClinicOwnerSummary struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	Pets      []Pet     `json:"pets"`
	Services  []Service `json:"services"`
}
