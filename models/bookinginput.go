package models

import (
	"encoding/json"
	"strings"
)

// OwnerBookingRequest is the payload for a registered-owner booking.
type OwnerBookingRequest struct {
	OwnerID        string `json:"owner_id"`
	PetName        string `json:"petName"`
	PetType        string `json:"petType"`
	PetBreed       string `json:"petBreed"`
	PetGender      string `json:"petGender"`
	PetAge         int    `json:"petAge"`
	ServiceID      string `json:"service_id"`
	ClinicID       string `json:"clinic_id"`
	VetID          string `json:"vet_id"`
	Date           string `json:"date"`
	Notes          string `json:"notes"`
	MedicalConcern string `json:"medical_concern"`
}

// GuestBookingRequest is the payload for a guest booking. No record is
// persisted until the OTP is verified.
type GuestBookingRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PetName        string `json:"petName"`
	PetType        string `json:"petType"`
	PetBreed       string `json:"petBreed"`
	PetGender      string `json:"petGender"`
	PetAge         int    `json:"petAge"`
	ClinicID       string `json:"clinic_id"`
	ServiceID      string `json:"service_id"`
	VetID          string `json:"vet_id"`
	Date           string `json:"date"`
	Notes          string `json:"notes"`
	MedicalConcern string `json:"medical_concern"`
}

// ClinicBookingRequest is the payload for a clinic-initiated booking for an
// existing owner and pet.
type ClinicBookingRequest struct {
	OwnerID        string       `json:"owner_id"`
	PetID          string       `json:"pet_id"`
	ClinicID       string       `json:"clinic_id"`
	ServiceID      string       `json:"service_id"`
	VetID          string       `json:"vet_id"`
	Date           string       `json:"date"`
	Notes          string       `json:"notes"`
	MedicalConcern StringOrList `json:"medical_concern"`
}

// AppointmentUpdate carries the optional fields of a status-transition
// request. Empty fields are left untouched.
type AppointmentUpdate struct {
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Price          string `json:"price"`
	MedicalConcern string `json:"medical_concern"`
}

// StringOrList accepts either a JSON string or an array of strings; a list
// is flattened with ", ".
type StringOrList string

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringOrList(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringOrList(strings.Join(many, ", "))
	return nil
}

func (s StringOrList) String() string { return string(s) }
