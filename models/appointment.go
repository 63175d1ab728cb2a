package models

import (
	"strings"
	"time"
)

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusPending        AppointmentStatus = "Pending"
	StatusConfirmed      AppointmentStatus = "Confirmed"
	StatusInProgress     AppointmentStatus = "In-progress"
	StatusReadyForPickup AppointmentStatus = "Ready-for-pickup"
	StatusCompleted      AppointmentStatus = "Completed"
	StatusCanceled       AppointmentStatus = "Canceled"
)

// ParseAppointmentStatus normalizes a client-supplied status string.
// Matching is case-insensitive and the "cancelled" spelling is accepted.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "confirmed":
		return StatusConfirmed, true
	case "in-progress":
		return StatusInProgress, true
	case "ready-for-pickup":
		return StatusReadyForPickup, true
	case "completed":
		return StatusCompleted, true
	case "canceled", "cancelled":
		return StatusCanceled, true
	default:
		return "", false
	}
}

// Appointment is the central lifecycle entity. Exactly one of OwnerID or
// GuestID is set; the status timestamps are mutually exclusive and always
// reflect the current status.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	OwnerID   string            `bson:"owner_id,omitempty" json:"owner_id,omitempty"`
	GuestID   string            `bson:"guest_id,omitempty" json:"guest_id,omitempty"`
	PetID     string            `bson:"pet_id,omitempty" json:"pet_id,omitempty"`
	ClinicID  string            `bson:"clinic_id" json:"clinic_id"`
	VetID     string            `bson:"vet_id,omitempty" json:"vet_id,omitempty"`
	ServiceID string            `bson:"service_id" json:"service_id"`
	Date      time.Time         `bson:"date" json:"date"`
	Status    AppointmentStatus `bson:"status" json:"status"`

	Notes          string `bson:"notes,omitempty" json:"notes,omitempty"`
	MedicalConcern string `bson:"medical_concern,omitempty" json:"medical_concern,omitempty"`
	Price          string `bson:"price,omitempty" json:"price,omitempty"`

	ConfirmedAt *time.Time `bson:"confirmed_at,omitempty" json:"confirmedAt,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	RejectedAt  *time.Time `bson:"rejected_at,omitempty" json:"rejectedAt,omitempty"`

	IsVerified bool `bson:"is_verified" json:"isVerified"`

	// Reminder flags are monotonic: once set they are never cleared.
	Reminder1DaySent  bool `bson:"reminder_1day_sent" json:"reminder1DaySent"`
	Reminder5HourSent bool `bson:"reminder_5hour_sent" json:"reminder5HourSent"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
