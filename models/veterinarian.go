package models

import "time"

// Veterinarian is an optional appointment participant.
type Veterinarian struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Phone             string    `bson:"phone" json:"phone"`
	Email             string    `bson:"email" json:"email"`
	LicenseNumber     string    `bson:"license_number" json:"licenseNumber"`
	ClinicID          string    `bson:"clinic_id" json:"clinic_id"`
	Specialties       []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Bio               string    `bson:"bio,omitempty" json:"bio,omitempty"`
	YearsOfExperience int       `bson:"years_of_experience" json:"yearsOfExperience"`
	PhotoURL          string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	AvailableDays     []string  `bson:"available_days,omitempty" json:"availableDays,omitempty"`
	AvailableHours    string    `bson:"available_hours,omitempty" json:"availableHours,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}
