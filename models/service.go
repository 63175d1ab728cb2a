package models

import "time"

// Service is a clinic service offering; the lifecycle engine only reads it.
type Service struct {
	ID                string    `bson:"id" json:"id"`
	ClinicID          string    `bson:"clinic_id" json:"clinic_id"`
	Name              string    `bson:"name" json:"name"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	EstimatedDuration int       `bson:"estimated_duration,omitempty" json:"estimated_duration,omitempty"`
	Rate              string    `bson:"rate,omitempty" json:"rate,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}
