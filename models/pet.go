package models

import "time"

// DefaultPetAvatar is used when a pet has no uploaded avatar.
const DefaultPetAvatar = "/images/pet-default.jpg"

// Pet belongs to exactly one owner. MedicalHistory is an append-only,
// duplicate-free log of concern strings.
type Pet struct {
	ID             string    `bson:"id" json:"id"`
	OwnerID        string    `bson:"owner_id" json:"owner_id"`
	Name           string    `bson:"name" json:"name"`
	Type           string    `bson:"type" json:"type"`
	Breed          string    `bson:"breed,omitempty" json:"breed,omitempty"`
	Age            int       `bson:"age,omitempty" json:"age,omitempty"`
	Gender         string    `bson:"gender,omitempty" json:"gender,omitempty"`
	Avatar         string    `bson:"avatar" json:"avatar"`
	MedicalHistory []string  `bson:"medical_history" json:"medical_history"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
