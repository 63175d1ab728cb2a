package models

import "time"

// GuestPet is a pet snapshot embedded under a guest record.
type GuestPet struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Type   string `bson:"type" json:"type"`
	Breed  string `bson:"breed,omitempty" json:"breed,omitempty"`
	Gender string `bson:"gender,omitempty" json:"gender,omitempty"`
	Age    int    `bson:"age,omitempty" json:"age,omitempty"`
}

// Guest is a lightweight, unauthenticated participant created only through
// OTP-verified guest booking. Email is unique.
type Guest struct {
	ID           string     `bson:"id" json:"id"`
	FirstName    string     `bson:"first_name" json:"firstName"`
	LastName     string     `bson:"last_name" json:"lastName"`
	Email        string     `bson:"email" json:"email"`
	Phone        string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Pets         []GuestPet `bson:"pets" json:"pets"`
	Appointments []string   `bson:"appointments" json:"appointments"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}
