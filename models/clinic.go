package models

import "time"

// Clinic is a catalog entity; the lifecycle engine only reads it.
type Clinic struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Name          string    `bson:"name" json:"name"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	ContactNumber string    `bson:"contact_number,omitempty" json:"contact_number,omitempty"`
	Email         string    `bson:"email" json:"email"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Status        string    `bson:"status" json:"status"`
	Days          string    `bson:"days,omitempty" json:"days,omitempty"`
	OpenTime      string    `bson:"open_time,omitempty" json:"open_time,omitempty"`
	CloseTime     string    `bson:"close_time,omitempty" json:"close_time,omitempty"`
	Image         string    `bson:"image,omitempty" json:"image,omitempty"`
	Logo          string    `bson:"logo,omitempty" json:"logo,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
