package models

import "time"

// DefaultOwnerAvatar is used when an owner has no uploaded avatar.
const DefaultOwnerAvatar = "/images/owner-default.jpg"

// Owner is a registered participant linked to a user identity record.
// A guest-owner (IsGuest) is created ad hoc for direct booking without
// full registration.
type Owner struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	FirstName string    `bson:"firstname" json:"firstname"`
	LastName  string    `bson:"lastname" json:"lastname"`
	Email     string    `bson:"email" json:"email"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PetCount  int       `bson:"pet_count" json:"pet_count"`
	IsGuest   bool      `bson:"is_guest" json:"isGuest"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
