// Package otp holds staged, time-boxed booking payloads pending one-time-code
// verification. The broker is a keyed TTL store: re-staging a key overwrites
// the prior entry, verification failures leave the entry intact, and the
// lifecycle engine deletes the entry only after the verified records are
// durably created.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"petopia/models"
)

// DefaultTTL is how long a staged entry stays verifiable.
const DefaultTTL = 5 * time.Minute

// StagedBooking is a full appointment-to-be payload held keyed by email
// until the guest verifies the code.
type StagedBooking struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	Pet            models.GuestPet `json:"pet"`
	ClinicID       string          `json:"clinic_id"`
	ServiceID      string          `json:"service_id"`
	VetID          string          `json:"vet_id,omitempty"`
	Date           time.Time       `json:"date"`
	Notes          string          `json:"notes,omitempty"`
	MedicalConcern string          `json:"medical_concern,omitempty"`

	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the entry's absolute expiry has passed.
func (s *StagedBooking) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Broker stages booking payloads with an absolute expiry.
// Get returns (nil, nil) when no live entry exists for the key.
type Broker interface {
	Stage(ctx context.Context, key string, entry StagedBooking, ttl time.Duration) error
	Get(ctx context.Context, key string) (*StagedBooking, error)
	Delete(ctx context.Context, key string) error
}

// GenerateCode returns a uniformly random 6-digit numeric code in
// [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
