package petRepo

import (
	"context"

	"petopia/models"
)

// PetRepository defines methods for pet data access.
// Get methods return (nil, nil) when no document matches.
type PetRepository interface {
	// Create inserts a new pet record.
	Create(ctx context.Context, pet *models.Pet) error
	// GetByID retrieves a pet by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	// FindByOwnerNameType retrieves an owner's pet matching the name
	// (case-insensitive) and exact type.
	FindByOwnerNameType(ctx context.Context, ownerID, name, petType string) (*models.Pet, error)
	// AppendMedicalHistory appends a concern to the pet's medical history,
	// skipping entries already present.
	AppendMedicalHistory(ctx context.Context, id, concern string) error
}
