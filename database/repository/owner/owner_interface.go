package ownerRepo

import (
	"context"

	"petopia/models"
)

// OwnerRepository defines the read surface the lifecycle engine needs from
// the owner directory. Get methods return (nil, nil) when no document matches.
type OwnerRepository interface {
	// GetByID retrieves an owner by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Owner, error)
}
