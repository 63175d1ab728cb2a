package catalogRepo

import (
	"context"

	"petopia/models"
)

// CatalogRepository is the read surface the lifecycle engine needs from the
// clinic/service catalog. Get methods return (nil, nil) when no document
// matches.
type CatalogRepository interface {
	// GetClinicByID retrieves a clinic by its unique ID.
	GetClinicByID(ctx context.Context, id string) (*models.Clinic, error)
	// GetServiceByID retrieves a service by its unique ID.
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
}
