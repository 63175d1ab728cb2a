package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"petopia/database"
	"petopia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	clinics  *mongo.Collection
	services *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("petopia")
	return &MongoCatalogRepo{
		clinics:  db.Collection("clinics"),
		services: db.Collection("services"),
	}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetClinicByID retrieves a clinic by its unique ID.
func (r *MongoCatalogRepo) GetClinicByID(ctx context.Context, id string) (*models.Clinic, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var clinic models.Clinic
	if err := r.clinics.FindOne(ctx, bson.M{"id": id}).Decode(&clinic); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch clinic with id %s: %w", id, err)
	}
	return &clinic, nil
}

// GetServiceByID retrieves a service by its unique ID.
func (r *MongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}
