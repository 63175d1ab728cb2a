package ownerRepo

import (
	"context"
	"fmt"
	"time"

	"petopia/database"
	"petopia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOwnerRepo implements OwnerRepository using MongoDB.
type MongoOwnerRepo struct {
	coll *mongo.Collection
}

// NewMongoOwnerRepo creates a new instance of OwnerRepository using MongoDB.
func NewMongoOwnerRepo() OwnerRepository {
	coll := database.MongoClient.Database("petopia").Collection("owners")
	repo := &MongoOwnerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoOwnerRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an owner by its unique ID.
func (r *MongoOwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var owner models.Owner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&owner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch owner with id %s: %w", id, err)
	}
	return &owner, nil
}
