package petRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"petopia/database"
	"petopia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPetRepo implements PetRepository using MongoDB.
type MongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo creates a new instance of PetRepository using MongoDB.
func NewMongoPetRepo() PetRepository {
	coll := database.MongoClient.Database("petopia").Collection("pets")
	repo := &MongoPetRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoPetRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new pet document.
func (r *MongoPetRepo) Create(ctx context.Context, pet *models.Pet) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	if pet.Avatar == "" {
		pet.Avatar = models.DefaultPetAvatar
	}
	if pet.MedicalHistory == nil {
		pet.MedicalHistory = []string{}
	}

	_, err := r.coll.InsertOne(ctx, pet)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// GetByID retrieves a pet by its unique ID.
func (r *MongoPetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var pet models.Pet
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pet with id %s: %w", id, err)
	}
	return &pet, nil
}

// FindByOwnerNameType retrieves an owner's pet matching the name
// (case-insensitive, whole string) and exact type.
func (r *MongoPetRepo) FindByOwnerNameType(ctx context.Context, ownerID, name, petType string) (*models.Pet, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"owner_id": ownerID,
		"name":     primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"},
		"type":     petType,
	}

	var pet models.Pet
	if err := r.coll.FindOne(ctx, filter).Decode(&pet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up pet %q for owner %s: %w", name, ownerID, err)
	}
	return &pet, nil
}

// AppendMedicalHistory appends a concern to the pet's medical history; the
// $addToSet keeps the log duplicate-free.
func (r *MongoPetRepo) AppendMedicalHistory(ctx context.Context, id, concern string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"medical_history": concern},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append medical history for pet %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pet with id %s not found", id)
	}
	return nil
}
