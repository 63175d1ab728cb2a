package guestRepo

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

// MongoGuestRepo implements GuestRepository using MongoDB.
type MongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo creates a new instance of GuestRepository using MongoDB.
func NewMongoGuestRepo() GuestRepository {
	coll := database.MongoClient.Database("petopia").Collection("guests")
	repo := &MongoGuestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoGuestRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new guest document.
func (r *MongoGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	guest.CreatedAt = now
	guest.UpdatedAt = now
	if guest.Appointments == nil {
		guest.Appointments = []string{}
	}

	_, err := r.coll.InsertOne(ctx, guest)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// GetByID retrieves a guest by its unique ID.
func (r *MongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByEmail retrieves a guest by its unique email.
func (r *MongoGuestRepo) GetByEmail(ctx context.Context, email string) (*models.Guest, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoGuestRepo) findOne(ctx context.Context, filter bson.M) (*models.Guest, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, filter).Decode(&guest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch guest: %w", err)
	}
	return &guest, nil
}

// AppendAppointment adds an appointment reference to the guest's list.
func (r *MongoGuestRepo) AppendAppointment(ctx context.Context, guestID, appointmentID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"appointments": appointmentID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": guestID}, update)
	if err != nil {
		return fmt.Errorf("failed to append appointment to guest %s: %w", guestID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s not found", guestID)
	}
	return nil
}
