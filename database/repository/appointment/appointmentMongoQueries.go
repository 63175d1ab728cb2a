// File: database/repository/appointment/appointmentMongoQueries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"petopia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findMany runs a filtered find and decodes the cursor.
func (r *MongoAppointmentRepo) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// GetAll retrieves all appointments sorted by date descending.
func (r *MongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

// GetByOwner retrieves all appointments for an owner.
func (r *MongoAppointmentRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"owner_id": ownerID}, nil)
}

// GetByClinic retrieves all appointments for a clinic sorted by date descending.
func (r *MongoAppointmentRepo) GetByClinic(ctx context.Context, clinicID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"clinic_id": clinicID}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

// FindConfirmedInWindow retrieves Confirmed appointments with a date in
// [from, to) whose given reminder flag is not yet set.
func (r *MongoAppointmentRepo) FindConfirmedInWindow(ctx context.Context, from, to time.Time, flag models.ReminderFlag) ([]models.Appointment, error) {
	filter := bson.M{
		"status":     models.StatusConfirmed,
		"date":       bson.M{"$gte": from, "$lt": to},
		string(flag): bson.M{"$ne": true},
	}
	return r.findMany(ctx, filter, nil)
}
