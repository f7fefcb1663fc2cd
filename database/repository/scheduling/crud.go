// File: database/repository/scheduling/crud.go
package schedulingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taly/models"
)

func (r *mongoSchedulingRepo) Create(ctx context.Context, scheduling *models.Scheduling) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if scheduling.ID == "" {
		scheduling.ID = uuid.New().String()
	}
	scheduling.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, scheduling)
	return err
}

func (r *mongoSchedulingRepo) ExistsAt(ctx context.Context, userID string, date time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "date": date}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoSchedulingRepo) GetByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]models.Scheduling, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": start, "$lt": end},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedulings []models.Scheduling
	if err := cursor.All(ctx, &schedulings); err != nil {
		return nil, err
	}
	return schedulings, nil
}
