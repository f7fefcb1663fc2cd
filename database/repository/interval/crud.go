// File: database/repository/interval/crud.go
package intervalRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"taly/models"
)

// Replace swaps the user's entire availability set in one go. Interval
// submissions are full replacements, never partial updates.
func (r *mongoIntervalRepo) Replace(ctx context.Context, userID string, intervals []models.UserTimeInterval) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return err
	}

	if len(intervals) == 0 {
		return nil
	}

	docs := make([]interface{}, len(intervals))
	for i, interval := range intervals {
		if interval.ID == "" {
			interval.ID = uuid.New().String()
		}
		interval.UserID = userID
		docs[i] = interval
	}

	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *mongoIntervalRepo) GetByUser(ctx context.Context, userID string) ([]models.UserTimeInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var intervals []models.UserTimeInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *mongoIntervalRepo) GetByUserAndWeekDay(ctx context.Context, userID string, weekDay int) (*models.UserTimeInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "weekDay": weekDay}
	var interval models.UserTimeInterval
	if err := r.coll.FindOne(ctx, filter).Decode(&interval); err != nil {
		return nil, err
	}
	return &interval, nil
}
