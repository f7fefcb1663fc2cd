// File: database/repository/interval/interface.go
package intervalRepo

import (
	"context"

	"taly/database"
	"taly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type IntervalRepository interface {
	Replace(ctx context.Context, userID string, intervals []models.UserTimeInterval) error
	GetByUser(ctx context.Context, userID string) ([]models.UserTimeInterval, error)
	GetByUserAndWeekDay(ctx context.Context, userID string, weekDay int) (*models.UserTimeInterval, error)
}

type mongoIntervalRepo struct {
	coll *mongo.Collection
}

// NewMongoIntervalRepo constructs a new MongoDB IntervalRepository.
func NewMongoIntervalRepo() IntervalRepository {
	db := database.MongoClient.Database("taly")
	return &mongoIntervalRepo{
		coll: db.Collection("userTimeIntervals"),
	}
}
