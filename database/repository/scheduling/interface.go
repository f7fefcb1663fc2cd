// File: database/repository/scheduling/interface.go
package schedulingRepo

import (
	"context"
	"time"

	"taly/database"
	"taly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SchedulingRepository interface {
	Create(ctx context.Context, scheduling *models.Scheduling) error
	ExistsAt(ctx context.Context, userID string, date time.Time) (bool, error)
	GetByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]models.Scheduling, error)
}

type mongoSchedulingRepo struct {
	coll *mongo.Collection
}

// NewMongoSchedulingRepo constructs a new MongoDB SchedulingRepository.
func NewMongoSchedulingRepo() SchedulingRepository {
	db := database.MongoClient.Database("taly")
	return &mongoSchedulingRepo{
		coll: db.Collection("schedulings"),
	}
}
