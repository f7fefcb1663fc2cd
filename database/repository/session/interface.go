// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"

	"taly/database"
	"taly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	db := database.MongoClient.Database("taly")
	return &mongoSessionRepo{
		coll: db.Collection("sessions"),
	}
}
