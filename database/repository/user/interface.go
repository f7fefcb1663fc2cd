// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"taly/database"
	"taly/models"
	"taly/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("taly")
	repo := &mongoUserRepo{
		coll: db.Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("user repo: %v", err)
	}
	return repo
}
