// File: database/repository/account/interface.go
package accountRepo

import (
	"context"

	"taly/database"
	"taly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AccountRepository interface {
	Link(ctx context.Context, account *models.Account) error
	GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.Account, error)
	GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.Account, error)
}

type mongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo constructs a new MongoDB AccountRepository.
func NewMongoAccountRepo() AccountRepository {
	db := database.MongoClient.Database("taly")
	return &mongoAccountRepo{
		coll: db.Collection("accounts"),
	}
}
