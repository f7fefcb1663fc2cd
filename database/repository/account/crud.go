// File: database/repository/account/crud.go
package accountRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taly/models"
)

// Link stores (or refreshes) the binding between a user and an external
// provider identity. Re-linking the same provider account replaces the
// stored tokens rather than duplicating the record.
func (r *mongoAccountRepo) Link(ctx context.Context, account *models.Account) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	filter := bson.M{
		"provider":          account.Provider,
		"providerAccountId": account.ProviderAccountID,
	}
	update := bson.M{
		"$set": bson.M{
			"userId":       account.UserID,
			"type":         account.Type,
			"refreshToken": account.RefreshToken,
			"accessToken":  account.AccessToken,
			"expiresAt":    account.ExpiresAt,
			"tokenType":    account.TokenType,
			"scope":        account.Scope,
		},
		"$setOnInsert": bson.M{"id": account.ID},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoAccountRepo) GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider": provider, "providerAccountId": providerAccountID}
	var account models.Account
	if err := r.coll.FindOne(ctx, filter).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *mongoAccountRepo) GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "provider": provider}
	var account models.Account
	if err := r.coll.FindOne(ctx, filter).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}
