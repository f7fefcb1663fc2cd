package models

// Account links a user to an external OAuth provider identity.
// The refresh token is what lets the service read the connected calendar later.
type Account struct {
	ID                string `bson:"id" json:"id"`
	UserID            string `bson:"userId" json:"userId"`
	Provider          string `bson:"provider" json:"provider"`
	ProviderAccountID string `bson:"providerAccountId" json:"providerAccountId"`
	Type              string `bson:"type" json:"type"`
	RefreshToken      string `bson:"refreshToken,omitempty" json:"-"`
	AccessToken       string `bson:"accessToken,omitempty" json:"-"`
	ExpiresAt         int64  `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	TokenType         string `bson:"tokenType,omitempty" json:"tokenType,omitempty"`
	Scope             string `bson:"scope,omitempty" json:"scope,omitempty"`
}
