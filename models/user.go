// models/user.go
package models

import "time"

// User represents a registered host with a public booking page.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ClaimUsernameRequest is the payload for claiming a public booking handle.
type ClaimUsernameRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// UpdateProfileRequest is the payload for the authenticated profile update.
type UpdateProfileRequest struct {
	Bio string `json:"bio"`
}
