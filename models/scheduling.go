package models

import "time"

// Scheduling is a confirmed appointment on a host's public booking page.
type Scheduling struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Observations string    `bson:"observations,omitempty" json:"observations,omitempty"`
	Date         time.Time `bson:"date" json:"date"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// ConfirmSchedulingRequest is the visitor-facing booking payload.
type ConfirmSchedulingRequest struct {
	Name         string    `json:"name" binding:"required"`
	Email        string    `json:"email" binding:"required"`
	Observations string    `json:"observations"`
	Date         time.Time `json:"date" binding:"required"`
}
