// File: taly/handlers/bundle.go
package handlers

import (
	sessionRepoPkg "taly/database/repository/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	SessionRepo sessionRepoPkg.SessionRepository

	// User endpoints
	ClaimUsernameHandler    gin.HandlerFunc
	GetUserHandler          gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	SetTimeIntervalsHandler gin.HandlerFunc

	// Calendar endpoints
	BlockedDatesHandler    gin.HandlerFunc
	DayAvailabilityHandler gin.HandlerFunc
	MonthGridHandler       gin.HandlerFunc

	// Booking endpoints
	ConfirmSchedulingHandler gin.HandlerFunc

	// Auth endpoints
	GoogleLoginHandler    gin.HandlerFunc
	GoogleCallbackHandler gin.HandlerFunc
	SignOutHandler        gin.HandlerFunc
}
