package auth

import (
	"context"
	"time"

	accountRepo "taly/database/repository/account"
	sessionRepo "taly/database/repository/session"
	userRepo "taly/database/repository/user"
	"taly/models"

	"github.com/go-redis/redis/v8"
)

// AuthService runs the OAuth sign-in and calendar-connect flows and manages
// the sessions they produce.
type AuthService interface {
	BeginAuth(ctx context.Context, claimedUserID string, connectCalendar bool) (string, error)
	HandleCallback(ctx context.Context, state, code string) (*AuthResponse, error)
	SignOut(ctx context.Context, token string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users     userRepo.UserRepository
	Accounts  accountRepo.AccountRepository
	Sessions  sessionRepo.SessionRepository
	AuthCache *redis.Client
	Cache     *redis.Client
}

// AuthResponse carries the signed-in user and their bearer token.
type AuthResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
