package user

import (
	"context"

	intervalRepo "taly/database/repository/interval"
	userRepo "taly/database/repository/user"
	"taly/models"
)

type UserService interface {
	ClaimUsername(ctx context.Context, req models.ClaimUsernameRequest) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, bio string) error
	SetTimeIntervals(ctx context.Context, userID string, intervals []models.IntervalPayload) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Intervals intervalRepo.IntervalRepository
}
