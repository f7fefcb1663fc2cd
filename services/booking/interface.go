package booking

import (
	"context"
	"time"

	intervalRepo "taly/database/repository/interval"
	schedulingRepo "taly/database/repository/scheduling"
	userRepo "taly/database/repository/user"
	"taly/models"

	"github.com/go-redis/redis/v8"
)

// SchedulingService confirms appointments picked on a public booking page.
type SchedulingService interface {
	ConfirmScheduling(ctx context.Context, username string, req models.ConfirmSchedulingRequest, now time.Time) (*models.Scheduling, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Users       userRepo.UserRepository
	Intervals   intervalRepo.IntervalRepository
	Schedulings schedulingRepo.SchedulingRepository
	Cache       *redis.Client
}
