package calendar

import (
	"context"
	"time"

	intervalRepo "taly/database/repository/interval"
	schedulingRepo "taly/database/repository/scheduling"
	userRepo "taly/database/repository/user"
	"taly/models"

	"github.com/go-redis/redis/v8"
)

// CalendarService answers the availability questions behind a public booking
// page: which days of a month are blocked, which hours of a day are open,
// and the rendered month grid.
type CalendarService interface {
	BlockedDates(ctx context.Context, username string, year, month int) (*models.BlockedDates, error)
	DayAvailability(ctx context.Context, username string, date, now time.Time) (*models.DayAvailability, error)
	MonthGrid(ctx context.Context, username string, year, month int, today time.Time) ([]models.CalendarWeek, error)
}

// DefaultCalendarService is the production implementation.
type DefaultCalendarService struct {
	Users       userRepo.UserRepository
	Intervals   intervalRepo.IntervalRepository
	Schedulings schedulingRepo.SchedulingRepository
	Cache       *redis.Client
}
