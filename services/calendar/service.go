package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taly/models"
	"taly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BlockedDates computes one month's unavailability for a host. A weekday is
// blocked when the host has no enabled interval on it; a specific date is
// blocked when every bookable hour slot of its weekday is already taken.
// Date blocking is keyed by day-of-month number and scoped to the queried
// month only, matching the booking widget's contract.
func (s *DefaultCalendarService) BlockedDates(ctx context.Context, username string, year, month int) (*models.BlockedDates, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	cacheKey := fmt.Sprintf("%s%s:%d:%d", utils.BlockedDatesCachePrefix, user.ID, year, month)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var blocked models.BlockedDates
			if err := json.Unmarshal([]byte(cached), &blocked); err == nil {
				return &blocked, nil
			}
		}
	}

	intervals, err := s.Intervals.GetByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load time intervals: %w", err)
	}

	enabledByWeekDay := make(map[int]models.UserTimeInterval, len(intervals))
	for _, interval := range intervals {
		enabledByWeekDay[interval.WeekDay] = interval
	}

	blocked := &models.BlockedDates{
		BlockedWeekDays: []int{},
		BlockedDates:    []int{},
	}
	for weekDay := 0; weekDay < 7; weekDay++ {
		if _, ok := enabledByWeekDay[weekDay]; !ok {
			blocked.BlockedWeekDays = append(blocked.BlockedWeekDays, weekDay)
		}
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	schedulings, err := s.Schedulings.GetByUserBetween(ctx, user.ID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedulings: %w", err)
	}

	bookedPerDay := make(map[int]int)
	for _, scheduling := range schedulings {
		bookedPerDay[scheduling.Date.UTC().Day()]++
	}

	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		interval, ok := enabledByWeekDay[int(date.Weekday())]
		if !ok {
			// The whole weekday is blocked already.
			continue
		}
		slots := (interval.EndTimeInMinutes - interval.StartTimeInMinutes) / MinIntervalMinutes
		if bookedPerDay[day] >= slots {
			blocked.BlockedDates = append(blocked.BlockedDates, day)
		}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(blocked); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.BlockedDatesCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache blocked dates", zap.Error(err))
			}
		}
	}

	return blocked, nil
}

// DayAvailability lists the hour slots a host's weekly interval makes
// possible on the given date, and the subset still open: not booked and not
// already past relative to now.
func (s *DefaultCalendarService) DayAvailability(ctx context.Context, username string, date, now time.Time) (*models.DayAvailability, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	availability := &models.DayAvailability{
		PossibleTimes:  []int{},
		AvailableTimes: []int{},
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond).Before(now) {
		// The whole day is in the past.
		return availability, nil
	}

	interval, err := s.Intervals.GetByUserAndWeekDay(ctx, user.ID, int(dayStart.Weekday()))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return availability, nil
		}
		return nil, fmt.Errorf("failed to load time interval: %w", err)
	}

	startHour := interval.StartTimeInMinutes / 60
	endHour := interval.EndTimeInMinutes / 60

	schedulings, err := s.Schedulings.GetByUserBetween(ctx, user.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load schedulings: %w", err)
	}
	bookedHours := make(map[int]bool, len(schedulings))
	for _, scheduling := range schedulings {
		bookedHours[scheduling.Date.In(dayStart.Location()).Hour()] = true
	}

	for hour := startHour; hour < endHour; hour++ {
		availability.PossibleTimes = append(availability.PossibleTimes, hour)

		slot := dayStart.Add(time.Duration(hour) * time.Hour)
		if !bookedHours[hour] && slot.After(now) {
			availability.AvailableTimes = append(availability.AvailableTimes, hour)
		}
	}
	return availability, nil
}

// FetchBlockedDates lets the service stand in as the grid widget's provider.
func (s *DefaultCalendarService) FetchBlockedDates(ctx context.Context, username string, year, month int) (*models.BlockedDates, error) {
	return s.BlockedDates(ctx, username, year, month)
}

// MonthGrid renders the booking calendar for one month. A blocked-dates
// failure other than an unknown user degrades to the empty loading grid;
// callers must treat that as "data not yet available", not "no availability".
func (s *DefaultCalendarService) MonthGrid(ctx context.Context, username string, year, month int, today time.Time) ([]models.CalendarWeek, error) {
	blocked, err := s.BlockedDates(ctx, username, year, month)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidMonth) {
			return nil, err
		}
		utils.GetLogger().Warn("Blocked dates unavailable, serving loading grid",
			zap.String("username", username), zap.Error(err))
		blocked = nil
	}

	referenceMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return BuildGrid(referenceMonth, blocked, today), nil
}
