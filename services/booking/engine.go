package booking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"taly/models"
	"taly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ConfirmScheduling validates and persists a visitor's booking. Appointments
// land on whole hours; the requested instant is truncated to its hour before
// any checks run.
func (s *DefaultSchedulingService) ConfirmScheduling(ctx context.Context, username string, req models.ConfirmSchedulingRequest, now time.Time) (*models.Scheduling, error) {
	logger := utils.GetLogger()

	if len(strings.TrimSpace(req.Name)) < 3 {
		return nil, ErrNameTooShort
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	date := req.Date.UTC()
	slot := time.Date(date.Year(), date.Month(), date.Day(), date.Hour(), 0, 0, 0, time.UTC)
	if slot.Before(now) {
		return nil, ErrPastDate
	}

	interval, err := s.Intervals.GetByUserAndWeekDay(ctx, user.ID, int(slot.Weekday()))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOutsideAvailability
		}
		return nil, fmt.Errorf("failed to load time interval: %w", err)
	}
	minutes := slot.Hour() * 60
	if minutes < interval.StartTimeInMinutes || minutes >= interval.EndTimeInMinutes {
		return nil, ErrOutsideAvailability
	}

	taken, err := s.Schedulings.ExistsAt(ctx, user.ID, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	scheduling := &models.Scheduling{
		UserID:       user.ID,
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Observations: req.Observations,
		Date:         slot,
	}
	if err := s.Schedulings.Create(ctx, scheduling); err != nil {
		return nil, fmt.Errorf("failed to create scheduling: %w", err)
	}

	// A fresh booking can flip a day to fully booked; drop the cached month.
	if s.Cache != nil {
		cacheKey := fmt.Sprintf("%s%s:%d:%d", utils.BlockedDatesCachePrefix, user.ID, slot.Year(), int(slot.Month()))
		s.Cache.Del(ctx, cacheKey)
	}

	logger.Info("Scheduling confirmed",
		zap.String("userID", user.ID),
		zap.Time("date", slot),
		zap.String("email", req.Email))
	return scheduling, nil
}
