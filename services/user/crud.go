package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"taly/models"
	"taly/services/calendar"
	"taly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{2,}$`)

// ClaimUsername reserves a public booking handle before the OAuth sign-in
// completes. The returned user ID is what the OAuth callback later adopts.
func (s *DefaultUserService) ClaimUsername(ctx context.Context, req models.ClaimUsernameRequest) (*models.User, error) {
	logger := utils.GetLogger()

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	if _, err := s.Repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check username %q: %w", username, err)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Name:     req.Name,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		// Racing claims land here via the unique index.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameTaken
		}
		logger.Error("Failed to create user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("Username claimed", zap.String("username", username), zap.String("userID", user.ID))
	return user, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %q: %w", userID, err)
	}
	return user, nil
}

func (s *DefaultUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %q: %w", username, err)
	}
	return user, nil
}

// UpdateProfile replaces the user's bio.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID, bio string) error {
	fields := map[string]any{
		"bio":       bio,
		"updatedAt": time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(ctx, userID, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// SetTimeIntervals validates and stores the weekly availability set as a full
// replacement. The payload carries only enabled entries with times already
// converted to minute offsets.
func (s *DefaultUserService) SetTimeIntervals(ctx context.Context, userID string, intervals []models.IntervalPayload) error {
	if err := calendar.ValidateIntervalPayloads(intervals); err != nil {
		return err
	}

	records := make([]models.UserTimeInterval, len(intervals))
	for i, interval := range intervals {
		records[i] = models.UserTimeInterval{
			UserID:             userID,
			WeekDay:            interval.WeekDay,
			StartTimeInMinutes: interval.StartTimeInMinutes,
			EndTimeInMinutes:   interval.EndTimeInMinutes,
		}
	}

	if err := s.Intervals.Replace(ctx, userID, records); err != nil {
		return fmt.Errorf("failed to replace time intervals: %w", err)
	}

	utils.GetLogger().Info("Time intervals replaced",
		zap.String("userID", userID), zap.Int("count", len(records)))
	return nil
}
