package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taly/config"
	"taly/models"
	"taly/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// issueSession mints a bearer token, persists its hash and primes the auth
// cache so the first authenticated request skips the database.
func (s *DefaultAuthService) issueSession(ctx context.Context, user *models.User) (*AuthResponse, error) {
	ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	token, err := utils.GenerateToken(user.ID, user.Email, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: utils.HashToken(token),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + user.ID
		_ = s.AuthCache.Set(ctx, cacheKey, session.TokenHash, utils.AuthCacheTTL).Err()
	}

	return &AuthResponse{
		User:      user,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// SignOut revokes the session behind the given bearer token.
func (s *DefaultAuthService) SignOut(ctx context.Context, token string) error {
	hash := utils.HashToken(token)

	session, err := s.Sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidSession
		}
		return fmt.Errorf("failed to look up session: %w", err)
	}

	if err := s.Sessions.Delete(ctx, session.ID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if s.AuthCache != nil {
		s.AuthCache.Del(ctx, utils.AuthCachePrefix+session.UserID)
	}
	return nil
}
