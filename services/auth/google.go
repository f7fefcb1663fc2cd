package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taly/config"
	"taly/models"
	"taly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauthapi "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const (
	providerGoogle  = "google"
	statePrefix     = "oauthState:"
	stateTTL        = 10 * time.Minute
	calendarScope   = "https://www.googleapis.com/auth/calendar.readonly"
	userinfoEmail   = "https://www.googleapis.com/auth/userinfo.email"
	userinfoProfile = "https://www.googleapis.com/auth/userinfo.profile"
)

// pendingAuth is what a state value points at until the callback arrives.
type pendingAuth struct {
	ClaimedUserID   string `json:"claimedUserId"`
	ConnectCalendar bool   `json:"connectCalendar"`
}

func oauthConfig(connectCalendar bool) *oauth2.Config {
	scopes := []string{userinfoEmail, userinfoProfile}
	if connectCalendar {
		scopes = append(scopes, calendarScope)
	}
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleRedirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
}

// BeginAuth stores a one-shot state value and returns the Google consent URL.
// claimedUserID carries the pre-auth username claim, if any; connectCalendar
// additionally requests read access to the user's calendar.
func (s *DefaultAuthService) BeginAuth(ctx context.Context, claimedUserID string, connectCalendar bool) (string, error) {
	state := uuid.New().String()
	pending := pendingAuth{ClaimedUserID: claimedUserID, ConnectCalendar: connectCalendar}
	data, err := json.Marshal(pending)
	if err != nil {
		return "", fmt.Errorf("failed to marshal pending auth: %w", err)
	}
	if err := s.Cache.Set(ctx, statePrefix+state, data, stateTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}

	conf := oauthConfig(connectCalendar)
	url := conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	return url, nil
}

// HandleCallback completes the flow: validates state, exchanges the code,
// fetches the Google profile, adopts or looks up the user, links the account
// (keeping the refresh token for calendar access) and issues a session.
func (s *DefaultAuthService) HandleCallback(ctx context.Context, state, code string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	data, err := s.Cache.Get(ctx, statePrefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidState
		}
		return nil, fmt.Errorf("failed to read oauth state: %w", err)
	}
	s.Cache.Del(ctx, statePrefix+state)

	var pending pendingAuth
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		return nil, ErrInvalidState
	}

	conf := oauthConfig(pending.ConnectCalendar)
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	svc, err := oauthapi.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo client: %w", err)
	}
	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}

	user, err := s.resolveUser(ctx, info, pending.ClaimedUserID)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		UserID:            user.ID,
		Provider:          providerGoogle,
		ProviderAccountID: info.Id,
		Type:              "oauth",
		RefreshToken:      token.RefreshToken,
		AccessToken:       token.AccessToken,
		ExpiresAt:         token.Expiry.Unix(),
		TokenType:         token.TokenType,
	}
	if err := s.Accounts.Link(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to link account: %w", err)
	}

	resp, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("Sign-in completed",
		zap.String("userID", user.ID),
		zap.Bool("connectCalendar", pending.ConnectCalendar))
	return resp, nil
}

// resolveUser maps the Google identity onto a local user: a previously linked
// account wins; otherwise the pre-auth claimed record is adopted. A first
// sign-in with no claim is rejected, matching the registration flow.
func (s *DefaultAuthService) resolveUser(ctx context.Context, info *oauthapi.Userinfo, claimedUserID string) (*models.User, error) {
	account, err := s.Accounts.GetByProviderAccount(ctx, providerGoogle, info.Id)
	if err == nil {
		user, err := s.Users.GetByID(ctx, account.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load linked user: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if claimedUserID == "" {
		return nil, ErrUnclaimedSignIn
	}

	user, err := s.Users.Upsert(ctx, &models.User{
		ID:        claimedUserID,
		Name:      info.Name,
		Email:     info.Email,
		AvatarURL: info.Picture,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adopt claimed user: %w", err)
	}
	return user, nil
}
