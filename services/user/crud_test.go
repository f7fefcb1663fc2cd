package user

import (
	"context"
	"testing"

	"taly/models"
	"taly/services/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	byUsername map[string]*models.User
	byID       map[string]*models.User
	updated    map[string]map[string]any
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]*models.User{},
		byID:       map[string]*models.User{},
		updated:    map[string]map[string]any{},
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.byUsername[user.Username] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := r.byUsername[username]; ok {
		return user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error {
	if _, ok := r.byID[id]; !ok {
		return mongo.ErrNoDocuments
	}
	r.updated[id] = fields
	return nil
}

func (r *fakeUserRepo) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

type fakeIntervalRepo struct {
	replaced []models.UserTimeInterval
	calls    int
}

func (r *fakeIntervalRepo) Replace(ctx context.Context, userID string, intervals []models.UserTimeInterval) error {
	r.calls++
	r.replaced = intervals
	return nil
}

func (r *fakeIntervalRepo) GetByUser(ctx context.Context, userID string) ([]models.UserTimeInterval, error) {
	return r.replaced, nil
}

func (r *fakeIntervalRepo) GetByUserAndWeekDay(ctx context.Context, userID string, weekDay int) (*models.UserTimeInterval, error) {
	return nil, mongo.ErrNoDocuments
}

func TestClaimUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo, Intervals: &fakeIntervalRepo{}}

	user, err := svc.ClaimUsername(context.Background(), models.ClaimUsernameRequest{
		Username: "  JohnDoe  ",
		Name:     "John Doe",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "johndoe", user.Username, "handles are trimmed and lowercased")
	assert.Equal(t, "John Doe", user.Name)

	stored, err := repo.GetByUsername(context.Background(), "johndoe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestClaimUsername_InvalidFormat(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Intervals: &fakeIntervalRepo{}}

	for _, username := range []string{"", "ab", "-john", "john doe", "john_doe", "Jöhn"} {
		_, err := svc.ClaimUsername(context.Background(), models.ClaimUsernameRequest{Username: username})
		assert.ErrorIs(t, err, ErrInvalidUsername, "username %q", username)
	}
}

func TestClaimUsername_Taken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo, Intervals: &fakeIntervalRepo{}}

	_, err := svc.ClaimUsername(context.Background(), models.ClaimUsernameRequest{Username: "johndoe"})
	require.NoError(t, err)

	_, err = svc.ClaimUsername(context.Background(), models.ClaimUsernameRequest{Username: "johndoe"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestGetByUsername_NotFound(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Intervals: &fakeIntervalRepo{}}

	_, err := svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo, Intervals: &fakeIntervalRepo{}}

	user, err := svc.ClaimUsername(context.Background(), models.ClaimUsernameRequest{Username: "johndoe"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(context.Background(), user.ID, "I help people schedule things."))
	assert.Equal(t, "I help people schedule things.", repo.updated[user.ID]["bio"])

	assert.ErrorIs(t, svc.UpdateProfile(context.Background(), "missing", "bio"), ErrUserNotFound)
}

func TestSetTimeIntervals(t *testing.T) {
	intervals := &fakeIntervalRepo{}
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Intervals: intervals}

	err := svc.SetTimeIntervals(context.Background(), "user-1", []models.IntervalPayload{
		{WeekDay: 1, StartTimeInMinutes: 480, EndTimeInMinutes: 1080},
		{WeekDay: 3, StartTimeInMinutes: 600, EndTimeInMinutes: 720},
	})
	require.NoError(t, err)
	require.Len(t, intervals.replaced, 2)
	assert.Equal(t, "user-1", intervals.replaced[0].UserID)
	assert.Equal(t, 1, intervals.replaced[0].WeekDay)
	assert.Equal(t, 480, intervals.replaced[0].StartTimeInMinutes)
}

func TestSetTimeIntervals_RejectsInvalidPayload(t *testing.T) {
	intervals := &fakeIntervalRepo{}
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Intervals: intervals}

	var validation *calendar.ValidationError

	err := svc.SetTimeIntervals(context.Background(), "user-1", nil)
	assert.ErrorAs(t, err, &validation)

	err = svc.SetTimeIntervals(context.Background(), "user-1", []models.IntervalPayload{
		{WeekDay: 1, StartTimeInMinutes: 480, EndTimeInMinutes: 500},
	})
	assert.ErrorAs(t, err, &validation)
	assert.Zero(t, intervals.calls, "nothing is persisted on validation failure")
}
