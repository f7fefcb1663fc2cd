package booking

import (
	"context"
	"testing"
	"time"

	"taly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	user *models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (r *fakeUserRepo) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

type fakeIntervalRepo struct {
	intervals []models.UserTimeInterval
}

func (r *fakeIntervalRepo) Replace(ctx context.Context, userID string, intervals []models.UserTimeInterval) error {
	return nil
}

func (r *fakeIntervalRepo) GetByUser(ctx context.Context, userID string) ([]models.UserTimeInterval, error) {
	return r.intervals, nil
}

func (r *fakeIntervalRepo) GetByUserAndWeekDay(ctx context.Context, userID string, weekDay int) (*models.UserTimeInterval, error) {
	for _, interval := range r.intervals {
		if interval.WeekDay == weekDay {
			return &interval, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeSchedulingRepo struct {
	created []models.Scheduling
}

func (r *fakeSchedulingRepo) Create(ctx context.Context, scheduling *models.Scheduling) error {
	r.created = append(r.created, *scheduling)
	return nil
}

func (r *fakeSchedulingRepo) ExistsAt(ctx context.Context, userID string, date time.Time) (bool, error) {
	for _, scheduling := range r.created {
		if scheduling.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSchedulingRepo) GetByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]models.Scheduling, error) {
	return r.created, nil
}

func newTestService(schedulings *fakeSchedulingRepo) *DefaultSchedulingService {
	// Wednesday availability only, 08:00 to 18:00.
	return &DefaultSchedulingService{
		Users: &fakeUserRepo{user: &models.User{ID: "user-1", Username: "johndoe"}},
		Intervals: &fakeIntervalRepo{intervals: []models.UserTimeInterval{
			{UserID: "user-1", WeekDay: 3, StartTimeInMinutes: 480, EndTimeInMinutes: 1080},
		}},
		Schedulings: schedulings,
	}
}

var (
	// Wednesday Sept 10 2025 at 14:00 UTC.
	slotDate = time.Date(2025, time.September, 10, 14, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)
)

func validRequest() models.ConfirmSchedulingRequest {
	return models.ConfirmSchedulingRequest{
		Name:         "Jane Visitor",
		Email:        "jane@example.com",
		Observations: "first session",
		Date:         slotDate,
	}
}

func TestConfirmScheduling_Success(t *testing.T) {
	schedulings := &fakeSchedulingRepo{}
	svc := newTestService(schedulings)

	scheduling, err := svc.ConfirmScheduling(context.Background(), "johndoe", validRequest(), testNow)
	require.NoError(t, err)
	require.Len(t, schedulings.created, 1)
	assert.Equal(t, "user-1", scheduling.UserID)
	assert.Equal(t, slotDate, scheduling.Date)
	assert.Equal(t, "Jane Visitor", scheduling.Name)
}

func TestConfirmScheduling_TruncatesToWholeHour(t *testing.T) {
	schedulings := &fakeSchedulingRepo{}
	svc := newTestService(schedulings)

	req := validRequest()
	req.Date = slotDate.Add(25 * time.Minute)

	scheduling, err := svc.ConfirmScheduling(context.Background(), "johndoe", req, testNow)
	require.NoError(t, err)
	assert.Equal(t, slotDate, scheduling.Date)
}

func TestConfirmScheduling_NameTooShort(t *testing.T) {
	svc := newTestService(&fakeSchedulingRepo{})

	req := validRequest()
	req.Name = "  Jo  "

	_, err := svc.ConfirmScheduling(context.Background(), "johndoe", req, testNow)
	assert.ErrorIs(t, err, ErrNameTooShort)
}

func TestConfirmScheduling_InvalidEmail(t *testing.T) {
	svc := newTestService(&fakeSchedulingRepo{})

	for _, email := range []string{"", "jane", "jane@", "@example.com", "jane@example", "ja ne@example.com"} {
		req := validRequest()
		req.Email = email

		_, err := svc.ConfirmScheduling(context.Background(), "johndoe", req, testNow)
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestConfirmScheduling_UnknownUser(t *testing.T) {
	svc := newTestService(&fakeSchedulingRepo{})

	_, err := svc.ConfirmScheduling(context.Background(), "ghost", validRequest(), testNow)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestConfirmScheduling_PastDate(t *testing.T) {
	svc := newTestService(&fakeSchedulingRepo{})

	req := validRequest()
	_, err := svc.ConfirmScheduling(context.Background(), "johndoe", req, slotDate.Add(time.Hour))
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestConfirmScheduling_OutsideAvailability(t *testing.T) {
	svc := newTestService(&fakeSchedulingRepo{})

	// Thursday: no interval at all.
	req := validRequest()
	req.Date = slotDate.AddDate(0, 0, 1)
	_, err := svc.ConfirmScheduling(context.Background(), "johndoe", req, testNow)
	assert.ErrorIs(t, err, ErrOutsideAvailability)

	// Wednesday but before the window opens.
	req = validRequest()
	req.Date = time.Date(2025, time.September, 10, 7, 0, 0, 0, time.UTC)
	_, err = svc.ConfirmScheduling(context.Background(), "johndoe", req, testNow)
	assert.ErrorIs(t, err, ErrOutsideAvailability)

	// The closing hour itself is not bookable.
	req = validRequest()
	req.Date = time.Date(2025, time.September, 10, 18, 0, 0, 0, time.UTC)
	_, err = svc.ConfirmScheduling(context.Background(), "johndoe", req, testNow)
	assert.ErrorIs(t, err, ErrOutsideAvailability)
}

func TestConfirmScheduling_SlotTaken(t *testing.T) {
	schedulings := &fakeSchedulingRepo{}
	svc := newTestService(schedulings)

	_, err := svc.ConfirmScheduling(context.Background(), "johndoe", validRequest(), testNow)
	require.NoError(t, err)

	_, err = svc.ConfirmScheduling(context.Background(), "johndoe", validRequest(), testNow)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, schedulings.created, 1)
}
