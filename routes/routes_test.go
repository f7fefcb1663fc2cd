package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taly/handlers"
	"taly/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeSessionRepo struct{}

func (r *fakeSessionRepo) Create(ctx context.Context, session *models.Session) error { return nil }

func (r *fakeSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeSessionRepo) DeleteExpired(ctx context.Context) (int64, error) { return 0, nil }

func noop(c *gin.Context) { c.Status(http.StatusOK) }

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		SessionRepo:              &fakeSessionRepo{},
		ClaimUsernameHandler:     noop,
		GetUserHandler:           noop,
		UpdateProfileHandler:     noop,
		SetTimeIntervalsHandler:  noop,
		BlockedDatesHandler:      noop,
		DayAvailabilityHandler:   noop,
		MonthGridHandler:         noop,
		ConfirmSchedulingHandler: noop,
		GoogleLoginHandler:       noop,
		GoogleCallbackHandler:    noop,
		SignOutHandler:           noop,
	})
	return r
}

func TestProfileRoute_MethodNotAllowed(t *testing.T) {
	r := testRouter()

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, "/api/profile", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "method %s", method)
	}
}

func TestProfileRoute_RequiresSession(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTimeIntervalsRoute_RequiresSession(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users/time-intervals", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublicBookingRoutes(t *testing.T) {
	r := testRouter()

	for _, target := range []string{
		"/api/users/johndoe",
		"/api/users/johndoe/blocked-dates",
		"/api/users/johndoe/availability",
		"/api/users/johndoe/calendar",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", target)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users/johndoe/schedule", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthRoute(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
