package calendar

import (
	"context"
	"sync"
	"time"

	"taly/models"

	"go.uber.org/zap"
)

// BlockedDatesProvider is the boundary the grid widget fetches from. The
// server-side CalendarService satisfies it, as does any remote client.
type BlockedDatesProvider interface {
	FetchBlockedDates(ctx context.Context, username string, year, month int) (*models.BlockedDates, error)
}

const (
	fetchAttempts     = 3
	fetchInitialDelay = 250 * time.Millisecond
	fetchTimeout      = 5 * time.Second
)

// GridWidget keeps one month's calendar grid in sync with its blocked-dates
// data. Month navigation swaps the reference month immediately and leaves the
// grid empty (loading) until the matching response lands; a response for a
// month the user has already navigated away from is discarded, so rapid
// back-and-forth navigation can never render a stale grid.
type GridWidget struct {
	Provider BlockedDatesProvider
	Username string
	Now      func() time.Time
	OnUpdate func([]models.CalendarWeek)

	mu       sync.Mutex
	refMonth time.Time
	weeks    []models.CalendarWeek
}

// NewGridWidget builds a widget pointed at the given month.
func NewGridWidget(provider BlockedDatesProvider, username string, month time.Time) *GridWidget {
	w := &GridWidget{
		Provider: provider,
		Username: username,
		Now:      time.Now,
	}
	w.refMonth = startOfMonth(month)
	return w
}

// Month returns the current reference month (first day).
func (w *GridWidget) Month() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.refMonth
}

// Weeks returns the current grid. Empty means the month's data has not
// arrived yet.
func (w *GridWidget) Weeks() []models.CalendarWeek {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.weeks
}

// SetMonth navigates to a new reference month and kicks off a background
// fetch for it. The grid resets to the loading state right away.
func (w *GridWidget) SetMonth(month time.Time) {
	target := w.resetTo(month)
	go w.Load(context.Background(), target)
}

// NextMonth advances the widget one month forward.
func (w *GridWidget) NextMonth() {
	w.SetMonth(w.Month().AddDate(0, 1, 0))
}

// PreviousMonth moves the widget one month back.
func (w *GridWidget) PreviousMonth() {
	w.SetMonth(w.Month().AddDate(0, -1, 0))
}

// Refresh re-fetches the current month, the user-triggered retry for a fetch
// that gave up.
func (w *GridWidget) Refresh() {
	go w.Load(context.Background(), w.Month())
}

func (w *GridWidget) resetTo(month time.Time) time.Time {
	target := startOfMonth(month)
	w.mu.Lock()
	w.refMonth = target
	w.weeks = nil
	w.mu.Unlock()
	return target
}

// Load fetches blocked dates for the target month and applies the result.
// Fetch failures are retried with doubling delays; if every attempt fails the
// widget stays in the loading state rather than surfacing an error or a
// partial grid.
func (w *GridWidget) Load(ctx context.Context, target time.Time) {
	var blocked *models.BlockedDates

	delay := fetchInitialDelay
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		result, err := w.Provider.FetchBlockedDates(fetchCtx, w.Username, target.Year(), int(target.Month()))
		cancel()
		if err == nil {
			blocked = result
			break
		}
		zap.L().Warn("Blocked dates fetch failed",
			zap.String("username", w.Username),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < fetchAttempts {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
			delay *= 2
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// The user navigated on while this request was in flight; its response
	// no longer matches the current reference month and must be ignored.
	if !w.refMonth.Equal(target) {
		return
	}
	if blocked == nil {
		w.weeks = nil
		return
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	w.weeks = BuildGrid(target, blocked, now())
	if w.OnUpdate != nil {
		w.OnUpdate(w.weeks)
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
