package calendar

import (
	"testing"
	"time"

	"taly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func flatten(weeks []models.CalendarWeek) []models.CalendarDay {
	var days []models.CalendarDay
	for _, week := range weeks {
		days = append(days, week.Days...)
	}
	return days
}

func TestBuildGrid_NilBlockedYieldsEmptyGrid(t *testing.T) {
	weeks := BuildGrid(date(2025, time.September, 1), nil, date(2025, time.September, 15))
	assert.Empty(t, weeks)
}

func TestBuildGrid_FullWeeksAndContiguousDates(t *testing.T) {
	referenceMonth := date(2025, time.September, 1)
	weeks := BuildGrid(referenceMonth, &models.BlockedDates{}, referenceMonth)
	require.NotEmpty(t, weeks)

	days := flatten(weeks)
	require.Zero(t, len(days)%7)

	// September 2025 opens on a Monday and closes on a Tuesday: one leading
	// pad day and four trailing ones, 35 cells in all.
	assert.Len(t, days, 35)
	assert.Equal(t, time.Sunday, days[0].Date.Weekday())
	assert.Equal(t, time.Saturday, days[len(days)-1].Date.Weekday())

	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].Date.AddDate(0, 0, 1), days[i].Date,
			"dates must be contiguous at index %d", i)
	}

	for i, week := range weeks {
		assert.Equal(t, i+1, week.Week)
		assert.Len(t, week.Days, 7)
	}
}

func TestBuildGrid_PaddingDaysAlwaysDisabled(t *testing.T) {
	referenceMonth := date(2025, time.September, 1)
	weeks := BuildGrid(referenceMonth, &models.BlockedDates{}, date(2020, time.January, 1))

	for _, day := range flatten(weeks) {
		if day.Date.Month() != referenceMonth.Month() {
			assert.True(t, day.Disabled, "padding day %s must be disabled", day.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildGrid_BlockedWeekDays(t *testing.T) {
	referenceMonth := date(2025, time.September, 1)
	blocked := &models.BlockedDates{BlockedWeekDays: []int{0, 6}}
	weeks := BuildGrid(referenceMonth, blocked, date(2020, time.January, 1))

	for _, day := range flatten(weeks) {
		if day.Date.Month() != referenceMonth.Month() {
			continue
		}
		switch day.Date.Weekday() {
		case time.Sunday, time.Saturday:
			assert.True(t, day.Disabled, "%s falls on a blocked weekday", day.Date.Format("2006-01-02"))
		default:
			assert.False(t, day.Disabled, "%s should be selectable", day.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildGrid_BlockedDates(t *testing.T) {
	referenceMonth := date(2025, time.September, 1)
	blocked := &models.BlockedDates{BlockedDates: []int{10, 24}}
	weeks := BuildGrid(referenceMonth, blocked, date(2020, time.January, 1))

	for _, day := range flatten(weeks) {
		if day.Date.Month() != referenceMonth.Month() {
			continue
		}
		wantDisabled := day.Date.Day() == 10 || day.Date.Day() == 24
		assert.Equal(t, wantDisabled, day.Disabled, "day %d", day.Date.Day())
	}
}

func TestBuildGrid_PastDaysDisabledUntilEndOfDay(t *testing.T) {
	referenceMonth := date(2025, time.September, 1)
	// Mid-afternoon on the 15th: the 15th still has time left and stays open.
	today := time.Date(2025, time.September, 15, 15, 30, 0, 0, time.UTC)
	weeks := BuildGrid(referenceMonth, &models.BlockedDates{}, today)

	for _, day := range flatten(weeks) {
		if day.Date.Month() != referenceMonth.Month() {
			continue
		}
		assert.Equal(t, day.Date.Day() < 15, day.Disabled, "day %d", day.Date.Day())
	}
}

func TestBuildGrid_MonthStartingOnSunday(t *testing.T) {
	// June 2025 opens on a Sunday: no leading padding at all.
	referenceMonth := date(2025, time.June, 1)
	weeks := BuildGrid(referenceMonth, &models.BlockedDates{}, referenceMonth)
	require.NotEmpty(t, weeks)

	days := flatten(weeks)
	assert.Equal(t, referenceMonth, days[0].Date)
	require.Zero(t, len(days)%7)
	assert.Equal(t, time.Saturday, days[len(days)-1].Date.Weekday())
}
