package calendar

import (
	"time"

	"taly/models"
)

// BuildGrid produces the week/day grid for the month containing
// referenceMonth. The grid spans whole weeks: leading and trailing cells are
// padded with adjacent-month days that are never selectable. A current-month
// day is disabled when it is wholly in the past relative to today, when its
// weekday is blocked, or when its day-of-month number is blocked.
//
// The function is pure: today is injected rather than read from the wall
// clock, and a nil blocked set (data not yet loaded) yields an empty grid,
// never a partial one.
func BuildGrid(referenceMonth time.Time, blocked *models.BlockedDates, today time.Time) []models.CalendarWeek {
	if blocked == nil {
		return []models.CalendarWeek{}
	}

	loc := referenceMonth.Location()
	firstOfMonth := time.Date(referenceMonth.Year(), referenceMonth.Month(), 1, 0, 0, 0, 0, loc)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	blockedWeekDays := make(map[int]bool, len(blocked.BlockedWeekDays))
	for _, weekDay := range blocked.BlockedWeekDays {
		blockedWeekDays[weekDay] = true
	}
	blockedDays := make(map[int]bool, len(blocked.BlockedDates))
	for _, day := range blocked.BlockedDates {
		blockedDays[day] = true
	}

	days := make([]models.CalendarDay, 0, 6*7)

	// Walk backward from day 1 into the previous month to fill the first week.
	firstWeekDay := int(firstOfMonth.Weekday())
	for i := firstWeekDay; i > 0; i-- {
		days = append(days, models.CalendarDay{
			Date:     firstOfMonth.AddDate(0, 0, -i),
			Disabled: true,
		})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(referenceMonth.Year(), referenceMonth.Month(), day, 0, 0, 0, 0, loc)
		// A day stays selectable until its very last instant has passed.
		endOfDay := date.AddDate(0, 0, 1).Add(-time.Nanosecond)
		days = append(days, models.CalendarDay{
			Date: date,
			Disabled: endOfDay.Before(today) ||
				blockedWeekDays[int(date.Weekday())] ||
				blockedDays[day],
		})
	}

	// Walk forward into the next month to complete the last week.
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	lastWeekDay := int(lastOfMonth.Weekday())
	for i := 1; i <= 6-lastWeekDay; i++ {
		days = append(days, models.CalendarDay{
			Date:     lastOfMonth.AddDate(0, 0, i),
			Disabled: true,
		})
	}

	weeks := make([]models.CalendarWeek, 0, len(days)/7)
	for i := 0; i < len(days); i += 7 {
		weeks = append(weeks, models.CalendarWeek{
			Week: i/7 + 1,
			Days: days[i : i+7],
		})
	}
	return weeks
}
