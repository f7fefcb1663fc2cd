package models

import "time"

// CalendarDay is one cell of the booking calendar grid. Disabled is derived
// during the grid build and never set directly.
type CalendarDay struct {
	Date     time.Time `json:"date"`
	Disabled bool      `json:"disabled"`
}

// CalendarWeek is one row of seven consecutive days. Week is 1-based.
type CalendarWeek struct {
	Week int           `json:"week"`
	Days []CalendarDay `json:"days"`
}

// BlockedDates describes a single month's unavailability: weekdays with no
// enabled interval at all, and individually blocked day-of-month numbers.
// Day-of-month blocking is scoped to the queried month only; it does not
// carry across months.
type BlockedDates struct {
	BlockedWeekDays []int `json:"blockedWeekDays"`
	BlockedDates    []int `json:"blockedDates"`
}

// DayAvailability is the per-day slot view of a host's agenda: every hour the
// weekly interval makes possible, and the subset still open for booking.
type DayAvailability struct {
	PossibleTimes  []int `json:"possibleTimes"`
	AvailableTimes []int `json:"availableTimes"`
}
