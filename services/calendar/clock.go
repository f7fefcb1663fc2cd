package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"taly/models"
)

// MinIntervalMinutes is the shortest daily availability window a host may
// publish.
const MinIntervalMinutes = 60

const (
	msgAtLeastOneDay   = "You must select at least one day of the week"
	msgMinimumDuration = "The end time must be at least 1 hour later than the start time"
	msgSevenEntries    = "Exactly one interval per weekday is required"
)

// ToMinutes converts a zero-padded 24-hour "HH:MM" string into minutes from
// midnight. Both fields must be numeric; anything else fails with ErrBadClock.
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	return hours*60 + minutes, nil
}

// IsValidInterval reports whether end is at least MinIntervalMinutes after
// start on the same day. An end time numerically before the start yields a
// negative span and fails; intervals may not cross midnight.
func IsValidInterval(start, end string) (bool, error) {
	startMinutes, err := ToMinutes(start)
	if err != nil {
		return false, err
	}
	endMinutes, err := ToMinutes(end)
	if err != nil {
		return false, err
	}
	return endMinutes-startMinutes >= MinIntervalMinutes, nil
}

// ValidateIntervalPayloads applies the aggregate rules to the converted wire
// payload, which carries only the enabled entries.
func ValidateIntervalPayloads(intervals []models.IntervalPayload) error {
	if len(intervals) == 0 {
		return &ValidationError{Message: msgAtLeastOneDay}
	}
	for _, interval := range intervals {
		if interval.WeekDay < 0 || interval.WeekDay > 6 {
			return &ValidationError{Message: "weekDay must be between 0 and 6"}
		}
		if interval.EndTimeInMinutes-interval.StartTimeInMinutes < MinIntervalMinutes {
			return &ValidationError{Message: msgMinimumDuration}
		}
	}
	return nil
}

// ValidateWeeklyIntervals applies the submission rules to a full weekly set:
// exactly seven entries, at least one enabled, and every enabled entry a
// valid interval. The first violation encountered is returned.
func ValidateWeeklyIntervals(intervals []models.TimeInterval) error {
	if len(intervals) != 7 {
		return &ValidationError{Message: msgSevenEntries}
	}

	anyEnabled := false
	for _, interval := range intervals {
		if interval.Enabled {
			anyEnabled = true
			break
		}
	}
	if !anyEnabled {
		return &ValidationError{Message: msgAtLeastOneDay}
	}

	for _, interval := range intervals {
		if !interval.Enabled {
			continue
		}
		valid, err := IsValidInterval(interval.StartTime, interval.EndTime)
		if err != nil {
			return err
		}
		if !valid {
			return &ValidationError{Message: msgMinimumDuration}
		}
	}
	return nil
}
