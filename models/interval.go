package models

// TimeInterval is one row of the weekly availability form: a recurring
// per-weekday window given as wall-clock "HH:MM" strings. A full submission
// carries exactly seven entries, one per weekday (0=Sunday..6=Saturday).
type TimeInterval struct {
	WeekDay   int    `json:"weekDay"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UserTimeInterval is the persisted form of an enabled interval, with times
// pre-converted to minutes from midnight.
type UserTimeInterval struct {
	ID                 string `bson:"id" json:"id"`
	UserID             string `bson:"userId" json:"userId"`
	WeekDay            int    `bson:"weekDay" json:"weekDay"`
	StartTimeInMinutes int    `bson:"startTimeInMinutes" json:"startTimeInMinutes"`
	EndTimeInMinutes   int    `bson:"endTimeInMinutes" json:"endTimeInMinutes"`
}

// SetTimeIntervalsRequest replaces the caller's whole availability set.
type SetTimeIntervalsRequest struct {
	Intervals []IntervalPayload `json:"intervals" binding:"required"`
}

// IntervalPayload mirrors one enabled interval on the wire.
type IntervalPayload struct {
	WeekDay            int `json:"weekDay"`
	StartTimeInMinutes int `json:"startTimeInMinutes"`
	EndTimeInMinutes   int `json:"endTimeInMinutes"`
}
