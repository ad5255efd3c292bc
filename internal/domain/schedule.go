package domain

import "time"

// Recurrence says how often a scheduled entry repeats.
type Recurrence string

const (
	RecurrenceOnce   Recurrence = "once"
	RecurrenceWeekly Recurrence = "weekly"
)

// WorkoutSchedule places a workout on a calendar date, optionally
// recurring on a set of weekdays. DaysOfWeek is nil unless Recurrence
// is weekly and the client supplied a non-empty day set.
type WorkoutSchedule struct {
	ID         string
	WorkoutID  string
	UserID     string
	Date       string // ISO calendar date, YYYY-MM-DD
	Recurrence Recurrence
	DaysOfWeek []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MealSchedule places a meal plan on a calendar date, same shape as
// WorkoutSchedule.
type MealSchedule struct {
	ID         string
	MealPlanID string
	UserID     string
	Date       string
	Recurrence Recurrence
	DaysOfWeek []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
