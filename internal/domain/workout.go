package domain

import "time"

// Workout is a named sequence of exercises owned by a single user.
type Workout struct {
	ID                string
	UserID            string
	Name              string
	Description       string
	Exercises         []Exercise
	EstimatedDuration float64 // minutes, may be fractional
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Exercise is one entry in a workout. Sets are opaque to the server:
// clients store whatever per-set records they like and get them back
// unchanged, in order.
type Exercise struct {
	Name            string `json:"name"`
	Sets            []any  `json:"sets"`
	Notes           string `json:"notes"`
	RestBetweenSets Number `json:"restBetweenSets"`
}
