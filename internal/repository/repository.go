package repository

import (
	"context"
	"errors"
	"fmt"

	"acoach/coach-api/internal/domain"
)

// ErrNotFound is returned by conditional updates and lookups when no row
// matched the id+owner filter. The service layer relies on it to drive the
// update-or-insert fallback, so implementations must return exactly this
// sentinel for the "no row matched" case and nothing else.
var ErrNotFound = errors.New("not found")

// StorageError carries the backend's error triple through to the API
// envelope. Code is the backend-specific condition code when one exists
// (e.g. "23505" for a Postgres unique violation).
type StorageError struct {
	Message string
	Details string
	Code    string
}

func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage error %s: %s", e.Code, e.Message)
	}
	return "storage error: " + e.Message
}

// WorkoutRepository is the persistence contract for workouts.
// Create assigns a fresh id unless the caller set one (the upsert
// fallback path); Update is scoped by id and owner and fills the entity
// back in from the stored row.
type WorkoutRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Workout, error)
	Create(ctx context.Context, workout *domain.Workout) error
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id, userID string) error
}

// MealPlanRepository is the persistence contract for meal plans.
type MealPlanRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.MealPlan, error)
	Create(ctx context.Context, plan *domain.MealPlan) error
	Update(ctx context.Context, plan *domain.MealPlan) error
	Delete(ctx context.Context, id, userID string) error
}

// WorkoutScheduleRepository is the persistence contract for workout
// schedules. Schedules are never updated in place, only created and
// deleted.
type WorkoutScheduleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error)
	Create(ctx context.Context, schedule *domain.WorkoutSchedule) error
	Delete(ctx context.Context, id, userID string) error
}

// MealScheduleRepository is the persistence contract for meal schedules.
type MealScheduleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.MealSchedule, error)
	Create(ctx context.Context, schedule *domain.MealSchedule) error
	Delete(ctx context.Context, id, userID string) error
}
