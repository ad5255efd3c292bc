package service

import (
	"context"
	"errors"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/repository"
)

// WorkoutService owns the business rules for workouts: ownership scoping
// and the update-or-insert write policy.
type WorkoutService interface {
	List(ctx context.Context, userID string) ([]domain.Workout, error)
	Create(ctx context.Context, userID string, workout domain.Workout) (*domain.Workout, error)
	Upsert(ctx context.Context, userID, workoutID string, workout domain.Workout) (*domain.Workout, error)
	Delete(ctx context.Context, userID, workoutID string) error
}

type workoutService struct {
	workouts repository.WorkoutRepository
}

// NewWorkoutService creates a workout service backed by the given repository.
func NewWorkoutService(workouts repository.WorkoutRepository) WorkoutService {
	return &workoutService{workouts: workouts}
}

func (s *workoutService) List(ctx context.Context, userID string) ([]domain.Workout, error) {
	return s.workouts.ListByUser(ctx, userID)
}

// Create stores a new workout. The owner is always the authenticated user
// and any client-supplied id is discarded; the repository assigns one.
func (s *workoutService) Create(ctx context.Context, userID string, workout domain.Workout) (*domain.Workout, error) {
	workout.ID = ""
	workout.UserID = userID
	if err := s.workouts.Create(ctx, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// Upsert updates the workout scoped by id and owner. When the conditional
// update matches no row, it falls back to inserting a new row that carries
// the originally requested id. A concurrent writer racing the same
// fallback loses with a duplicate-key storage error, which is surfaced
// unchanged rather than retried.
func (s *workoutService) Upsert(ctx context.Context, userID, workoutID string, workout domain.Workout) (*domain.Workout, error) {
	workout.ID = workoutID
	workout.UserID = userID
	err := s.workouts.Update(ctx, &workout)
	if errors.Is(err, repository.ErrNotFound) {
		err = s.workouts.Create(ctx, &workout)
	}
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (s *workoutService) Delete(ctx context.Context, userID, workoutID string) error {
	return s.workouts.Delete(ctx, workoutID, userID)
}
