package service

import (
	"context"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/repository"
)

// ScheduleService covers both schedule kinds. Schedules have no update
// path: writes are plain inserts and deletes, so the upsert fallback used
// for workouts and meal plans never applies here.
type ScheduleService interface {
	ListWorkoutSchedules(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error)
	CreateWorkoutSchedule(ctx context.Context, userID string, schedule domain.WorkoutSchedule) (*domain.WorkoutSchedule, error)
	DeleteWorkoutSchedule(ctx context.Context, userID, scheduleID string) error

	ListMealSchedules(ctx context.Context, userID string) ([]domain.MealSchedule, error)
	CreateMealSchedule(ctx context.Context, userID string, schedule domain.MealSchedule) (*domain.MealSchedule, error)
	DeleteMealSchedule(ctx context.Context, userID, scheduleID string) error
}

type scheduleService struct {
	workoutSchedules repository.WorkoutScheduleRepository
	mealSchedules    repository.MealScheduleRepository
}

// NewScheduleService creates a schedule service over both schedule repositories.
func NewScheduleService(
	workoutSchedules repository.WorkoutScheduleRepository,
	mealSchedules repository.MealScheduleRepository,
) ScheduleService {
	return &scheduleService{
		workoutSchedules: workoutSchedules,
		mealSchedules:    mealSchedules,
	}
}

func (s *scheduleService) ListWorkoutSchedules(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error) {
	return s.workoutSchedules.ListByUser(ctx, userID)
}

func (s *scheduleService) CreateWorkoutSchedule(ctx context.Context, userID string, schedule domain.WorkoutSchedule) (*domain.WorkoutSchedule, error) {
	schedule.ID = ""
	schedule.UserID = userID
	if len(schedule.DaysOfWeek) == 0 {
		schedule.DaysOfWeek = nil
	}
	if err := s.workoutSchedules.Create(ctx, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *scheduleService) DeleteWorkoutSchedule(ctx context.Context, userID, scheduleID string) error {
	return s.workoutSchedules.Delete(ctx, scheduleID, userID)
}

func (s *scheduleService) ListMealSchedules(ctx context.Context, userID string) ([]domain.MealSchedule, error) {
	return s.mealSchedules.ListByUser(ctx, userID)
}

func (s *scheduleService) CreateMealSchedule(ctx context.Context, userID string, schedule domain.MealSchedule) (*domain.MealSchedule, error) {
	schedule.ID = ""
	schedule.UserID = userID
	if len(schedule.DaysOfWeek) == 0 {
		schedule.DaysOfWeek = nil
	}
	if err := s.mealSchedules.Create(ctx, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *scheduleService) DeleteMealSchedule(ctx context.Context, userID, scheduleID string) error {
	return s.mealSchedules.Delete(ctx, scheduleID, userID)
}
