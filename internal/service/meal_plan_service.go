package service

import (
	"context"
	"errors"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/repository"
)

// MealPlanService owns the business rules for meal plans. The write policy
// mirrors WorkoutService exactly; meals reach this layer already normalized
// to the canonical list form.
type MealPlanService interface {
	List(ctx context.Context, userID string) ([]domain.MealPlan, error)
	Create(ctx context.Context, userID string, plan domain.MealPlan) (*domain.MealPlan, error)
	Upsert(ctx context.Context, userID, planID string, plan domain.MealPlan) (*domain.MealPlan, error)
	Delete(ctx context.Context, userID, planID string) error
}

type mealPlanService struct {
	plans repository.MealPlanRepository
}

// NewMealPlanService creates a meal plan service backed by the given repository.
func NewMealPlanService(plans repository.MealPlanRepository) MealPlanService {
	return &mealPlanService{plans: plans}
}

func (s *mealPlanService) List(ctx context.Context, userID string) ([]domain.MealPlan, error) {
	return s.plans.ListByUser(ctx, userID)
}

func (s *mealPlanService) Create(ctx context.Context, userID string, plan domain.MealPlan) (*domain.MealPlan, error) {
	plan.ID = ""
	plan.UserID = userID
	if err := s.plans.Create(ctx, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Upsert applies the same update-or-insert fallback as workouts: a
// conditional update scoped by id and owner, then an insert carrying the
// requested id when no row matched.
func (s *mealPlanService) Upsert(ctx context.Context, userID, planID string, plan domain.MealPlan) (*domain.MealPlan, error) {
	plan.ID = planID
	plan.UserID = userID
	err := s.plans.Update(ctx, &plan)
	if errors.Is(err, repository.ErrNotFound) {
		err = s.plans.Create(ctx, &plan)
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *mealPlanService) Delete(ctx context.Context, userID, planID string) error {
	return s.plans.Delete(ctx, planID, userID)
}
