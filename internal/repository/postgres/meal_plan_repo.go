package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const mealPlanColumns = `id, user_id, name, description, total_nutrition, meals, created_at, updated_at`

// mealPlanRepository implements repository.MealPlanRepository on Postgres.
// Meals persist as jsonb in the canonical list form (type tag attached);
// the nutrition summary is a nullable jsonb column so an absent summary
// stays absent rather than becoming zeros.
type mealPlanRepository struct {
	pool *pgxpool.Pool
}

// NewMealPlanRepository creates a Postgres-backed meal plan repository.
func NewMealPlanRepository(pool *pgxpool.Pool) repository.MealPlanRepository {
	return &mealPlanRepository{pool: pool}
}

func (r *mealPlanRepository) ListByUser(ctx context.Context, userID string) ([]domain.MealPlan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+mealPlanColumns+` FROM meal_plans WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	plans := []domain.MealPlan{}
	for rows.Next() {
		var p domain.MealPlan
		if err := scanMealPlan(rows, &p); err != nil {
			return nil, wrapError(err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}
	return plans, nil
}

func (r *mealPlanRepository) Create(ctx context.Context, plan *domain.MealPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	nutrition, meals, err := mealPlanParams(plan)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO meal_plans (id, user_id, name, description, total_nutrition, meals)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb)
		 RETURNING `+mealPlanColumns,
		plan.ID, plan.UserID, plan.Name, plan.Description, nutrition, meals)
	return wrapError(scanMealPlan(row, plan))
}

func (r *mealPlanRepository) Update(ctx context.Context, plan *domain.MealPlan) error {
	nutrition, meals, err := mealPlanParams(plan)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx,
		`UPDATE meal_plans
		 SET name = $1, description = $2, total_nutrition = $3::jsonb, meals = $4::jsonb, updated_at = now()
		 WHERE id = $5 AND user_id = $6
		 RETURNING `+mealPlanColumns,
		plan.Name, plan.Description, nutrition, meals, plan.ID, plan.UserID)
	if err := scanMealPlan(row, plan); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return wrapError(err)
	}
	return nil
}

func (r *mealPlanRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM meal_plans WHERE id = $1 AND user_id = $2`, id, userID)
	return wrapError(err)
}

func scanMealPlan(row pgx.Row, p *domain.MealPlan) error {
	var nutrition, meals []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &nutrition, &meals,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	p.TotalNutrition = nil
	if len(nutrition) > 0 {
		var n domain.Nutrition
		if err := json.Unmarshal(nutrition, &n); err != nil {
			return fmt.Errorf("decode nutrition payload: %w", err)
		}
		p.TotalNutrition = &n
	}
	p.Meals = nil
	if len(meals) > 0 {
		if err := json.Unmarshal(meals, &p.Meals); err != nil {
			return fmt.Errorf("decode meals payload: %w", err)
		}
	}
	return nil
}

func mealPlanParams(plan *domain.MealPlan) (nutrition any, meals string, err error) {
	if plan.TotalNutrition != nil {
		b, err := json.Marshal(plan.TotalNutrition)
		if err != nil {
			return nil, "", fmt.Errorf("encode nutrition payload: %w", err)
		}
		nutrition = string(b)
	}
	list := plan.Meals
	if list == nil {
		list = []domain.Meal{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, "", fmt.Errorf("encode meals payload: %w", err)
	}
	return nutrition, string(b), nil
}
