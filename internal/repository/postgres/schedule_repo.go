package postgres

import (
	"context"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workoutScheduleColumns = `id, workout_id, user_id, date::text, recurrence, days_of_week, created_at, updated_at`
const mealScheduleColumns = `id, meal_plan_id, user_id, date::text, recurrence, days_of_week, created_at, updated_at`

// workoutScheduleRepository implements repository.WorkoutScheduleRepository.
// days_of_week is stored NULL whenever the day set is empty; the column is
// only populated for weekly recurrences with at least one day.
type workoutScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutScheduleRepository creates a Postgres-backed workout schedule repository.
func NewWorkoutScheduleRepository(pool *pgxpool.Pool) repository.WorkoutScheduleRepository {
	return &workoutScheduleRepository{pool: pool}
}

func (r *workoutScheduleRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+workoutScheduleColumns+` FROM workout_schedules WHERE user_id = $1 ORDER BY date`, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	schedules := []domain.WorkoutSchedule{}
	for rows.Next() {
		var s domain.WorkoutSchedule
		if err := scanWorkoutSchedule(rows, &s); err != nil {
			return nil, wrapError(err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}
	return schedules, nil
}

func (r *workoutScheduleRepository) Create(ctx context.Context, schedule *domain.WorkoutSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO workout_schedules (id, workout_id, user_id, date, recurrence, days_of_week)
		 VALUES ($1, $2, $3, $4::date, $5, $6)
		 RETURNING `+workoutScheduleColumns,
		schedule.ID, schedule.WorkoutID, schedule.UserID, schedule.Date,
		string(schedule.Recurrence), daysParam(schedule.DaysOfWeek))
	return wrapError(scanWorkoutSchedule(row, schedule))
}

func (r *workoutScheduleRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM workout_schedules WHERE id = $1 AND user_id = $2`, id, userID)
	return wrapError(err)
}

func scanWorkoutSchedule(row pgx.Row, s *domain.WorkoutSchedule) error {
	var recurrence string
	if err := row.Scan(&s.ID, &s.WorkoutID, &s.UserID, &s.Date, &recurrence,
		&s.DaysOfWeek, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return err
	}
	s.Recurrence = domain.Recurrence(recurrence)
	return nil
}

// mealScheduleRepository implements repository.MealScheduleRepository.
type mealScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewMealScheduleRepository creates a Postgres-backed meal schedule repository.
func NewMealScheduleRepository(pool *pgxpool.Pool) repository.MealScheduleRepository {
	return &mealScheduleRepository{pool: pool}
}

func (r *mealScheduleRepository) ListByUser(ctx context.Context, userID string) ([]domain.MealSchedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+mealScheduleColumns+` FROM meal_schedules WHERE user_id = $1 ORDER BY date`, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	schedules := []domain.MealSchedule{}
	for rows.Next() {
		var s domain.MealSchedule
		if err := scanMealSchedule(rows, &s); err != nil {
			return nil, wrapError(err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}
	return schedules, nil
}

func (r *mealScheduleRepository) Create(ctx context.Context, schedule *domain.MealSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO meal_schedules (id, meal_plan_id, user_id, date, recurrence, days_of_week)
		 VALUES ($1, $2, $3, $4::date, $5, $6)
		 RETURNING `+mealScheduleColumns,
		schedule.ID, schedule.MealPlanID, schedule.UserID, schedule.Date,
		string(schedule.Recurrence), daysParam(schedule.DaysOfWeek))
	return wrapError(scanMealSchedule(row, schedule))
}

func (r *mealScheduleRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM meal_schedules WHERE id = $1 AND user_id = $2`, id, userID)
	return wrapError(err)
}

func scanMealSchedule(row pgx.Row, s *domain.MealSchedule) error {
	var recurrence string
	if err := row.Scan(&s.ID, &s.MealPlanID, &s.UserID, &s.Date, &recurrence,
		&s.DaysOfWeek, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return err
	}
	s.Recurrence = domain.Recurrence(recurrence)
	return nil
}

// daysParam turns an empty day set into a NULL column value.
func daysParam(days []string) []string {
	if len(days) == 0 {
		return nil
	}
	return days
}
