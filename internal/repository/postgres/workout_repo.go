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

const workoutColumns = `id, user_id, name, description, exercises, estimated_duration, created_at, updated_at`

// workoutRepository implements repository.WorkoutRepository on Postgres.
// Exercises persist as a jsonb payload in their client shape.
type workoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository creates a Postgres-backed workout repository.
func NewWorkoutRepository(pool *pgxpool.Pool) repository.WorkoutRepository {
	return &workoutRepository{pool: pool}
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	workouts := []domain.Workout{}
	for rows.Next() {
		var w domain.Workout
		if err := scanWorkout(rows, &w); err != nil {
			return nil, wrapError(err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}
	return workouts, nil
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	exercises, err := exercisesParam(workout.Exercises)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO workouts (id, user_id, name, description, exercises, estimated_duration)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6)
		 RETURNING `+workoutColumns,
		workout.ID, workout.UserID, workout.Name, workout.Description, exercises, workout.EstimatedDuration)
	return wrapError(scanWorkout(row, workout))
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	exercises, err := exercisesParam(workout.Exercises)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx,
		`UPDATE workouts
		 SET name = $1, description = $2, exercises = $3::jsonb, estimated_duration = $4, updated_at = now()
		 WHERE id = $5 AND user_id = $6
		 RETURNING `+workoutColumns,
		workout.Name, workout.Description, exercises, workout.EstimatedDuration, workout.ID, workout.UserID)
	if err := scanWorkout(row, workout); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return wrapError(err)
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	return wrapError(err)
}

func scanWorkout(row pgx.Row, w *domain.Workout) error {
	var exercises []byte
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &exercises,
		&w.EstimatedDuration, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return err
	}
	w.Exercises = nil
	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &w.Exercises); err != nil {
			return fmt.Errorf("decode exercises payload: %w", err)
		}
	}
	return nil
}

func exercisesParam(exercises []domain.Exercise) (string, error) {
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	b, err := json.Marshal(exercises)
	if err != nil {
		return "", fmt.Errorf("encode exercises payload: %w", err)
	}
	return string(b), nil
}
