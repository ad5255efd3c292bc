package service

import (
	"context"
	"errors"
	"testing"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedWorkoutRepo records calls and plays back configured errors.
type scriptedWorkoutRepo struct {
	updateErr error
	createErr error

	updated *domain.Workout
	created *domain.Workout
}

func (r *scriptedWorkoutRepo) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	return nil, nil
}

func (r *scriptedWorkoutRepo) Create(ctx context.Context, w *domain.Workout) error {
	copied := *w
	r.created = &copied
	return r.createErr
}

func (r *scriptedWorkoutRepo) Update(ctx context.Context, w *domain.Workout) error {
	copied := *w
	r.updated = &copied
	return r.updateErr
}

func (r *scriptedWorkoutRepo) Delete(ctx context.Context, id, userID string) error {
	return nil
}

func TestWorkoutCreateDiscardsClientIDAndOwner(t *testing.T) {
	repo := &scriptedWorkoutRepo{}
	svc := NewWorkoutService(repo)

	created, err := svc.Create(context.Background(), "user-1", domain.Workout{
		ID:     "client-chosen",
		UserID: "somebody-else",
		Name:   "Push Day",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Empty(t, repo.created.ID)
	assert.Equal(t, "user-1", repo.created.UserID)
	assert.Equal(t, "user-1", created.UserID)
}

func TestWorkoutUpsertUpdatesInPlace(t *testing.T) {
	repo := &scriptedWorkoutRepo{}
	svc := NewWorkoutService(repo)

	updated, err := svc.Upsert(context.Background(), "user-1", "w-9", domain.Workout{Name: "Leg Day"})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "w-9", repo.updated.ID)
	assert.Equal(t, "user-1", repo.updated.UserID)
	assert.Nil(t, repo.created)
	assert.Equal(t, "w-9", updated.ID)
}

func TestWorkoutUpsertFallsBackToCreateWithRequestedID(t *testing.T) {
	repo := &scriptedWorkoutRepo{updateErr: repository.ErrNotFound}
	svc := NewWorkoutService(repo)

	created, err := svc.Upsert(context.Background(), "user-1", "42", domain.Workout{Name: "New"})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "42", repo.created.ID)
	assert.Equal(t, "user-1", repo.created.UserID)
	assert.Equal(t, "42", created.ID)
}

func TestWorkoutUpsertSurfacesStorageErrors(t *testing.T) {
	storageErr := &repository.StorageError{Message: "duplicate key value violates unique constraint", Code: "23505"}
	repo := &scriptedWorkoutRepo{updateErr: storageErr}
	svc := NewWorkoutService(repo)

	_, err := svc.Upsert(context.Background(), "user-1", "w-1", domain.Workout{})

	require.Error(t, err)
	var se *repository.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "23505", se.Code)
	assert.Nil(t, repo.created)
}

func TestWorkoutUpsertFallbackCreateErrorSurfaces(t *testing.T) {
	createErr := &repository.StorageError{Message: "duplicate key", Code: "23505"}
	repo := &scriptedWorkoutRepo{updateErr: repository.ErrNotFound, createErr: createErr}
	svc := NewWorkoutService(repo)

	_, err := svc.Upsert(context.Background(), "user-1", "w-1", domain.Workout{})

	var se *repository.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "23505", se.Code)
}
