package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"acoach/coach-api/internal/auth"
	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/repository"
	"acoach/coach-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// staticLookup resolves subjects against a fixed user set; introspection
// always misses.
type staticLookup map[string]*domain.User

func (l staticLookup) UserByID(_ context.Context, id string) (*domain.User, error) {
	return l[id], nil
}

func (l staticLookup) UserByToken(_ context.Context, _ string) (*domain.User, error) {
	return nil, nil
}

func tokenFor(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// In-memory repositories backing the real services in handler tests.

type memWorkoutRepo struct {
	items map[string]domain.Workout
}

func (r *memWorkoutRepo) ListByUser(_ context.Context, userID string) ([]domain.Workout, error) {
	out := []domain.Workout{}
	for _, w := range r.items {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func duplicateKeyError(id string) error {
	return &repository.StorageError{
		Message: "duplicate key value violates unique constraint",
		Details: "Key (id)=(" + id + ") already exists.",
		Code:    "23505",
	}
}

func (r *memWorkoutRepo) Create(_ context.Context, w *domain.Workout) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if _, exists := r.items[w.ID]; exists {
		return duplicateKeyError(w.ID)
	}
	now := time.Now().UTC()
	w.CreatedAt, w.UpdatedAt = now, now
	r.items[w.ID] = *w
	return nil
}

func (r *memWorkoutRepo) Update(_ context.Context, w *domain.Workout) error {
	existing, ok := r.items[w.ID]
	if !ok || existing.UserID != w.UserID {
		return repository.ErrNotFound
	}
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = time.Now().UTC()
	r.items[w.ID] = *w
	return nil
}

func (r *memWorkoutRepo) Delete(_ context.Context, id, userID string) error {
	if existing, ok := r.items[id]; ok && existing.UserID == userID {
		delete(r.items, id)
	}
	return nil
}

type memMealPlanRepo struct {
	items map[string]domain.MealPlan
}

func (r *memMealPlanRepo) ListByUser(_ context.Context, userID string) ([]domain.MealPlan, error) {
	out := []domain.MealPlan{}
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memMealPlanRepo) Create(_ context.Context, p *domain.MealPlan) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, exists := r.items[p.ID]; exists {
		return duplicateKeyError(p.ID)
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	r.items[p.ID] = *p
	return nil
}

func (r *memMealPlanRepo) Update(_ context.Context, p *domain.MealPlan) error {
	existing, ok := r.items[p.ID]
	if !ok || existing.UserID != p.UserID {
		return repository.ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.items[p.ID] = *p
	return nil
}

func (r *memMealPlanRepo) Delete(_ context.Context, id, userID string) error {
	if existing, ok := r.items[id]; ok && existing.UserID == userID {
		delete(r.items, id)
	}
	return nil
}

type memWorkoutScheduleRepo struct {
	items map[string]domain.WorkoutSchedule
}

func (r *memWorkoutScheduleRepo) ListByUser(_ context.Context, userID string) ([]domain.WorkoutSchedule, error) {
	out := []domain.WorkoutSchedule{}
	for _, s := range r.items {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memWorkoutScheduleRepo) Create(_ context.Context, s *domain.WorkoutSchedule) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	r.items[s.ID] = *s
	return nil
}

func (r *memWorkoutScheduleRepo) Delete(_ context.Context, id, userID string) error {
	if existing, ok := r.items[id]; ok && existing.UserID == userID {
		delete(r.items, id)
	}
	return nil
}

type memMealScheduleRepo struct {
	items map[string]domain.MealSchedule
}

func (r *memMealScheduleRepo) ListByUser(_ context.Context, userID string) ([]domain.MealSchedule, error) {
	out := []domain.MealSchedule{}
	for _, s := range r.items {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memMealScheduleRepo) Create(_ context.Context, s *domain.MealSchedule) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	r.items[s.ID] = *s
	return nil
}

func (r *memMealScheduleRepo) Delete(_ context.Context, id, userID string) error {
	if existing, ok := r.items[id]; ok && existing.UserID == userID {
		delete(r.items, id)
	}
	return nil
}

type memRepos struct {
	workouts         *memWorkoutRepo
	plans            *memMealPlanRepo
	workoutSchedules *memWorkoutScheduleRepo
	mealSchedules    *memMealScheduleRepo
}

// newTestRouter wires the full engine over in-memory repositories with
// two known users, user-1 and user-2.
func newTestRouter(t *testing.T) (*gin.Engine, *memRepos) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := &memRepos{
		workouts:         &memWorkoutRepo{items: map[string]domain.Workout{}},
		plans:            &memMealPlanRepo{items: map[string]domain.MealPlan{}},
		workoutSchedules: &memWorkoutScheduleRepo{items: map[string]domain.WorkoutSchedule{}},
		mealSchedules:    &memMealScheduleRepo{items: map[string]domain.MealSchedule{}},
	}
	lookup := staticLookup{
		"user-1": {ID: "user-1", Email: "one@example.com"},
		"user-2": {ID: "user-2", Email: "two@example.com"},
	}
	router := gin.New()
	SetupRoutes(
		router,
		auth.NewResolver(lookup, nil),
		service.NewWorkoutService(repos.workouts),
		service.NewMealPlanService(repos.plans),
		service.NewScheduleService(repos.workoutSchedules, repos.mealSchedules),
	)
	return router, repos
}

func doRequestWithContentType(t *testing.T, router *gin.Engine, method, path, token, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
