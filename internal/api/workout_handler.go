package api

import (
	"net/http"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the /api/workouts endpoints.
type WorkoutHandler struct {
	workouts service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workouts service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// WorkoutRequest is the client payload for creates and updates. The owner
// field is parsed in both spellings for tolerance but handlers always
// overwrite it with the authenticated identity.
type WorkoutRequest struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Exercises         []domain.Exercise `json:"exercises"`
	EstimatedDuration domain.Number     `json:"estimatedDuration"`
	UserID            string            `json:"user_id"`
	UserIDCamel       string            `json:"userId"`
}

func (r WorkoutRequest) toDomain() domain.Workout {
	return domain.Workout{
		Name:              r.Name,
		Description:       r.Description,
		Exercises:         r.Exercises,
		EstimatedDuration: float64(r.EstimatedDuration),
		UserID:            firstNonEmpty(r.UserID, r.UserIDCamel),
	}
}

// WorkoutResponse is the client shape of a workout.
type WorkoutResponse struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Exercises         []domain.Exercise `json:"exercises"`
	EstimatedDuration float64           `json:"estimatedDuration"`
}

func workoutToResponse(w domain.Workout) WorkoutResponse {
	exercises := w.Exercises
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return WorkoutResponse{
		ID:                w.ID,
		UserID:            w.UserID,
		Name:              w.Name,
		Description:       w.Description,
		Exercises:         exercises,
		EstimatedDuration: w.EstimatedDuration,
	}
}

// List returns every workout owned by the authenticated user.
func (h *WorkoutHandler) List(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	workouts, err := h.workouts.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = workoutToResponse(w)
	}
	c.JSON(http.StatusOK, responses)
}

// Create stores a new workout owned by the authenticated user.
func (h *WorkoutHandler) Create(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	hasBody, err := bindJSONBody(c, &req)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !hasBody {
		respondBadRequest(c, "Workout data is required")
		return
	}
	created, err := h.workouts.Create(c.Request.Context(), user.ID, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workoutToResponse(*created))
}

// Upsert updates the workout at the path id, creating it with that id when
// it does not exist yet under this user.
func (h *WorkoutHandler) Upsert(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	workoutID := c.Param("id")
	if workoutID == "" {
		respondBadRequest(c, "Workout ID is required for updates")
		return
	}
	var req WorkoutRequest
	hasBody, err := bindJSONBody(c, &req)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !hasBody {
		respondBadRequest(c, "Workout data is required")
		return
	}
	updated, err := h.workouts.Upsert(c.Request.Context(), user.ID, workoutID, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workoutToResponse(*updated))
}

// Delete removes the workout named by the body id (path id accepted as a
// fallback), scoped to the authenticated user.
func (h *WorkoutHandler) Delete(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req deleteRequest
	if _, err := bindJSONBody(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	workoutID := firstNonEmpty(req.ID, c.Param("id"))
	if workoutID == "" {
		respondBadRequest(c, "Workout ID is required for deletion")
		return
	}
	if err := h.workouts.Delete(c.Request.Context(), user.ID, workoutID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nil)
}
