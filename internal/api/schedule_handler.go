package api

import (
	"net/http"
	"time"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the /api/workout-schedules and
// /api/meal-schedules endpoints. Schedules are created and deleted but
// never updated.
type ScheduleHandler struct {
	schedules service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(schedules service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// WorkoutScheduleRequest parses both field spellings; the storage-style
// spelling wins when both appear. An absent or empty day set elides
// daysOfWeek entirely.
type WorkoutScheduleRequest struct {
	WorkoutID       string   `json:"workoutId"`
	WorkoutIDSnake  string   `json:"workout_id"`
	UserID          string   `json:"userId"`
	UserIDSnake     string   `json:"user_id"`
	Date            string   `json:"date"`
	Recurrence      string   `json:"recurrence"`
	DaysOfWeek      []string `json:"daysOfWeek"`
	DaysOfWeekSnake []string `json:"days_of_week"`
}

func (r WorkoutScheduleRequest) toDomain() domain.WorkoutSchedule {
	return domain.WorkoutSchedule{
		WorkoutID:  firstNonEmpty(r.WorkoutIDSnake, r.WorkoutID),
		UserID:     firstNonEmpty(r.UserIDSnake, r.UserID),
		Date:       r.Date,
		Recurrence: domain.Recurrence(r.Recurrence),
		DaysOfWeek: pickDays(r.DaysOfWeekSnake, r.DaysOfWeek),
	}
}

// MealScheduleRequest mirrors WorkoutScheduleRequest for meal plans.
type MealScheduleRequest struct {
	MealPlanID      string   `json:"mealPlanId"`
	MealPlanIDSnake string   `json:"meal_plan_id"`
	UserID          string   `json:"userId"`
	UserIDSnake     string   `json:"user_id"`
	Date            string   `json:"date"`
	Recurrence      string   `json:"recurrence"`
	DaysOfWeek      []string `json:"daysOfWeek"`
	DaysOfWeekSnake []string `json:"days_of_week"`
}

func (r MealScheduleRequest) toDomain() domain.MealSchedule {
	return domain.MealSchedule{
		MealPlanID: firstNonEmpty(r.MealPlanIDSnake, r.MealPlanID),
		UserID:     firstNonEmpty(r.UserIDSnake, r.UserID),
		Date:       r.Date,
		Recurrence: domain.Recurrence(r.Recurrence),
		DaysOfWeek: pickDays(r.DaysOfWeekSnake, r.DaysOfWeek),
	}
}

func pickDays(snake, camel []string) []string {
	days := snake
	if len(days) == 0 {
		days = camel
	}
	if len(days) == 0 {
		return nil
	}
	return days
}

// WorkoutScheduleResponse is the client shape of a workout schedule.
type WorkoutScheduleResponse struct {
	ID         string    `json:"id"`
	WorkoutID  string    `json:"workoutId"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	Recurrence string    `json:"recurrence"`
	DaysOfWeek []string  `json:"daysOfWeek,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func workoutScheduleToResponse(s domain.WorkoutSchedule) WorkoutScheduleResponse {
	return WorkoutScheduleResponse{
		ID:         s.ID,
		WorkoutID:  s.WorkoutID,
		UserID:     s.UserID,
		Date:       s.Date,
		Recurrence: string(s.Recurrence),
		DaysOfWeek: s.DaysOfWeek,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// MealScheduleResponse is the client shape of a meal schedule.
type MealScheduleResponse struct {
	ID         string    `json:"id"`
	MealPlanID string    `json:"mealPlanId"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	Recurrence string    `json:"recurrence"`
	DaysOfWeek []string  `json:"daysOfWeek,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func mealScheduleToResponse(s domain.MealSchedule) MealScheduleResponse {
	return MealScheduleResponse{
		ID:         s.ID,
		MealPlanID: s.MealPlanID,
		UserID:     s.UserID,
		Date:       s.Date,
		Recurrence: string(s.Recurrence),
		DaysOfWeek: s.DaysOfWeek,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ListWorkoutSchedules returns every workout schedule owned by the user.
func (h *ScheduleHandler) ListWorkoutSchedules(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	schedules, err := h.schedules.ListWorkoutSchedules(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]WorkoutScheduleResponse, len(schedules))
	for i, s := range schedules {
		responses[i] = workoutScheduleToResponse(s)
	}
	c.JSON(http.StatusOK, responses)
}

// CreateWorkoutSchedule stores a new workout schedule for the user.
func (h *ScheduleHandler) CreateWorkoutSchedule(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req WorkoutScheduleRequest
	hasBody, err := bindJSONBody(c, &req)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !hasBody {
		respondBadRequest(c, "Schedule data is required")
		return
	}
	created, err := h.schedules.CreateWorkoutSchedule(c.Request.Context(), user.ID, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workoutScheduleToResponse(*created))
}

// DeleteWorkoutSchedule removes the schedule named by the body id.
func (h *ScheduleHandler) DeleteWorkoutSchedule(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req deleteRequest
	if _, err := bindJSONBody(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	scheduleID := firstNonEmpty(req.ID, c.Param("id"))
	if scheduleID == "" {
		respondBadRequest(c, "Schedule ID is required for deletion")
		return
	}
	if err := h.schedules.DeleteWorkoutSchedule(c.Request.Context(), user.ID, scheduleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nil)
}

// ListMealSchedules returns every meal schedule owned by the user.
func (h *ScheduleHandler) ListMealSchedules(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	schedules, err := h.schedules.ListMealSchedules(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]MealScheduleResponse, len(schedules))
	for i, s := range schedules {
		responses[i] = mealScheduleToResponse(s)
	}
	c.JSON(http.StatusOK, responses)
}

// CreateMealSchedule stores a new meal schedule for the user.
func (h *ScheduleHandler) CreateMealSchedule(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req MealScheduleRequest
	hasBody, err := bindJSONBody(c, &req)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !hasBody {
		respondBadRequest(c, "Schedule data is required")
		return
	}
	created, err := h.schedules.CreateMealSchedule(c.Request.Context(), user.ID, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealScheduleToResponse(*created))
}

// DeleteMealSchedule removes the schedule named by the body id.
func (h *ScheduleHandler) DeleteMealSchedule(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req deleteRequest
	if _, err := bindJSONBody(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	scheduleID := firstNonEmpty(req.ID, c.Param("id"))
	if scheduleID == "" {
		respondBadRequest(c, "Schedule ID is required for deletion")
		return
	}
	if err := h.schedules.DeleteMealSchedule(c.Request.Context(), user.ID, scheduleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nil)
}
