package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"acoach/coach-api/internal/domain"
	"acoach/coach-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MealPlanHandler serves the /api/meal-plans endpoints.
type MealPlanHandler struct {
	plans service.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(plans service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

// MealsPayload accepts both client meal forms and normalizes them to the
// canonical entry list. A JSON array passes through; a JSON object keyed
// by meal type has null entries dropped and each key attached as the
// entry's type. Keys are walked in sorted order so the derived list is
// deterministic.
type MealsPayload []domain.Meal

func (m *MealsPayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*m = nil
		return nil
	}
	if trimmed[0] == '[' {
		var list []domain.Meal
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*m = list
		return nil
	}

	var byType map[string]*domain.Meal
	if err := json.Unmarshal(trimmed, &byType); err != nil {
		return err
	}
	keys := make([]string, 0, len(byType))
	for k := range byType {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]domain.Meal, 0, len(byType))
	for _, k := range keys {
		entry := byType[k]
		if entry == nil {
			continue
		}
		meal := *entry
		meal.Type = k
		list = append(list, meal)
	}
	*m = list
	return nil
}

// MealEntry is a meal in client form; the type lives in the map key.
type MealEntry struct {
	Name  string        `json:"name"`
	Time  string        `json:"time"`
	Foods []domain.Food `json:"foods"`
}

// mealsToClient derives the keyed-map form from the canonical list.
// Entries without a type cannot be keyed and are skipped.
func mealsToClient(meals []domain.Meal) map[string]MealEntry {
	out := make(map[string]MealEntry, len(meals))
	for _, meal := range meals {
		if meal.Type == "" {
			continue
		}
		foods := meal.Foods
		if foods == nil {
			foods = []domain.Food{}
		}
		out[meal.Type] = MealEntry{Name: meal.Name, Time: meal.Time, Foods: foods}
	}
	return out
}

// MealPlanRequest is the client payload for creates and updates. Both
// spellings of the nutrition summary and owner are parsed; the
// storage-style spelling wins when a payload carries both.
type MealPlanRequest struct {
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	TotalNutrition      *domain.Nutrition `json:"totalNutrition"`
	TotalNutritionSnake *domain.Nutrition `json:"total_nutrition"`
	Meals               MealsPayload      `json:"meals"`
	UserID              string            `json:"user_id"`
	UserIDCamel         string            `json:"userId"`
}

func (r MealPlanRequest) toDomain() domain.MealPlan {
	nutrition := r.TotalNutritionSnake
	if nutrition == nil {
		nutrition = r.TotalNutrition
	}
	return domain.MealPlan{
		Name:           r.Name,
		Description:    r.Description,
		TotalNutrition: nutrition,
		Meals:          []domain.Meal(r.Meals),
		UserID:         firstNonEmpty(r.UserID, r.UserIDCamel),
	}
}

// MealPlanResponse is the client shape of a meal plan; meals always use
// the keyed-map form here.
type MealPlanResponse struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	Name           string               `json:"name"`
	Description    string               `json:"description,omitempty"`
	TotalNutrition *domain.Nutrition    `json:"totalNutrition,omitempty"`
	Meals          map[string]MealEntry `json:"meals"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func mealPlanToResponse(p domain.MealPlan) MealPlanResponse {
	return MealPlanResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.Name,
		Description:    p.Description,
		TotalNutrition: p.TotalNutrition,
		Meals:          mealsToClient(p.Meals),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// List returns every meal plan owned by the authenticated user.
func (h *MealPlanHandler) List(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	plans, err := h.plans.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]MealPlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = mealPlanToResponse(p)
	}
	c.JSON(http.StatusOK, responses)
}

// Create stores a new meal plan owned by the authenticated user.
func (h *MealPlanHandler) Create(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req MealPlanRequest
	hasBody, err := bindJSONBody(c, &req)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !hasBody {
		respondBadRequest(c, "Meal plan data is required")
		return
	}
	created, err := h.plans.Create(c.Request.Context(), user.ID, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealPlanToResponse(*created))
}

// Upsert updates the meal plan at the path id, creating it with that id
// when it does not exist yet under this user.
func (h *MealPlanHandler) Upsert(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	planID := c.Param("id")
	if planID == "" {
		respondBadRequest(c, "Meal Plan ID is required for updates")
		return
	}
	var req MealPlanRequest
	hasBody, err := bindJSONBody(c, &req)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !hasBody {
		respondBadRequest(c, "Meal plan data is required")
		return
	}
	updated, err := h.plans.Upsert(c.Request.Context(), user.ID, planID, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealPlanToResponse(*updated))
}

// Delete removes the meal plan named by the body id, scoped to the
// authenticated user.
func (h *MealPlanHandler) Delete(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req deleteRequest
	if _, err := bindJSONBody(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	planID := firstNonEmpty(req.ID, c.Param("id"))
	if planID == "" {
		respondBadRequest(c, "Meal plan ID is required for deletion")
		return
	}
	if err := h.plans.Delete(c.Request.Context(), user.ID, planID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nil)
}
