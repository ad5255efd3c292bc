package domain

import "time"

// MealPlan groups a day's meals with an optional nutrition summary.
type MealPlan struct {
	ID             string
	UserID         string
	Name           string
	Description    string
	TotalNutrition *Nutrition
	Meals          []Meal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Meal is the canonical meal entry: the type tag ("breakfast", "lunch", ...)
// is always attached, even when the client submitted the keyed-map form.
type Meal struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Time  string `json:"time"`
	Foods []Food `json:"foods"`
}

// Food is a single portion within a meal.
type Food struct {
	Name      string    `json:"name"`
	Portion   Number    `json:"portion"`
	Unit      string    `json:"unit"`
	Nutrition Nutrition `json:"nutrition"`
}

// Nutrition holds the macro summary. All fields are re-coerced to numbers
// on both read and write paths, see Number.
type Nutrition struct {
	Calories Number `json:"calories"`
	Protein  Number `json:"protein"`
	Carbs    Number `json:"carbs"`
	Fat      Number `json:"fat"`
}
