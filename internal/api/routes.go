package api

import (
	"net/http"

	"acoach/coach-api/internal/auth"
	"acoach/coach-api/internal/service"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// apiEndpoints is the public surface advertised by the root endpoint.
var apiEndpoints = []string{
	"/api/workouts",
	"/api/workout-schedules",
	"/api/meal-plans",
	"/api/meal-schedules",
}

// browserProbePaths are paths browsers request on their own; answering
// them with 204 keeps noise out of the error logs.
var browserProbePaths = []string{"/favicon.ico", "/index.html", "/vite.svg"}

// SetupRoutes assembles the full HTTP surface on the given engine. The
// route table is compiled once here; matching is anchored to the full
// path and a matched path with an unregistered method yields 405.
func SetupRoutes(
	router *gin.Engine,
	resolver *auth.Resolver,
	workoutService service.WorkoutService,
	mealPlanService service.MealPlanService,
	scheduleService service.ScheduleService,
) {
	router.HandleMethodNotAllowed = true
	router.Use(CORSMiddleware(), IdentityMiddleware(resolver))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrorBody{Message: "Not Found"}})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: ErrorBody{Message: "Method Not Allowed"}})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "A-Coach API",
			"version":   apiVersion,
			"endpoints": apiEndpoints,
		})
	})
	for _, path := range browserProbePaths {
		router.GET(path, func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}

	workoutHandler := NewWorkoutHandler(workoutService)
	mealPlanHandler := NewMealPlanHandler(mealPlanService)
	scheduleHandler := NewScheduleHandler(scheduleService)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/workouts", workoutHandler.List)
		apiGroup.POST("/workouts", workoutHandler.Create)
		apiGroup.PUT("/workouts/:id", workoutHandler.Upsert)
		apiGroup.DELETE("/workouts", workoutHandler.Delete)
		apiGroup.DELETE("/workouts/:id", workoutHandler.Delete)

		apiGroup.GET("/meal-plans", mealPlanHandler.List)
		apiGroup.POST("/meal-plans", mealPlanHandler.Create)
		apiGroup.PUT("/meal-plans/:id", mealPlanHandler.Upsert)
		apiGroup.DELETE("/meal-plans", mealPlanHandler.Delete)
		apiGroup.DELETE("/meal-plans/:id", mealPlanHandler.Delete)

		apiGroup.GET("/workout-schedules", scheduleHandler.ListWorkoutSchedules)
		apiGroup.POST("/workout-schedules", scheduleHandler.CreateWorkoutSchedule)
		apiGroup.DELETE("/workout-schedules", scheduleHandler.DeleteWorkoutSchedule)
		apiGroup.DELETE("/workout-schedules/:id", scheduleHandler.DeleteWorkoutSchedule)

		apiGroup.GET("/meal-schedules", scheduleHandler.ListMealSchedules)
		apiGroup.POST("/meal-schedules", scheduleHandler.CreateMealSchedule)
		apiGroup.DELETE("/meal-schedules", scheduleHandler.DeleteMealSchedule)
		apiGroup.DELETE("/meal-schedules/:id", scheduleHandler.DeleteMealSchedule)
	}
}
