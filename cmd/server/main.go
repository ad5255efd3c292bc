package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acoach/coach-api/internal/api"
	"acoach/coach-api/internal/auth"
	"acoach/coach-api/internal/config"
	"acoach/coach-api/internal/repository/postgres"
	"acoach/coach-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Error("could not load config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := postgres.Connect(ctx, cfg.Database.URL)
	cancel()
	if err != nil {
		logger.Error("could not connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connection established")

	workoutRepo := postgres.NewWorkoutRepository(pool)
	mealPlanRepo := postgres.NewMealPlanRepository(pool)
	workoutScheduleRepo := postgres.NewWorkoutScheduleRepository(pool)
	mealScheduleRepo := postgres.NewMealScheduleRepository(pool)

	identity := auth.NewGoTrueClient(cfg.Auth.URL, cfg.Auth.ServiceKey)
	resolver := auth.NewResolver(identity, logger)

	workoutService := service.NewWorkoutService(workoutRepo)
	mealPlanService := service.NewMealPlanService(mealPlanRepo)
	scheduleService := service.NewScheduleService(workoutScheduleRepo, mealScheduleRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, resolver, workoutService, mealPlanService, scheduleService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen and serve failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server exiting")
}
