// File: taly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taly/config"
	"taly/cron"
	"taly/database"
	accountRepoPkg "taly/database/repository/account"
	intervalRepoPkg "taly/database/repository/interval"
	schedulingRepoPkg "taly/database/repository/scheduling"
	sessionRepoPkg "taly/database/repository/session"
	userRepoPkg "taly/database/repository/user"
	"taly/handlers"
	"taly/middleware"
	"taly/routes"
	"taly/services/auth"
	"taly/services/booking"
	"taly/services/calendar"
	"taly/services/user"
	"taly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	intervalRepo := intervalRepoPkg.NewMongoIntervalRepo()
	schedulingRepo := schedulingRepoPkg.NewMongoSchedulingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Intervals: intervalRepo,
	}
	calendarService := &calendar.DefaultCalendarService{
		Users:       userRepo,
		Intervals:   intervalRepo,
		Schedulings: schedulingRepo,
		Cache:       utils.GetCacheClient(),
	}
	schedulingService := &booking.DefaultSchedulingService{
		Users:       userRepo,
		Intervals:   intervalRepo,
		Schedulings: schedulingRepo,
		Cache:       utils.GetCacheClient(),
	}
	authService := &auth.DefaultAuthService{
		Users:     userRepo,
		Accounts:  accountRepo,
		Sessions:  sessionRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Cache:     utils.GetCacheClient(),
	}

	userHandler := handlers.NewUserHandler(userService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	bookingHandler := handlers.NewBookingHandler(schedulingService)
	authHandler := handlers.NewAuthHandler(authService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SessionRepo: sessionRepo,

		// User endpoints.
		ClaimUsernameHandler:    userHandler.ClaimUsernameHandler,
		GetUserHandler:          userHandler.GetUserHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		SetTimeIntervalsHandler: userHandler.SetTimeIntervalsHandler,

		// Calendar endpoints.
		BlockedDatesHandler:    calendarHandler.BlockedDatesHandler,
		DayAvailabilityHandler: calendarHandler.DayAvailabilityHandler,
		MonthGridHandler:       calendarHandler.MonthGridHandler,

		// Booking endpoints.
		ConfirmSchedulingHandler: bookingHandler.ConfirmSchedulingHandler,

		// Auth endpoints.
		GoogleLoginHandler:    authHandler.GoogleLoginHandler,
		GoogleCallbackHandler: authHandler.GoogleCallbackHandler,
		SignOutHandler:        authHandler.SignOutHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background maintenance and health monitoring.
	cron.InitSessionSweeper(sessionRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
