package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"detailops/config"
	"detailops/cron"
	"detailops/database"
	bookingRepo "detailops/database/repository/booking"
	estimateRepo "detailops/database/repository/estimate"
	inspectionRepo "detailops/database/repository/inspection"
	"detailops/handlers"
	"detailops/middleware"
	"detailops/routes"
	"detailops/services/booking"
	"detailops/services/notification"
	"detailops/services/tasks"
	"detailops/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	estimates := estimateRepo.NewMongoEstimateRepo()
	inspections := inspectionRepo.NewMongoInspectionRepo()

	// scheduling engine.
	registry := booking.NewTeamRegistry(config.LoadTeams())
	validator := booking.NewSlotValidator(booking.ServiceWindow{
		StartHour: config.AppConfig.ServiceWindowStartHour,
		EndHour:   config.AppConfig.ServiceWindowEndHour,
	})
	checker := &booking.AvailabilityChecker{
		Registry:  registry,
		Bookings:  bookings,
		Validator: validator,
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler()
	notificationService := notification.NewFCMNotificationService()

	bookingService := &booking.DefaultBookingService{
		Registry:    registry,
		Validator:   validator,
		Checker:     checker,
		Bookings:    bookings,
		Estimates:   estimates,
		Inspections: inspections,
		Reminders:   reminderScheduler,
		Locker:      booking.NewRedisTeamLocker(utils.GetLockClient()),
		Now:         time.Now,
	}

	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService),
		Availability: handlers.NewAvailabilityHandler(checker, validator),
		Estimate:     handlers.NewEstimateHandler(inspections, estimates),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers: reminder delivery and nightly stale-record cleanup.
	cron.InitReminderWorker(notificationService, bookings)
	cron.InitCleanupScheduler()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetLockClient()},
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
