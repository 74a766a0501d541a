package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalaid/config"
	"legalaid/cron"
	"legalaid/database"
	appointmentRepo "legalaid/database/repository/appointment"
	caseRepo "legalaid/database/repository/legalcase"
	notificationRepo "legalaid/database/repository/notification"
	scheduleRepo "legalaid/database/repository/schedule"
	"legalaid/handlers"
	"legalaid/middleware"
	"legalaid/routes"
	"legalaid/services/casehandoff"
	"legalaid/services/events"
	"legalaid/services/notification"
	"legalaid/services/scheduling"
	"legalaid/services/tasks"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()
	casesRepo := caseRepo.NewMongoCaseRepo()
	schedRepo := scheduleRepo.NewMongoScheduleRepo()

	if err := appointmentRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure appointment indexes: %v", err)
	}

	// Cross-view update signal. Every write path publishes on it; dashboard
	// views subscribe through the registry.
	bus := events.NewBus()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:  notifRepo,
		Cache: utils.GetCacheClient(),
	}

	resolver := &scheduling.AvailabilityResolver{
		Appointments: apptRepo,
		Schedules:    schedRepo,
		DayStartMin:  config.AppConfig.BusinessDayStartMin,
		DayEndMin:    config.AppConfig.BusinessDayEndMin,
		SlotMin:      config.AppConfig.SlotDurationMin,
	}

	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:         apptRepo,
		Resolver:     resolver,
		Notifier:     notificationService,
		Reminders:    &tasks.AsynqReminderScheduler{Client: reminderClient},
		Bus:          bus,
		SlotDuration: time.Duration(config.AppConfig.SlotDurationMin) * time.Minute,
	}

	handoffService := &casehandoff.DefaultHandoffService{
		Cases:        casesRepo,
		Appointments: apptRepo,
		Bus:          bus,
	}

	// Reminder worker. Fired reminders land in the notification store and
	// surface through the same polled feed as every other update.
	go cron.InitReminderWorker(notifRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Appointment:  handlers.NewAppointmentHandler(schedulingService, logger),
		Notification: handlers.NewNotificationHandler(notificationService, logger),
		Case:         handlers.NewCaseHandler(handoffService, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
