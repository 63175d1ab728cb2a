// File: petopia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petopia/config"
	"petopia/cron"
	"petopia/database"
	appointmentRepo "petopia/database/repository/appointment"
	catalogRepo "petopia/database/repository/catalog"
	guestRepo "petopia/database/repository/guest"
	ownerRepo "petopia/database/repository/owner"
	petRepo "petopia/database/repository/pet"
	"petopia/handlers"
	"petopia/middleware"
	"petopia/routes"
	"petopia/services/appointment"
	"petopia/services/document"
	"petopia/services/notification"
	"petopia/services/otp"
	"petopia/services/reminder"
	"petopia/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitOTPCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	pets := petRepo.NewMongoPetRepo()
	owners := ownerRepo.NewMongoOwnerRepo()
	guests := guestRepo.NewMongoGuestRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()

	// services.
	mailer := notification.NewMailer()
	generator := document.NewDefaultGenerator()
	otpBroker := otp.NewRedisBroker(utils.GetOTPCacheClient())

	appointmentService := &appointment.DefaultAppointmentService{
		Appointments: apptRepo,
		Pets:         pets,
		Owners:       owners,
		Guests:       guests,
		Catalog:      catalog,
		OTP:          otpBroker,
		Notifier:     mailer,
		Documents:    generator,
		Logger:       logger,
		FrontendURL:  config.AppConfig.FrontendURL,
	}

	sweeper := &reminder.Sweeper{
		Appointments: apptRepo,
		Owners:       owners,
		Guests:       guests,
		Catalog:      catalog,
		Notifier:     mailer,
		Logger:       logger,
	}
	cron.InitReminderWorker(sweeper)

	bookingHandler := handlers.NewBookingHandler(appointmentService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	routes.RegisterRoutes(router, bookingHandler, appointmentHandler)

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
