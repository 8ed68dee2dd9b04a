package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/routes"
	"hotel-booking/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	config.InitLogger()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	if db == nil {
		log.Fatal().Msg("config.DB is nil after ConnectDatabase()")
	}
	log.Info().Msg("database connection established and schema migrated")

	// Services
	bookingService := services.NewBookingService(db)
	roomService := services.NewRoomService(db)
	userService := services.NewUserService(db)
	staffService := services.NewStaffService(db)
	billingService := services.NewBillingService(db)

	// Controllers
	publicController := controllers.NewPublicController(roomService, bookingService)
	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	bookingController := controllers.NewBookingController(bookingService, roomService)
	roomController := controllers.NewRoomController(roomService)
	staffController := controllers.NewStaffController(staffService)
	billingController := controllers.NewBillingController(billingService)

	router := routes.SetupRouter(
		publicController,
		authController,
		userController,
		bookingController,
		roomController,
		staffController,
		billingController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
