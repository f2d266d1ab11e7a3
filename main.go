package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"managehotel/config"
	"managehotel/controllers"
	"managehotel/routes"
	"managehotel/services"
	"managehotel/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	utils.InitLogger(cfg.Server.LogLevel)

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	log.Info().Msg("database connection established, migrations applied")

	userService := services.NewUserService(db)
	bookingService := services.NewBookingService(db, userService)
	roomService := services.NewRoomService(db)
	invoiceService := services.NewInvoiceService(db)
	paymentService := services.NewPaymentService(db, cfg)
	productService := services.NewProductService(db)
	serviceService := services.NewServiceService(db)
	feedbackService := services.NewFeedbackService(db)
	authService := services.NewAuthService(db, cfg)

	router := routes.SetupRouter(
		cfg,
		authService,
		controllers.NewAuthController(authService, userService),
		controllers.NewBookingController(bookingService),
		controllers.NewRoomController(roomService),
		controllers.NewPaymentController(paymentService, invoiceService),
		controllers.NewServiceController(serviceService, productService),
		controllers.NewFeedbackController(feedbackService),
	)

	addr := ":" + cfg.Server.Port
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
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
