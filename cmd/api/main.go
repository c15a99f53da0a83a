package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-backend/config"
	_ "booking-backend/docs" // Swagger docs
	bookingUC "booking-backend/internal/booking/usecase"
	"booking-backend/internal/httpserver"
	"booking-backend/internal/middleware"
	"booking-backend/pkg/datemath"
	"booking-backend/pkg/gcalendar"
	"booking-backend/pkg/log"
	"booking-backend/pkg/metrics"
)

// @title       Booking Backend API
// @description Books training sessions straight into Google Calendar after a free/busy check.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Booking Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parsing in the business timezone
	dateMathParser, err := datemath.NewParser(cfg.Booking.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Booking.Timezone, err)
		os.Exit(1)
	}

	// 4. Google Calendar client
	calendarClient, err := gcalendar.NewClientFromOAuth(ctx, gcalendar.OAuthConfig{
		ClientID:     cfg.GoogleCalendar.ClientID,
		ClientSecret: cfg.GoogleCalendar.ClientSecret,
		RedirectURL:  cfg.GoogleCalendar.RedirectURL,
		RefreshToken: cfg.GoogleCalendar.RefreshToken,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Calendar: %v", err)
		logger.Error(ctx, "Run `go run scripts/gcal-auth/main.go` to generate a refresh token")
		os.Exit(1)
	}
	logger.Infof(ctx, "Google Calendar initialized (calendar: %s)", cfg.GoogleCalendar.CalendarID)

	// 5. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			MaxBodyBytes:       cfg.HTTPServer.MaxBodyBytes,
			CORSAllowedOrigins: cfg.HTTPServer.CORSAllowedOrigins,
			RateLimitEnabled:   cfg.RateLimit.Enabled,
			RateLimitPerMin:    cfg.RateLimit.RequestsPerMin,
		},
		Metrics:  m,
		Calendar: calendarClient,
		DateMath: dateMathParser,
		BookingOptions: bookingUC.Options{
			CalendarID:              cfg.GoogleCalendar.CalendarID,
			Timezone:                cfg.Booking.Timezone,
			DefaultDuration:         time.Duration(cfg.Booking.DefaultDurationMin) * time.Minute,
			DeleteAvailabilityEvent: cfg.Booking.DeleteAvailabilityEvent,
			CallTimeout:             cfg.GoogleCalendar.RequestTimeout,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
