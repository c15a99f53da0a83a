package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"booking-backend/internal/booking"
	bookingUC "booking-backend/internal/booking/usecase"
	"booking-backend/internal/middleware"
	"booking-backend/pkg/datemath"
	"booking-backend/pkg/log"
	"booking-backend/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	mw      middleware.Middleware
	metrics *metrics.Metrics

	// Booking domain
	calendar       booking.Calendar
	dateMath       *datemath.Parser
	bookingOptions bookingUC.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Empty trusts
	// nobody, so the client IP is the connection's remote address.
	TrustedProxies []string

	// Metrics is optional. When nil, /metrics is not served.
	Metrics *metrics.Metrics

	// Booking domain
	Calendar       booking.Calendar
	DateMath       *datemath.Parser
	BookingOptions bookingUC.Options
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		metrics:         cfg.Metrics,
		calendar:        cfg.Calendar,
		dateMath:        cfg.DateMath,
		bookingOptions:  cfg.BookingOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mw = middleware.New(logger, cfg.Metrics, cfg.Middleware)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
