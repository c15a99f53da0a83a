package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "booking-backend/internal/booking/delivery/http"
	bookingUC "booking-backend/internal/booking/usecase"
)

// setupBookingDomain wires use case and handler for the booking domain and
// registers POST /api/book.
func (srv HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := bookingUC.New(srv.l, srv.calendar, srv.dateMath, srv.metrics, srv.bookingOptions)

	// 2. HTTP Handler
	h := bookingHTTP.New(srv.l, uc)

	// 3. Routes
	bookingHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Booking domain registered (calendar: %s, timezone: %s)",
		srv.bookingOptions.CalendarID, srv.bookingOptions.Timezone)
	return nil
}
