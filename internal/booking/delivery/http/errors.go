package http

import (
	"errors"
	"net/http"

	"booking-backend/internal/booking"
	pkgErrors "booking-backend/pkg/errors"
)

var (
	errBodyTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large.")
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body.")

	errInvalidStartTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid start time.")
	errInvalidCustomer  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Please provide name, phone, and a valid email.")
	errSlotConflict     = pkgErrors.NewHTTPError(http.StatusConflict, "That slot was just booked. Please pick another time.")
)

// mapError translates use case errors into HTTP errors from pkg/errors.
// Anything unrecognised is reported as the generic server error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidStartTime):
		return errInvalidStartTime
	case errors.Is(err, booking.ErrInvalidCustomer):
		return errInvalidCustomer
	case errors.Is(err, booking.ErrSlotConflict):
		return errSlotConflict
	default:
		return pkgErrors.ErrInternalServerError
	}
}
