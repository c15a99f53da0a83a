package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-backend/internal/booking"
)

// processBookReq binds the body into a loose JSON value. Field-level
// validation belongs to the use case, so an empty body or anything that
// parses but is not an object becomes an empty payload and fails there.
func (h *handler) processBookReq(c *gin.Context) (booking.BookInput, error) {
	payload := map[string]any{}

	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return booking.BookInput{}, errBodyTooLarge
		case errors.Is(err, io.EOF):
			return booking.BookInput{Payload: payload}, nil
		default:
			return booking.BookInput{}, errInvalidBody
		}
	}

	if obj, ok := raw.(map[string]any); ok {
		payload = obj
	}

	return booking.BookInput{Payload: payload}, nil
}
