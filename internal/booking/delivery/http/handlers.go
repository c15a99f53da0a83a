package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "booking-backend/pkg/errors"
	"booking-backend/pkg/response"
)

// Book godoc
// @Summary     Book a time slot
// @Description Checks the slot against the calendar's free/busy data and, if it is free,
// @Description creates an event with the customer invited. Optionally removes the
// @Description availability placeholder event the slot came from.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body     object true "Booking request: {slot: {title, startIso, endIso, availabilityEventId}, customer: {name, phone, email, notes}}"
// @Success     200  {object} bookResp
// @Failure     400  {object} response.ErrorResp "Invalid start time or customer details"
// @Failure     409  {object} response.ErrorResp "Slot already booked"
// @Failure     413  {object} response.ErrorResp "Request body too large"
// @Failure     429  {object} response.ErrorResp "Rate limited"
// @Failure     500  {object} response.ErrorResp "Server error"
// @Router      /api/book [POST]
func (h *handler) Book(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processBookReq(c)
	if err != nil {
		h.l.Warnf(ctx, "booking.http.Book: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Book(ctx, input)
	if err != nil {
		mapped := h.mapError(err)
		if mapped == pkgErrors.ErrInternalServerError {
			h.l.Errorf(ctx, "uc.Book: %v", err)
		}
		response.Error(c, mapped)
		return
	}

	response.OK(c, h.newBookResp(output))
}
