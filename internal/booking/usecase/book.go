package usecase

import (
	"context"
	"errors"

	"booking-backend/internal/booking"
	"booking-backend/pkg/metrics"
)

// Book runs validate -> free/busy -> insert -> optional placeholder cleanup,
// strictly in that order. Validation and availability failures return
// before anything is written to the calendar.
//
// The free/busy read and the insert are not atomic: two concurrent requests
// for the same slot can both see it free and both insert an event. Nothing
// here closes that window.
func (uc *implUseCase) Book(ctx context.Context, input booking.BookInput) (booking.BookOutput, error) {
	req, err := uc.validate(input.Payload)
	if err != nil {
		uc.l.Infof(ctx, "booking.usecase.Book: rejected payload: %v", err)
		uc.metrics.IncBookingOutcome(metrics.OutcomeInvalidInput)
		return booking.BookOutput{}, err
	}

	if err := uc.checkAvailability(ctx, req.Slot); err != nil {
		uc.recordFailure(err)
		return booking.BookOutput{}, err
	}

	event, err := uc.createEvent(ctx, req)
	if err != nil {
		uc.recordFailure(err)
		return booking.BookOutput{}, err
	}

	uc.cleanupPlaceholder(ctx, req.Slot)

	uc.l.Infof(ctx, "booking.usecase.Book: booked %s - %s event_id=%s",
		req.Slot.Start.Format(rfc3339), req.Slot.End.Format(rfc3339), event.ID)
	uc.metrics.IncBookingOutcome(metrics.OutcomeBooked)

	return booking.BookOutput{
		EventID:  event.ID,
		HtmlLink: event.HtmlLink,
	}, nil
}

func (uc *implUseCase) recordFailure(err error) {
	if errors.Is(err, booking.ErrSlotConflict) {
		uc.metrics.IncBookingOutcome(metrics.OutcomeConflict)
		return
	}
	uc.metrics.IncBookingOutcome(metrics.OutcomeServerError)
}
