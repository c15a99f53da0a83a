package usecase

import (
	"context"

	"booking-backend/internal/booking"
	"booking-backend/pkg/gcalendar"
	"booking-backend/pkg/metrics"
)

// cleanupPlaceholder deletes the availability placeholder the booking
// replaced. It only runs when the feature is enabled and the slot named a
// placeholder. It never returns an error: the booking already exists.
func (uc *implUseCase) cleanupPlaceholder(ctx context.Context, slot booking.Slot) {
	if !uc.opts.DeleteAvailabilityEvent || slot.AvailabilityEventID == "" {
		return
	}

	// Detached from the request so a client hanging up after the insert
	// does not cancel the delete.
	callCtx, cancel := uc.callContext(context.WithoutCancel(ctx))
	defer cancel()

	err := uc.calendar.DeleteEvent(callCtx, gcalendar.DeleteEventRequest{
		CalendarID:  uc.opts.CalendarID,
		EventID:     slot.AvailabilityEventID,
		SendUpdates: gcalendar.SendUpdatesNone,
	})
	uc.metrics.IncCalendarCall(metrics.OpDeleteEvent, err)
	if err != nil {
		uc.discardCleanupError(ctx, slot.AvailabilityEventID, err)
	}
}

// discardCleanupError is the deliberate sink for placeholder deletion
// failures. The error is not returned, retried, or logged as a failure;
// it is counted and noted at debug level.
func (uc *implUseCase) discardCleanupError(ctx context.Context, eventID string, err error) {
	uc.metrics.IncCleanupFailure()
	uc.l.Debugf(ctx, "booking.usecase.cleanupPlaceholder: placeholder %s left in place: %v", eventID, err)
}
