package usecase

import (
	"context"
	"strings"

	"booking-backend/internal/booking"
	"booking-backend/pkg/gcalendar"
	"booking-backend/pkg/metrics"
)

// checkAvailability fails with ErrSlotConflict if the target calendar has
// any busy interval inside the slot.
func (uc *implUseCase) checkAvailability(ctx context.Context, slot booking.Slot) error {
	callCtx, cancel := uc.callContext(ctx)
	defer cancel()

	res, err := uc.calendar.QueryFreeBusy(callCtx, gcalendar.FreeBusyRequest{
		CalendarID: uc.opts.CalendarID,
		TimeMin:    slot.Start,
		TimeMax:    slot.End,
		Timezone:   uc.opts.Timezone,
	})
	uc.metrics.IncCalendarCall(metrics.OpFreeBusy, err)
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.checkAvailability: QueryFreeBusy: %v", err)
		return booking.ErrServer
	}

	// The API reports per-calendar failures inside a 200 response; the busy
	// list is meaningless then.
	if len(res.Errors) > 0 {
		uc.l.Errorf(ctx, "booking.usecase.checkAvailability: calendar %s returned errors: %s",
			res.CalendarID, strings.Join(res.Errors, "; "))
		return booking.ErrServer
	}

	if len(res.Busy) > 0 {
		uc.l.Infof(ctx, "booking.usecase.checkAvailability: %d busy interval(s) in %s - %s",
			len(res.Busy), slot.Start.Format(rfc3339), slot.End.Format(rfc3339))
		return booking.ErrSlotConflict
	}

	return nil
}
