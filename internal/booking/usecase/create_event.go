package usecase

import (
	"context"

	"booking-backend/internal/booking"
	"booking-backend/pkg/gcalendar"
	"booking-backend/pkg/metrics"
)

// createEvent inserts the booking and asks the calendar to email the
// customer an invitation. Any failure becomes ErrServer.
func (uc *implUseCase) createEvent(ctx context.Context, req booking.Request) (*gcalendar.Event, error) {
	callCtx, cancel := uc.callContext(ctx)
	defer cancel()

	event, err := uc.calendar.CreateEvent(callCtx, gcalendar.CreateEventRequest{
		CalendarID:  uc.opts.CalendarID,
		Summary:     buildSummary(req),
		Description: buildDescription(req.Customer),
		StartTime:   req.Slot.Start,
		EndTime:     req.Slot.End,
		Timezone:    uc.opts.Timezone,
		Attendees:   []string{req.Customer.Email},
		SendUpdates: gcalendar.SendUpdatesAll,
	})
	uc.metrics.IncCalendarCall(metrics.OpInsertEvent, err)
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.createEvent: CreateEvent: %v", err)
		return nil, booking.ErrServer
	}
	if event == nil {
		event = &gcalendar.Event{}
	}

	return event, nil
}
