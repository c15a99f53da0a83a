package booking

import (
	"context"

	"booking-backend/pkg/gcalendar"
)

// UseCase defines the business logic interface for the booking domain.
type UseCase interface {
	// Book validates a raw booking payload, confirms the slot is free and
	// creates the calendar event with the customer invited.
	Book(ctx context.Context, input BookInput) (BookOutput, error)
}

// Calendar is the slice of the calendar API the booking flow depends on.
// *gcalendar.Client implements it.
type Calendar interface {
	QueryFreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) (gcalendar.FreeBusyResult, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, req gcalendar.DeleteEventRequest) error
}
