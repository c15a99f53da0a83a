package booking

import "time"

// DefaultTitle is used when the slot has no usable title.
const DefaultTitle = "Training Session"

// BookInput carries the decoded JSON body as-is. Validation happens in the use case.
type BookInput struct {
	Payload map[string]any
}

// Slot is the normalized time slot being booked.
type Slot struct {
	Title               string
	Start               time.Time
	End                 time.Time
	AvailabilityEventID string
}

// Customer is the normalized person making the booking.
type Customer struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// Request is a validated booking request. It lives for one call only.
type Request struct {
	Slot     Slot
	Customer Customer
}

// BookOutput is what the calendar returned for the created event. Either
// field may be empty when the API omitted it.
type BookOutput struct {
	EventID  string
	HtmlLink string
}
