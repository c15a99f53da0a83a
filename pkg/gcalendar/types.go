package gcalendar

import "time"

const (
	// PrimaryCalendarID addresses the authorized account's own calendar.
	PrimaryCalendarID = "primary"

	// SendUpdatesAll notifies every guest of the change.
	SendUpdatesAll = "all"
	// SendUpdatesNone suppresses guest notifications.
	SendUpdatesNone = "none"
)

// OAuthConfig holds installed-app credentials plus a long-lived refresh token
// issued out of band (see scripts/gcal-auth).
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	RefreshToken string
}

// FreeBusyRequest is the input for a free/busy query on a single calendar.
type FreeBusyRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Timezone   string // e.g. "America/New_York"
}

// TimeRange is a busy interval reported by the calendar.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// FreeBusyResult holds the busy intervals for the queried calendar.
// Errors carries per-calendar failures the API reports inside a 200 response
// (e.g. "notFound").
type FreeBusyResult struct {
	CalendarID string
	Busy       []TimeRange
	Errors     []string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string   // e.g. "America/New_York"
	Attendees   []string // attendee emails
	SendUpdates string   // "all", "externalOnly", "none" or "" for the API default
}

// DeleteEventRequest is the input for deleting a Google Calendar event.
type DeleteEventRequest struct {
	CalendarID  string
	EventID     string
	SendUpdates string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
