package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromOAuth creates a Calendar client that mints access tokens from
// a stored refresh token. No network call is made until the first request.
func NewClientFromOAuth(ctx context.Context, cfg OAuthConfig) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, errors.New("google oauth client id, client secret and refresh token are required")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// QueryFreeBusy returns the busy intervals of one calendar in [TimeMin, TimeMax).
func (c *Client) QueryFreeBusy(ctx context.Context, req FreeBusyRequest) (FreeBusyResult, error) {
	calendarID := calendarIDOrPrimary(req.CalendarID)

	query := &calendar.FreeBusyRequest{
		TimeMin:  req.TimeMin.Format(time.RFC3339),
		TimeMax:  req.TimeMax.Format(time.RFC3339),
		TimeZone: req.Timezone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := c.service.Freebusy.Query(query).Context(ctx).Do()
	if err != nil {
		return FreeBusyResult{}, fmt.Errorf("failed to query freebusy: %w", err)
	}

	result := FreeBusyResult{CalendarID: calendarID}
	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return result, nil
	}

	for _, busy := range cal.Busy {
		if busy == nil {
			continue
		}
		start, _ := time.Parse(time.RFC3339, busy.Start)
		end, _ := time.Parse(time.RFC3339, busy.End)
		result.Busy = append(result.Busy, TimeRange{Start: start, End: end})
	}

	for _, calErr := range cal.Errors {
		if calErr == nil {
			continue
		}
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", calErr.Domain, calErr.Reason))
	}

	return result, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	call := c.service.Events.Insert(calendarIDOrPrimary(req.CalendarID), event).Context(ctx)
	if req.SendUpdates != "" {
		call = call.SendUpdates(req.SendUpdates)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// DeleteEvent removes an event from a calendar.
func (c *Client) DeleteEvent(ctx context.Context, req DeleteEventRequest) error {
	if req.EventID == "" {
		return errors.New("event id is required")
	}

	call := c.service.Events.Delete(calendarIDOrPrimary(req.CalendarID), req.EventID).Context(ctx)
	if req.SendUpdates != "" {
		call = call.SendUpdates(req.SendUpdates)
	}

	if err := call.Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", req.EventID, err)
	}
	return nil
}

func calendarIDOrPrimary(id string) string {
	if id == "" {
		return PrimaryCalendarID
	}
	return id
}
