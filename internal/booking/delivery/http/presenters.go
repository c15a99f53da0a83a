package http

import "booking-backend/internal/booking"

// bookResp is the success body. Empty ids serialize as null.
type bookResp struct {
	OK       bool    `json:"ok" example:"true"`
	EventID  *string `json:"eventId" example:"abc123def456"`
	HtmlLink *string `json:"htmlLink" example:"https://www.google.com/calendar/event?eid=abc123"`
}

func (h *handler) newBookResp(o booking.BookOutput) bookResp {
	return bookResp{
		OK:       true,
		EventID:  nullable(o.EventID),
		HtmlLink: nullable(o.HtmlLink),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
