package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"booking-backend/internal/booking"
)

const (
	rfc3339           = time.RFC3339
	descriptionHeader = "New booking request"
)

// callContext bounds a single calendar call by the configured timeout.
func (uc *implUseCase) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.opts.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.opts.CallTimeout)
}

// buildSummary builds the event title shown in the calendar.
func buildSummary(req booking.Request) string {
	return "BOOKED: " + req.Slot.Title + " — " + req.Customer.Name
}

// buildDescription builds the plain-text event body.
func buildDescription(c booking.Customer) string {
	var sb strings.Builder

	sb.WriteString(descriptionHeader + "\n\n")
	sb.WriteString(fmt.Sprintf("Player: %s\n", c.Name))
	sb.WriteString(fmt.Sprintf("Phone: %s\n", c.Phone))
	sb.WriteString(fmt.Sprintf("Email: %s", c.Email))

	if c.Notes != "" {
		sb.WriteString("\n\nNotes:\n")
		sb.WriteString(c.Notes)
	}

	return sb.String()
}
