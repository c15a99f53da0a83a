package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"booking-backend/internal/booking"
)

// emailPattern is a shape check only (local@domain.tld), not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate turns the raw payload into a Request. It makes no external calls.
// A bad start time is rejected; a missing or bad end time falls back to
// start + default duration.
func (uc *implUseCase) validate(payload map[string]any) (booking.Request, error) {
	slot := objectField(payload, "slot")
	customer := objectField(payload, "customer")

	title := strings.TrimSpace(stringField(slot, "title"))
	if title == "" {
		title = booking.DefaultTitle
	}

	start, err := uc.dateMath.ParseInstant(slot["startIso"])
	if err != nil {
		return booking.Request{}, booking.ErrInvalidStartTime
	}

	end, err := uc.dateMath.ParseInstant(slot["endIso"])
	if err != nil {
		end = start.Add(uc.opts.DefaultDuration)
	}

	name := strings.TrimSpace(stringField(customer, "name"))
	phone := strings.TrimSpace(stringField(customer, "phone"))
	email := strings.TrimSpace(stringField(customer, "email"))
	if name == "" || phone == "" || !emailPattern.MatchString(email) {
		return booking.Request{}, booking.ErrInvalidCustomer
	}

	return booking.Request{
		Slot: booking.Slot{
			Title:               title,
			Start:               start,
			End:                 end,
			AvailabilityEventID: strings.TrimSpace(stringField(slot, "availabilityEventId")),
		},
		Customer: booking.Customer{
			Name:  name,
			Phone: phone,
			Email: email,
			Notes: strings.TrimSpace(stringField(customer, "notes")),
		},
	}, nil
}

// objectField returns payload[key] when it is a JSON object, otherwise an empty map.
func objectField(payload map[string]any, key string) map[string]any {
	if obj, ok := payload[key].(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

// stringField reads a string or number; anything else counts as absent.
func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
