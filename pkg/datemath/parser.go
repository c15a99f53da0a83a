package datemath

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parser turns loosely formatted timestamps into instants.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone zone-less timestamps are read in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseInstant reads v as a point in time. ISO 8601 strings are read
// exactly: with an offset as given, zone-less in the parser's location, and a
// bare date as UTC midnight. Any other string is handed to dateparse, which
// covers the formats browsers emit (RFC 1123, "March 1, 2025 10:00",
// "2025/03/01 10:00", ...); zone-less results land in the parser's location.
// Numbers are epoch milliseconds.
func (p *Parser) ParseInstant(v any) (time.Time, error) {
	switch val := v.(type) {
	case string:
		return p.parseString(val)
	case float64:
		return parseEpochMillis(val)
	case int:
		return parseEpochMillis(float64(val))
	case int64:
		return parseEpochMillis(float64(val))
	default:
		return time.Time{}, ErrUnparseable
	}
}

func (p *Parser) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseable
	}
	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}

	if t, err := time.ParseInLocation(dateOnlyLayout, s, time.UTC); err == nil {
		return t, nil
	}

	t, err := dateparse.ParseIn(s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	return t, nil
}

func parseEpochMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, ErrUnparseable
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}
