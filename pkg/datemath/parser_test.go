package datemath_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"booking-backend/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseInstant(t *testing.T) {
	parser, _ := datemath.NewParser("America/New_York")
	ny := parser.Location()

	tests := []struct {
		name    string
		input   any
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 UTC",
			input: "2025-03-01T10:00:00Z",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with millis",
			input: "2025-03-01T10:00:00.000Z",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset",
			input: "2025-03-01T05:00:00-05:00",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Compact offset",
			input: "2025-03-01T05:00:00-0500",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Surrounding whitespace",
			input: "  2025-03-01T10:00:00Z ",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Zone-less read in parser location",
			input: "2025-03-01T10:00:00",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, ny),
		},
		{
			name:  "Zone-less without seconds",
			input: "2025-03-01T10:00",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, ny),
		},
		{
			name:  "Date only is UTC midnight",
			input: "2025-03-01",
			want:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Epoch millis",
			input: float64(1740823200000),
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Lowercase z suffix",
			input: "2025-03-01T10:00:00z",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC 1123 as emitted by toUTCString",
			input: "Sat, 01 Mar 2025 10:00:00 GMT",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Long month name read in parser location",
			input: "March 1, 2025 10:00:00",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, ny),
		},
		{
			name:  "Slash separated read in parser location",
			input: "2025/03/01 10:00",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, ny),
		},
		{
			name:  "Numeric offset without colon",
			input: "2025-03-01 10:00:00 +0000",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "Garbage",
			input:   "next tuesday-ish",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "Impossible date",
			input:   "2025-02-30T10:00:00Z",
			wantErr: true,
		},
		{
			name:    "NaN",
			input:   math.NaN(),
			wantErr: true,
		},
		{
			name:    "Out of range millis",
			input:   float64(9e15),
			wantErr: true,
		},
		{
			name:    "Nil",
			input:   nil,
			wantErr: true,
		},
		{
			name:    "Boolean",
			input:   true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseInstant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInstant(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnparseable) {
					t.Errorf("expected ErrUnparseable, got %v", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
