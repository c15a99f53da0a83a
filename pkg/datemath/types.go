package datemath

import "errors"

// ErrUnparseable is returned when a value cannot be read as an instant.
var ErrUnparseable = errors.New("value is not a valid instant")

// maxEpochMillis bounds epoch-millisecond inputs to ±100,000,000 days.
const maxEpochMillis = 8.64e15

// zonedLayouts carry their own offset.
var zonedLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
}

// localLayouts have no offset and are read in the parser's location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// dateOnlyLayout is read as UTC midnight.
const dateOnlyLayout = "2006-01-02"
