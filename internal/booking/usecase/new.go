package usecase

import (
	"time"

	"booking-backend/internal/booking"
	"booking-backend/pkg/datemath"
	pkgLog "booking-backend/pkg/log"
	"booking-backend/pkg/metrics"
)

// Options are the booking settings fixed at startup.
type Options struct {
	CalendarID              string
	Timezone                string
	DefaultDuration         time.Duration
	DeleteAvailabilityEvent bool
	CallTimeout             time.Duration // 0 leaves calendar calls bounded only by the request
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar booking.Calendar
	dateMath *datemath.Parser
	metrics  *metrics.Metrics
	opts     Options
}

// New creates a new booking UseCase instance. metrics may be nil.
func New(
	l pkgLog.Logger,
	calendar booking.Calendar,
	dateMath *datemath.Parser,
	m *metrics.Metrics,
	opts Options,
) *implUseCase {
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = 60 * time.Minute
	}
	return &implUseCase{
		l:        l,
		calendar: calendar,
		dateMath: dateMath,
		metrics:  m,
		opts:     opts,
	}
}

var _ booking.UseCase = (*implUseCase)(nil)
