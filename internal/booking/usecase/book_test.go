package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-backend/internal/booking"
	"booking-backend/internal/booking/usecase"
	"booking-backend/pkg/datemath"
	"booking-backend/pkg/gcalendar"
	"booking-backend/pkg/metrics"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	busy        []gcalendar.TimeRange
	calErrors   []string
	freeBusyErr error
	event       *gcalendar.Event
	createErr   error
	deleteErr   error

	calls       []string
	freeBusyReq gcalendar.FreeBusyRequest
	createReq   gcalendar.CreateEventRequest
	deleteReq   gcalendar.DeleteEventRequest
}

func (m *mockCalendar) QueryFreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) (gcalendar.FreeBusyResult, error) {
	m.calls = append(m.calls, "freebusy")
	m.freeBusyReq = req
	if m.freeBusyErr != nil {
		return gcalendar.FreeBusyResult{}, m.freeBusyErr
	}
	return gcalendar.FreeBusyResult{CalendarID: req.CalendarID, Busy: m.busy, Errors: m.calErrors}, nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls = append(m.calls, "insert")
	m.createReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.event == nil {
		return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/event?eid=evt-1"}, nil
	}
	return m.event, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, req gcalendar.DeleteEventRequest) error {
	m.calls = append(m.calls, "delete")
	m.deleteReq = req
	return m.deleteErr
}

func newUseCase(t *testing.T, cal booking.Calendar, opts usecase.Options) booking.UseCase {
	t.Helper()
	dateMath, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	if opts.CalendarID == "" {
		opts.CalendarID = "primary"
	}
	if opts.Timezone == "" {
		opts.Timezone = "America/New_York"
	}
	return usecase.New(&mockLogger{}, cal, dateMath, metrics.New(), opts)
}

func janePayload() map[string]any {
	return map[string]any{
		"slot": map[string]any{"startIso": "2025-03-01T10:00:00Z"},
		"customer": map[string]any{
			"name":  "Jane",
			"phone": "555-1234",
			"email": "jane@example.com",
		},
	}
}

func TestBookSuccess(t *testing.T) {
	cal := &mockCalendar{}
	uc := newUseCase(t, cal, usecase.Options{})

	out, err := uc.Book(context.Background(), booking.BookInput{Payload: janePayload()})
	require.NoError(t, err)

	assert.Equal(t, "evt-1", out.EventID)
	assert.Equal(t, "https://calendar.google.com/event?eid=evt-1", out.HtmlLink)
	assert.Equal(t, []string{"freebusy", "insert"}, cal.calls)

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assert.Equal(t, "primary", cal.freeBusyReq.CalendarID)
	assert.True(t, cal.freeBusyReq.TimeMin.Equal(start))
	assert.True(t, cal.freeBusyReq.TimeMax.Equal(end))
	assert.Equal(t, "America/New_York", cal.freeBusyReq.Timezone)

	assert.Equal(t, "BOOKED: Training Session — Jane", cal.createReq.Summary)
	assert.True(t, cal.createReq.StartTime.Equal(start))
	assert.True(t, cal.createReq.EndTime.Equal(end))
	assert.Equal(t, "America/New_York", cal.createReq.Timezone)
	assert.Equal(t, []string{"jane@example.com"}, cal.createReq.Attendees)
	assert.Equal(t, gcalendar.SendUpdatesAll, cal.createReq.SendUpdates)
	assert.Equal(t, "New booking request\n\nPlayer: Jane\nPhone: 555-1234\nEmail: jane@example.com", cal.createReq.Description)
}

func TestBookDescriptionWithNotes(t *testing.T) {
	cal := &mockCalendar{}
	uc := newUseCase(t, cal, usecase.Options{})

	payload := janePayload()
	payload["slot"].(map[string]any)["title"] = "  Goalkeeping  "
	payload["customer"].(map[string]any)["notes"] = "  Left-footed.\nBring gloves.  "

	_, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
	require.NoError(t, err)

	assert.Equal(t, "BOOKED: Goalkeeping — Jane", cal.createReq.Summary)
	assert.True(t, strings.HasSuffix(cal.createReq.Description, "Email: jane@example.com\n\nNotes:\nLeft-footed.\nBring gloves."),
		cal.createReq.Description)
}

func TestBookBlankNotesOmitted(t *testing.T) {
	cal := &mockCalendar{}
	uc := newUseCase(t, cal, usecase.Options{})

	payload := janePayload()
	payload["customer"].(map[string]any)["notes"] = "   "

	_, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
	require.NoError(t, err)
	assert.NotContains(t, cal.createReq.Description, "Notes:")
}

func TestBookEndTime(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		endIso   any
		duration time.Duration
		wantEnd  time.Time
	}{
		{name: "absent end uses default 60 minutes", endIso: nil, wantEnd: start.Add(60 * time.Minute)},
		{name: "unparseable end falls back", endIso: "not a date", wantEnd: start.Add(60 * time.Minute)},
		{name: "non-string end falls back", endIso: true, wantEnd: start.Add(60 * time.Minute)},
		{name: "configured duration", endIso: "", duration: 45 * time.Minute, wantEnd: start.Add(45 * time.Minute)},
		{name: "explicit end kept", endIso: "2025-03-01T10:30:00Z", wantEnd: start.Add(30 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &mockCalendar{}
			uc := newUseCase(t, cal, usecase.Options{DefaultDuration: tt.duration})

			payload := janePayload()
			if tt.endIso != nil {
				payload["slot"].(map[string]any)["endIso"] = tt.endIso
			}

			_, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
			require.NoError(t, err)
			assert.True(t, cal.createReq.EndTime.Equal(tt.wantEnd), "got %v want %v", cal.createReq.EndTime, tt.wantEnd)
			assert.True(t, cal.freeBusyReq.TimeMax.Equal(tt.wantEnd))
		})
	}
}

func TestBookInvalidInputMakesNoCalls(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantErr error
	}{
		{name: "nil payload", payload: nil, wantErr: booking.ErrInvalidStartTime},
		{name: "missing slot and customer", payload: map[string]any{}, wantErr: booking.ErrInvalidStartTime},
		{
			name:    "missing slot",
			payload: map[string]any{"customer": janePayload()["customer"]},
			wantErr: booking.ErrInvalidStartTime,
		},
		{
			name:    "missing customer",
			payload: map[string]any{"slot": map[string]any{"startIso": "2025-03-01T10:00:00Z"}},
			wantErr: booking.ErrInvalidCustomer,
		},
		{
			name:    "slot is not an object",
			payload: map[string]any{"slot": "tomorrow", "customer": janePayload()["customer"]},
			wantErr: booking.ErrInvalidStartTime,
		},
		{
			name: "unparseable start",
			payload: map[string]any{
				"slot":     map[string]any{"startIso": "whenever"},
				"customer": janePayload()["customer"],
			},
			wantErr: booking.ErrInvalidStartTime,
		},
		{
			name: "blank name",
			payload: map[string]any{
				"slot":     map[string]any{"startIso": "2025-03-01T10:00:00Z"},
				"customer": map[string]any{"name": "   ", "phone": "555", "email": "a@b.co"},
			},
			wantErr: booking.ErrInvalidCustomer,
		},
		{
			name: "blank phone",
			payload: map[string]any{
				"slot":     map[string]any{"startIso": "2025-03-01T10:00:00Z"},
				"customer": map[string]any{"name": "Jane", "phone": "", "email": "a@b.co"},
			},
			wantErr: booking.ErrInvalidCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &mockCalendar{}
			uc := newUseCase(t, cal, usecase.Options{})

			_, err := uc.Book(context.Background(), booking.BookInput{Payload: tt.payload})
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, booking.ErrInvalidInput)
			assert.Empty(t, cal.calls)
		})
	}
}

func TestBookRejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "jane@example", "@example.com", "jane@.com", "ja ne@example.com", "jane@@example.com", ""} {
		t.Run(email, func(t *testing.T) {
			cal := &mockCalendar{}
			uc := newUseCase(t, cal, usecase.Options{})

			payload := janePayload()
			payload["customer"].(map[string]any)["email"] = email

			_, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
			require.ErrorIs(t, err, booking.ErrInvalidCustomer)
			assert.Empty(t, cal.calls)
		})
	}
}

func TestBookSlotConflict(t *testing.T) {
	cal := &mockCalendar{
		busy: []gcalendar.TimeRange{{
			Start: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
		}},
	}
	uc := newUseCase(t, cal, usecase.Options{})

	_, err := uc.Book(context.Background(), booking.BookInput{Payload: janePayload()})
	require.ErrorIs(t, err, booking.ErrSlotConflict)
	assert.NotErrorIs(t, err, booking.ErrInvalidInput)
	assert.Equal(t, []string{"freebusy"}, cal.calls)
}

func TestBookFreeBusyFailures(t *testing.T) {
	t.Run("API error", func(t *testing.T) {
		cal := &mockCalendar{freeBusyErr: errors.New("googleapi: Error 401: invalid_grant")}
		uc := newUseCase(t, cal, usecase.Options{})

		_, err := uc.Book(context.Background(), booking.BookInput{Payload: janePayload()})
		require.ErrorIs(t, err, booking.ErrServer)
		assert.NotContains(t, err.Error(), "invalid_grant")
		assert.Equal(t, []string{"freebusy"}, cal.calls)
	})

	t.Run("Per-calendar error", func(t *testing.T) {
		cal := &mockCalendar{calErrors: []string{"global: notFound"}}
		uc := newUseCase(t, cal, usecase.Options{})

		_, err := uc.Book(context.Background(), booking.BookInput{Payload: janePayload()})
		require.ErrorIs(t, err, booking.ErrServer)
		assert.Equal(t, []string{"freebusy"}, cal.calls)
	})
}

func TestBookCreateFailure(t *testing.T) {
	cal := &mockCalendar{createErr: errors.New("googleapi: Error 403: Rate Limit Exceeded")}
	uc := newUseCase(t, cal, usecase.Options{DeleteAvailabilityEvent: true})

	payload := janePayload()
	payload["slot"].(map[string]any)["availabilityEventId"] = "placeholder-1"

	_, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
	require.ErrorIs(t, err, booking.ErrServer)
	assert.NotContains(t, err.Error(), "Rate Limit")
	assert.Equal(t, []string{"freebusy", "insert"}, cal.calls, "cleanup must not run after a failed insert")
}

func TestBookPassesThroughMissingEventFields(t *testing.T) {
	cal := &mockCalendar{event: &gcalendar.Event{}}
	uc := newUseCase(t, cal, usecase.Options{})

	out, err := uc.Book(context.Background(), booking.BookInput{Payload: janePayload()})
	require.NoError(t, err)
	assert.Empty(t, out.EventID)
	assert.Empty(t, out.HtmlLink)
}

func TestBookPlaceholderCleanup(t *testing.T) {
	tests := []struct {
		name        string
		enabled     bool
		placeholder string
		deleteErr   error
		wantCalls   []string
	}{
		{name: "disabled with placeholder", enabled: false, placeholder: "placeholder-1", wantCalls: []string{"freebusy", "insert"}},
		{name: "enabled without placeholder", enabled: true, placeholder: "", wantCalls: []string{"freebusy", "insert"}},
		{name: "enabled with blank placeholder", enabled: true, placeholder: "   ", wantCalls: []string{"freebusy", "insert"}},
		{name: "enabled with placeholder", enabled: true, placeholder: "placeholder-1", wantCalls: []string{"freebusy", "insert", "delete"}},
		{
			name:        "delete failure is swallowed",
			enabled:     true,
			placeholder: "placeholder-1",
			deleteErr:   errors.New("googleapi: Error 404: Not Found"),
			wantCalls:   []string{"freebusy", "insert", "delete"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &mockCalendar{deleteErr: tt.deleteErr}
			uc := newUseCase(t, cal, usecase.Options{DeleteAvailabilityEvent: tt.enabled})

			payload := janePayload()
			if tt.placeholder != "" {
				payload["slot"].(map[string]any)["availabilityEventId"] = tt.placeholder
			}

			out, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
			require.NoError(t, err)
			assert.Equal(t, booking.BookOutput{
				EventID:  "evt-1",
				HtmlLink: "https://calendar.google.com/event?eid=evt-1",
			}, out)
			assert.Equal(t, tt.wantCalls, cal.calls)

			if len(tt.wantCalls) == 3 {
				assert.Equal(t, "placeholder-1", cal.deleteReq.EventID)
				assert.Equal(t, "primary", cal.deleteReq.CalendarID)
				assert.Equal(t, gcalendar.SendUpdatesNone, cal.deleteReq.SendUpdates)
			}
		})
	}
}

func TestBookCallTimeout(t *testing.T) {
	t.Run("every call is bounded", func(t *testing.T) {
		cal := &deadlineCalendar{}
		uc := newUseCase(t, cal, usecase.Options{CallTimeout: 5 * time.Second, DeleteAvailabilityEvent: true})

		payload := janePayload()
		payload["slot"].(map[string]any)["availabilityEventId"] = "placeholder-1"

		_, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
		require.NoError(t, err)
		assert.Equal(t, []string{"freebusy", "insert", "delete"}, cal.calls)
		assert.Equal(t, map[string]bool{"freebusy": true, "insert": true, "delete": true}, cal.sawDeadline)
	})

	t.Run("zero timeout leaves calls unbounded", func(t *testing.T) {
		cal := &deadlineCalendar{}
		uc := newUseCase(t, cal, usecase.Options{DeleteAvailabilityEvent: true})

		payload := janePayload()
		payload["slot"].(map[string]any)["availabilityEventId"] = "placeholder-1"

		_, err := uc.Book(context.Background(), booking.BookInput{Payload: payload})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"freebusy": false, "insert": false, "delete": false}, cal.sawDeadline)
	})
}

func TestBookCleanupSurvivesRequestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cal := &deadlineCalendar{afterInsert: cancel}
	uc := newUseCase(t, cal, usecase.Options{CallTimeout: 5 * time.Second, DeleteAvailabilityEvent: true})

	payload := janePayload()
	payload["slot"].(map[string]any)["availabilityEventId"] = "placeholder-1"

	out, err := uc.Book(ctx, booking.BookInput{Payload: payload})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", out.EventID)

	require.Error(t, ctx.Err(), "request context should be cancelled by now")
	assert.Equal(t, []string{"freebusy", "insert", "delete"}, cal.calls)
	assert.NoError(t, cal.deleteCtxErr, "placeholder delete must not inherit the request cancellation")
	assert.True(t, cal.sawDeadline["delete"], "detached delete is still bounded by the call timeout")
}

// deadlineCalendar records whether each call carried a deadline. afterInsert
// runs once the event has been created.
type deadlineCalendar struct {
	mockCalendar
	sawDeadline  map[string]bool
	afterInsert  func()
	deleteCtxErr error
}

func (d *deadlineCalendar) record(ctx context.Context, op string) {
	if d.sawDeadline == nil {
		d.sawDeadline = map[string]bool{}
	}
	_, d.sawDeadline[op] = ctx.Deadline()
}

func (d *deadlineCalendar) QueryFreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) (gcalendar.FreeBusyResult, error) {
	d.record(ctx, "freebusy")
	return d.mockCalendar.QueryFreeBusy(ctx, req)
}

func (d *deadlineCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	d.record(ctx, "insert")
	event, err := d.mockCalendar.CreateEvent(ctx, req)
	if d.afterInsert != nil {
		d.afterInsert()
	}
	return event, err
}

func (d *deadlineCalendar) DeleteEvent(ctx context.Context, req gcalendar.DeleteEventRequest) error {
	d.record(ctx, "delete")
	d.deleteCtxErr = ctx.Err()
	return d.mockCalendar.DeleteEvent(ctx, req)
}
