package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CalendarEvent is the part of a calendar entry the importer needs.
type CalendarEvent struct {
	ID             string
	AllDay         bool
	Start          time.Time
	End            time.Time
	AttendeeEmails []string
}

type EventSource interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]CalendarEvent, error)
}

type ImportReport struct {
	Seen    int
	Skipped int
	Created int
	Failed  int
}

type CalendarImporter interface {
	Run(ctx context.Context) (ImportReport, error)
}

type calendarImporter struct {
	source       EventSource
	appointments AppointmentService
	lookback     time.Duration
	timeout      time.Duration
	now          func() time.Time
	logger       *zap.SugaredLogger
}

func NewCalendarImporter(
	source EventSource,
	appointments AppointmentService,
	lookback time.Duration,
	timeout time.Duration,
	logger *zap.SugaredLogger,
) CalendarImporter {
	return &calendarImporter{
		source:       source,
		appointments: appointments,
		lookback:     lookback,
		timeout:      timeout,
		now:          time.Now,
		logger:       logger,
	}
}

func (i *calendarImporter) Run(ctx context.Context) (ImportReport, error) {
	var report ImportReport
	now := i.now()

	listCtx, cancel := context.WithTimeout(ctx, i.timeout)
	events, err := i.source.ListEvents(listCtx, now.Add(-i.lookback), now)
	cancel()
	if err != nil {
		i.logger.Errorw("failed to list calendar events", "error", err)
		return report, fmt.Errorf("failed to list calendar events: %w", err)
	}

	for _, event := range events {
		report.Seen++

		if !isFinishedTimedEvent(event, now) {
			report.Skipped++
			continue
		}

		existing, err := i.appointments.FindByCalendarEventID(ctx, event.ID)
		if err != nil {
			i.logger.Errorw("failed to look up calendar event", "error", err, "calendarEventID", event.ID)
			report.Failed++
			continue
		}
		if existing != nil {
			report.Skipped++
			continue
		}

		appointment, err := i.appointments.CreateFromEvent(ctx, CreateAppointmentInput{
			CalendarEventID: event.ID,
			PatientEmail:    firstAttendeeEmail(event),
			EndsAt:          event.End,
		})
		if err != nil {
			i.logger.Errorw("failed to import calendar event", "error", err, "calendarEventID", event.ID)
			report.Failed++
			continue
		}

		i.logger.Infow("calendar event imported",
			"calendarEventID", event.ID,
			"appointmentID", appointment.ID,
			"invitationSent", appointment.InvitationSent,
		)
		report.Created++
	}

	return report, nil
}

func isFinishedTimedEvent(event CalendarEvent, now time.Time) bool {
	if event.ID == "" || event.AllDay {
		return false
	}
	if event.Start.IsZero() || event.End.IsZero() {
		return false
	}
	return !event.End.After(now)
}

func firstAttendeeEmail(event CalendarEvent) string {
	for _, email := range event.AttendeeEmails {
		if email != "" {
			return email
		}
	}
	return ""
}
