package calendar

import (
	"context"
	"fmt"
	"time"

	"patient_feedback_service/configs"
	"patient_feedback_service/internal/services"

	"go.uber.org/zap"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const cancelledStatus = "cancelled"

// GoogleSource lists events of one Google calendar.
type GoogleSource struct {
	service    *gcalendar.Service
	calendarID string
	logger     *zap.SugaredLogger
}

func NewGoogleSource(ctx context.Context, config configs.Calendar, logger *zap.SugaredLogger) (*GoogleSource, error) {
	oauthConfig, err := LoadOAuthConfig(config.CredentialsPath)
	if err != nil {
		return nil, err
	}

	token, err := LoadToken(config.TokenPath)
	if err != nil {
		return nil, err
	}

	service, err := gcalendar.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return newGoogleSource(service, config.CalendarID, logger), nil
}

func newGoogleSource(service *gcalendar.Service, calendarID string, logger *zap.SugaredLogger) *GoogleSource {
	return &GoogleSource{
		service:    service,
		calendarID: calendarID,
		logger:     logger,
	}
}

func (s *GoogleSource) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]services.CalendarEvent, error) {
	var events []services.CalendarEvent

	err := s.service.Events.List(s.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		OrderBy("startTime").
		Pages(ctx, func(page *gcalendar.Events) error {
			for _, item := range page.Items {
				if item.Status == cancelledStatus {
					continue
				}

				event, err := toCalendarEvent(item)
				if err != nil {
					s.logger.Warnw("skipping calendar event with unreadable times", "error", err, "calendarEventID", item.Id)
					continue
				}
				events = append(events, event)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

func toCalendarEvent(item *gcalendar.Event) (services.CalendarEvent, error) {
	event := services.CalendarEvent{ID: item.Id}

	for _, attendee := range item.Attendees {
		if attendee == nil || attendee.Email == "" || attendee.Resource {
			continue
		}
		event.AttendeeEmails = append(event.AttendeeEmails, attendee.Email)
	}

	if item.Start == nil || item.End == nil {
		return event, nil
	}

	if item.Start.DateTime == "" {
		event.AllDay = item.Start.Date != ""
		return event, nil
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return event, fmt.Errorf("failed to parse start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return event, fmt.Errorf("failed to parse end: %w", err)
	}

	event.Start = start
	event.End = end
	return event, nil
}
