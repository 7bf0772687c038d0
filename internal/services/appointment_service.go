package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"patient_feedback_service/internal/db/models"
	"patient_feedback_service/internal/db/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateAppointmentInput struct {
	CalendarEventID string
	PatientEmail    string
	EndsAt          time.Time
}

type AppointmentService interface {
	// FindByCalendarEventID returns nil, nil when the event was never imported.
	FindByCalendarEventID(ctx context.Context, calendarEventID string) (*models.Appointment, error)
	// CreateFromEvent stores a new appointment and, when a patient address is known,
	// sends the feedback invitation. A delivery failure is logged, never returned.
	CreateFromEvent(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error)
	// MarkInvitationSent returns nil, nil when no appointment has this id.
	MarkInvitationSent(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ResendInvitation(ctx context.Context, appointmentID string) (*models.Appointment, error)
}

type appointmentService struct {
	store       repositories.Store
	sender      InvitationSender
	policy      Policy
	sendTimeout time.Duration
	logger      *zap.SugaredLogger
}

func NewAppointmentService(
	store repositories.Store,
	sender InvitationSender,
	policy Policy,
	sendTimeout time.Duration,
	logger *zap.SugaredLogger,
) AppointmentService {
	return &appointmentService{
		store:       store,
		sender:      sender,
		policy:      policy,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

func (s *appointmentService) FindByCalendarEventID(ctx context.Context, calendarEventID string) (*models.Appointment, error) {
	appointment, err := s.store.Appointments().GetOneByCalendarEventID(ctx, calendarEventID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment by calendar event: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) CreateFromEvent(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error) {
	token, err := generateToken(s.policy.TokenLength)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appointment, err := s.store.Appointments().Create(ctx, &models.Appointment{
		ID:              uuid.NewString(),
		PatientEmail:    strings.TrimSpace(input.PatientEmail),
		EndsAt:          input.EndsAt.UTC(),
		Token:           token,
		CalendarEventID: input.CalendarEventID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if !appointment.HasPatientEmail() {
		return appointment, nil
	}

	if err := s.send(ctx, appointment); err != nil {
		s.logger.Errorw("failed to send feedback invitation",
			"error", err,
			"appointmentID", appointment.ID,
			"calendarEventID", appointment.CalendarEventID,
		)
		return appointment, nil
	}

	// The invitation is out; record it even if the caller has gone away.
	updated, err := s.markSent(context.WithoutCancel(ctx), appointment)
	if err != nil {
		s.logger.Errorw("failed to record sent invitation",
			"error", err,
			"appointmentID", appointment.ID,
		)
		return appointment, nil
	}

	return updated, nil
}

func (s *appointmentService) MarkInvitationSent(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := s.store.Appointments().GetOne(ctx, appointmentID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return s.markSent(ctx, appointment)
}

func (s *appointmentService) ResendInvitation(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := s.store.Appointments().GetOne(ctx, appointmentID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if !appointment.HasPatientEmail() {
		return nil, ErrNoPatientEmail
	}

	if err := s.send(ctx, appointment); err != nil {
		s.logger.Errorw("failed to resend feedback invitation", "error", err, "appointmentID", appointment.ID)
		return nil, fmt.Errorf("failed to send invitation: %w", err)
	}

	return s.markSent(context.WithoutCancel(ctx), appointment)
}

func (s *appointmentService) send(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sendTimeout)
	defer cancel()

	return s.sender.SendFeedbackInvitation(ctx, appointment.PatientEmail, appointment.Token)
}

func (s *appointmentService) markSent(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	changed := *appointment
	changed.InvitationSent = true
	changed.UpdatedAt = time.Now().UTC()

	updated, err := s.store.Appointments().Update(ctx, &changed)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return updated, nil
}
