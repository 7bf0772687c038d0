package services_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"patient_feedback_service/internal/db/models"
	"patient_feedback_service/internal/db/repositories"
	mock_repositories "patient_feedback_service/internal/db/repositories/mocks"
	"patient_feedback_service/internal/services"
	mock_services "patient_feedback_service/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{48}$`)

func newAppointmentService(store repositories.Store, sender services.InvitationSender) services.AppointmentService {
	return services.NewAppointmentService(store, sender, services.DefaultPolicy(), time.Second, zap.NewNop().Sugar())
}

func TestCreateFromEvent_SendsInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repositories.NewMemoryStore()
	sender := mock_services.NewMockInvitationSender(ctrl)

	var sentToken string
	sender.EXPECT().
		SendFeedbackInvitation(gomock.Any(), "patient@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, token string) error {
			sentToken = token
			return nil
		})

	service := newAppointmentService(store, sender)
	endsAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	appointment, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{
		CalendarEventID: "evt1",
		PatientEmail:    "patient@example.com",
		EndsAt:          endsAt,
	})
	require.NoError(t, err)
	assert.Regexp(t, hexToken, appointment.Token)
	assert.Equal(t, appointment.Token, sentToken)
	assert.True(t, appointment.InvitationSent)
	assert.True(t, appointment.EndsAt.Equal(endsAt))

	stored, err := store.Appointments().GetOne(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.True(t, stored.InvitationSent)
}

func TestCreateFromEvent_DeliveryFailureKeepsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repositories.NewMemoryStore()
	sender := mock_services.NewMockInvitationSender(ctrl)
	sender.EXPECT().SendFeedbackInvitation(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp refused"))

	service := newAppointmentService(store, sender)

	appointment, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{
		CalendarEventID: "evt1",
		PatientEmail:    "patient@example.com",
		EndsAt:          time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, appointment.InvitationSent)

	stored, err := store.Appointments().GetOneByCalendarEventID(context.Background(), "evt1")
	require.NoError(t, err)
	assert.False(t, stored.InvitationSent)
	assert.Equal(t, appointment.Token, stored.Token)
}

func TestCreateFromEvent_WithoutEmailSkipsInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mock_services.NewMockInvitationSender(ctrl)
	service := newAppointmentService(repositories.NewMemoryStore(), sender)

	appointment, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{
		CalendarEventID: "evt1",
		EndsAt:          time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, appointment.InvitationSent)
	assert.Regexp(t, hexToken, appointment.Token)
}

func TestCreateFromEvent_TokensAreDistinct(t *testing.T) {
	service := newAppointmentService(repositories.NewMemoryStore(), nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		appointment, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{EndsAt: time.Now()})
		require.NoError(t, err)
		assert.False(t, seen[appointment.Token])
		seen[appointment.Token] = true
	}
}

func TestCreateFromEvent_DuplicateIsCreationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_repositories.NewMockStore(ctrl)
	appointmentRepo := mock_repositories.NewMockAppointmentRepository(ctrl)
	store.EXPECT().Appointments().Return(appointmentRepo).AnyTimes()
	appointmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrDuplicate)

	sender := mock_services.NewMockInvitationSender(ctrl)
	service := newAppointmentService(store, sender)

	appointment, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{
		PatientEmail: "patient@example.com",
		EndsAt:       time.Now(),
	})
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestCreateFromEvent_FlagUpdateFailureReturnsStoredRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_repositories.NewMockStore(ctrl)
	appointmentRepo := mock_repositories.NewMockAppointmentRepository(ctrl)
	store.EXPECT().Appointments().Return(appointmentRepo).AnyTimes()
	appointmentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *models.Appointment) (*models.Appointment, error) {
			return request, nil
		})
	appointmentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection lost"))

	sender := mock_services.NewMockInvitationSender(ctrl)
	sender.EXPECT().SendFeedbackInvitation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	service := newAppointmentService(store, sender)

	appointment, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{
		PatientEmail: "patient@example.com",
		EndsAt:       time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, appointment.InvitationSent)
}

func TestFindByCalendarEventID(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := newAppointmentService(store, nil)

	missing, err := service.FindByCalendarEventID(context.Background(), "evt1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{
		CalendarEventID: "evt1",
		EndsAt:          time.Now(),
	})
	require.NoError(t, err)

	found, err := service.FindByCalendarEventID(context.Background(), "evt1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestMarkInvitationSent(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := newAppointmentService(store, nil)

	missing, err := service.MarkInvitationSent(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{EndsAt: time.Now()})
	require.NoError(t, err)
	require.False(t, created.InvitationSent)

	marked, err := service.MarkInvitationSent(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, marked.InvitationSent)

	again, err := service.MarkInvitationSent(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, again.InvitationSent)
}

func TestResendInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repositories.NewMemoryStore()
	sender := mock_services.NewMockInvitationSender(ctrl)
	service := newAppointmentService(store, sender)

	gomock.InOrder(
		sender.EXPECT().SendFeedbackInvitation(gomock.Any(), "patient@example.com", gomock.Any()).Return(errors.New("timeout")),
		sender.EXPECT().SendFeedbackInvitation(gomock.Any(), "patient@example.com", gomock.Any()).Return(errors.New("still down")),
		sender.EXPECT().SendFeedbackInvitation(gomock.Any(), "patient@example.com", gomock.Any()).Return(nil),
	)

	created, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{
		PatientEmail: "patient@example.com",
		EndsAt:       time.Now(),
	})
	require.NoError(t, err)
	require.False(t, created.InvitationSent)

	_, err = service.ResendInvitation(context.Background(), created.ID)
	assert.Error(t, err)

	resent, err := service.ResendInvitation(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, resent.InvitationSent)
}

func TestResendInvitation_Errors(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := newAppointmentService(store, nil)

	_, err := service.ResendInvitation(context.Background(), "unknown")
	assert.ErrorIs(t, err, services.ErrAppointmentNotFound)

	created, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{EndsAt: time.Now()})
	require.NoError(t, err)

	_, err = service.ResendInvitation(context.Background(), created.ID)
	assert.ErrorIs(t, err, services.ErrNoPatientEmail)
}

func TestCreateFromEvent_RecordsDeliveryAfterCallerCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_repositories.NewMockStore(ctrl)
	appointmentRepo := mock_repositories.NewMockAppointmentRepository(ctrl)
	store.EXPECT().Appointments().Return(appointmentRepo).AnyTimes()
	appointmentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *models.Appointment) (*models.Appointment, error) {
			return request, nil
		})
	appointmentRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request *models.Appointment) (*models.Appointment, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return request, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := mock_services.NewMockInvitationSender(ctrl)
	sender.EXPECT().
		SendFeedbackInvitation(gomock.Any(), "patient@example.com", gomock.Any()).
		DoAndReturn(func(sendCtx context.Context, _, _ string) error {
			cancel()
			assert.NoError(t, sendCtx.Err())
			return nil
		})

	service := newAppointmentService(store, sender)

	appointment, err := service.CreateFromEvent(ctx, services.CreateAppointmentInput{
		PatientEmail: "patient@example.com",
		EndsAt:       time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, appointment.InvitationSent)
}

func TestFindByCalendarEventID_EmptyIDNeverMatches(t *testing.T) {
	service := newAppointmentService(repositories.NewMemoryStore(), nil)

	_, err := service.CreateFromEvent(context.Background(), services.CreateAppointmentInput{EndsAt: time.Now()})
	require.NoError(t, err)

	found, err := service.FindByCalendarEventID(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, found)
}
