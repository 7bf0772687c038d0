package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"patient_feedback_service/configs"
	"patient_feedback_service/internal/services"
	mock_services "patient_feedback_service/internal/services/mocks"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestScheduleCalendarImport_RunsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ran := make(chan struct{}, 1)
	importer := mock_services.NewMockCalendarImporter(ctrl)
	importer.EXPECT().Run(gomock.Any()).DoAndReturn(func(context.Context) (services.ImportReport, error) {
		ran <- struct{}{}
		return services.ImportReport{Seen: 1, Created: 1}, nil
	}).MinTimes(1)

	scheduler := gocron.NewScheduler(time.UTC)
	err := scheduleCalendarImport(context.Background(), scheduler, importer, configs.Calendar{PollMinutes: 15}, zap.NewNop().Sugar())
	require.NoError(t, err)

	scheduler.StartAsync()
	defer scheduler.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("calendar import did not run")
	}
}

func TestScheduleCalendarImport_FailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ran := make(chan struct{}, 1)
	importer := mock_services.NewMockCalendarImporter(ctrl)
	importer.EXPECT().Run(gomock.Any()).DoAndReturn(func(context.Context) (services.ImportReport, error) {
		ran <- struct{}{}
		return services.ImportReport{}, errors.New("calendar unavailable")
	}).MinTimes(1)

	scheduler := gocron.NewScheduler(time.UTC)
	require.NoError(t, scheduleCalendarImport(context.Background(), scheduler, importer, configs.Calendar{PollMinutes: 5}, zap.NewNop().Sugar()))

	scheduler.StartAsync()
	defer scheduler.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("calendar import did not run")
	}
	assert.Equal(t, 1, scheduler.Len())
}
