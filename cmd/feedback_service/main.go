package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"patient_feedback_service/configs"
	"patient_feedback_service/internal/api"
	"patient_feedback_service/internal/di"
	"patient_feedback_service/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config, err := configs.LoadFeedbackServiceConfig()
	logger := di.NewLogger(config.Logger, config.App.Environment)
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("initializing components")
	container, err := di.NewContainer(ctx, config, logger)
	if err != nil {
		logger.Fatalw("failed to initialize components", "error", err)
	}
	defer container.Close()
	logger.Infow("components initialized", "storageBackend", config.DB.StorageBackend)

	scheduler := gocron.NewScheduler(time.UTC)
	if container.CalendarImporter != nil {
		if err := scheduleCalendarImport(ctx, scheduler, container.CalendarImporter, config.Calendar, logger); err != nil {
			logger.Fatalw("failed to schedule calendar import", "error", err)
		}
		scheduler.StartAsync()
		defer scheduler.Stop()
	}

	if container.TelegramBot != nil {
		go container.TelegramBot.Start(ctx)
	}

	policy := services.NewPolicy(config.Rating, config.Token)
	handler := api.NewHandler(container.AppointmentService, container.VoteService, policy, logger)

	server := &http.Server{
		Addr:         ":" + config.HTTP.Port,
		Handler:      api.NewRouter(ctx, config.HTTP, handler, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infow("http server started", "port", config.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to start http server", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down http server", "error", err)
	}
	logger.Info("http server stopped")
}

func scheduleCalendarImport(
	ctx context.Context,
	scheduler *gocron.Scheduler,
	importer services.CalendarImporter,
	config configs.Calendar,
	logger *zap.SugaredLogger,
) error {
	_, err := scheduler.
		Every(config.PollMinutes).Minutes().
		SingletonMode().
		Do(func() {
			logger.Info("importing calendar events")

			report, err := importer.Run(ctx)
			if err != nil {
				logger.Errorw("failed to import calendar events", "error", err)
				return
			}

			logger.Infow("calendar events imported",
				"seen", report.Seen,
				"skipped", report.Skipped,
				"created", report.Created,
				"failed", report.Failed,
			)
		})
	return err
}
