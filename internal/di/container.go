package di

import (
	"context"
	"fmt"

	"patient_feedback_service/configs"
	"patient_feedback_service/internal/calendar"
	"patient_feedback_service/internal/db"
	"patient_feedback_service/internal/db/repositories"
	"patient_feedback_service/internal/mail"
	"patient_feedback_service/internal/services"
	tgbot "patient_feedback_service/internal/tg_bot"
	"patient_feedback_service/internal/tg_bot/commands"
	"patient_feedback_service/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Container holds the process-wide components. The storage backend is chosen
// once, here, and never changes afterwards.
type Container struct {
	Store              repositories.Store
	AppointmentService services.AppointmentService
	VoteService        services.VoteService
	// CalendarImporter is nil when calendar polling is disabled.
	CalendarImporter services.CalendarImporter
	// TelegramBot is nil unless alerts go to Telegram.
	TelegramBot tgbot.Bot

	closers []func() error
}

func NewContainer(ctx context.Context, config configs.FeedbackServiceConfig, logger *zap.SugaredLogger) (*Container, error) {
	c := &Container{}

	store, err := c.newStore(ctx, config.DB, logger)
	if err != nil {
		return nil, err
	}
	c.Store = store

	policy := services.NewPolicy(config.Rating, config.Token)
	mailer := mail.NewMailer(config.SMTP, config.HTTP.FrontendURL, config.App.PracticeName, logger)
	if !config.SMTP.IsConfigured() {
		logger.Warn("smtp credentials are not configured, invitations will fail until they are")
	}

	var telegramAPI *tgbotapi.BotAPI
	if config.Alert.Channel == configs.AlertChannelTelegram {
		telegramAPI, err = tgbot.NewBotAPI(config.Alert.TelegramToken)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to create telegram bot: %w", err)
		}
	}

	notifier := newNegativeRatingNotifier(config.Alert, mailer, telegramAPI)

	c.AppointmentService = services.NewAppointmentService(store, mailer, policy, config.SMTP.Timeout, logger)
	c.VoteService = services.NewVoteService(store, notifier, policy, config.Alert.Timeout, logger)

	if telegramAPI != nil {
		handler := handlers.NewCommandHandler(config.Alert.TelegramChatID, []commands.Command{
			commands.NewStartCommand(config.App),
			commands.NewStatsCommand(c.VoteService, logger),
		}, logger)
		c.TelegramBot = tgbot.NewBot(telegramAPI, handler, logger)
	}

	if config.Calendar.Enabled {
		source, err := calendar.NewGoogleSource(ctx, config.Calendar, logger)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to create calendar source: %w", err)
		}
		c.CalendarImporter = services.NewCalendarImporter(
			source,
			c.AppointmentService,
			config.Calendar.Lookback,
			config.Calendar.Timeout,
			logger,
		)
	}

	return c, nil
}

func (c *Container) newStore(ctx context.Context, config configs.DB, logger *zap.SugaredLogger) (repositories.Store, error) {
	switch config.StorageBackend {
	case configs.StorageBackendMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return repositories.NewMemoryStore(), nil
	case configs.StorageBackendPostgres:
		logger.Info("starting db")
		database, err := db.StartDB(ctx, config, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to start db: %w", err)
		}
		logger.Info("db started")

		c.closers = append(c.closers, database.Close)
		return repositories.NewPgStore(database), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}
}

func newNegativeRatingNotifier(config configs.Alert, mailer *mail.Mailer, telegramAPI *tgbotapi.BotAPI) services.NegativeRatingNotifier {
	switch config.Channel {
	case configs.AlertChannelEmail:
		return mail.NewAlertNotifier(mailer, config.Email)
	case configs.AlertChannelTelegram:
		if telegramAPI != nil {
			return tgbot.NewNotifier(telegramAPI, config.TelegramChatID)
		}
	}
	return services.NoopNotifier{}
}

func (c *Container) Close() {
	for _, closer := range c.closers {
		_ = closer()
	}
	c.closers = nil
}
