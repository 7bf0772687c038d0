package tgbot

import (
	"context"

	"patient_feedback_service/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type bot struct {
	api     botAPI
	handler handlers.CommandHandler
	logger  *zap.SugaredLogger
}

type Bot interface {
	// Start answers commands until ctx is done.
	Start(ctx context.Context)
}

func NewBotAPI(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

func NewBot(api *tgbotapi.BotAPI, handler handlers.CommandHandler, logger *zap.SugaredLogger) Bot {
	return &bot{api: api, handler: handler, logger: logger}
}

func (b *bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("telegram bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			for _, message := range b.handler.Handle(ctx, update) {
				if _, err := b.api.Send(message); err != nil {
					b.logger.Errorw("failed to send message", "error", err)
				}
			}
		}
	}
}
