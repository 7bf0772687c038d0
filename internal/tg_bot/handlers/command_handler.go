package handlers

import (
	"context"

	"patient_feedback_service/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type CommandHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable
}

type commandHandler struct {
	allowedChatID int64
	commands      []commands.Command
	logger        *zap.SugaredLogger
}

// NewCommandHandler answers commands sent from the alert chat only.
func NewCommandHandler(allowedChatID int64, commands []commands.Command, logger *zap.SugaredLogger) CommandHandler {
	return &commandHandler{
		allowedChatID: allowedChatID,
		commands:      commands,
		logger:        logger,
	}
}

func (h *commandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	if message == nil {
		h.logger.Debug("received unknown update")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID
	if chatID != h.allowedChatID {
		h.logger.Warnw("received message from unknown chat", "chatID", chatID)
		return []tgbotapi.Chattable{}
	}

	if !message.IsCommand() {
		return []tgbotapi.Chattable{}
	}

	command := message.Command()
	h.logger.Infow("received command", "command", command)

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			return handler.Handle(ctx, command, message.CommandArguments(), chatID)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{}
}
