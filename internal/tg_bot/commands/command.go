package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, command, arguments string, chatID int64) []tgbotapi.Chattable
}
