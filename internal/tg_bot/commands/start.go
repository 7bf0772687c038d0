package commands

import (
	"context"
	"fmt"

	"patient_feedback_service/configs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startCommandName = "start"

type startCommand struct {
	appConfig configs.App
}

func NewStartCommand(appConfig configs.App) Command {
	return &startCommand{appConfig: appConfig}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(_ context.Context, _, _ string, chatID int64) []tgbotapi.Chattable {
	messageText := fmt.Sprintf(`Bonjour ! Je suis le bot des avis patients de %s.

Je publie ici les avis négatifs dès qu'ils sont déposés.

/stats - nombre de rendez-vous, de votes, note moyenne et avis négatifs.`, c.appConfig.PracticeName)

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, messageText)}
}
