package commands

import (
	"context"
	"fmt"

	"patient_feedback_service/internal/services"
	"patient_feedback_service/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const statsCommandName = "stats"

type statsCommand struct {
	voteService services.VoteService
	logger      *zap.SugaredLogger
}

func NewStatsCommand(voteService services.VoteService, logger *zap.SugaredLogger) Command {
	return &statsCommand{
		voteService: voteService,
		logger:      logger,
	}
}

func (c *statsCommand) CanHandle(command string) bool {
	return command == statsCommandName
}

func (c *statsCommand) Handle(ctx context.Context, _, _ string, chatID int64) []tgbotapi.Chattable {
	stats, err := c.voteService.Stats(ctx)
	if err != nil {
		c.logger.Errorw("failed to get stats", "error", err)
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}

	messageText := fmt.Sprintf(`Rendez-vous : %d
Votes : %d
Note moyenne : %.1f
Avis négatifs : %d`, stats.TotalAppointments, stats.TotalVotes, stats.AverageRating, stats.BadVotes)

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, messageText)}
}
