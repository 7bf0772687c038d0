package tgbot

import (
	"context"
	"fmt"

	"patient_feedback_service/internal"
	"patient_feedback_service/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier posts negative ratings to the practice's Telegram chat.
type Notifier struct {
	api    sender
	chatID int64
}

func NewNotifier(api *tgbotapi.BotAPI, chatID int64) *Notifier {
	return &Notifier{api: api, chatID: chatID}
}

func (n *Notifier) NotifyNegativeRating(ctx context.Context, vote *models.Vote) error {
	message := tgbotapi.NewMessage(n.chatID, negativeRatingText(vote))

	done := make(chan error, 1)
	go func() {
		_, err := n.api.Send(message)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send telegram alert: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func negativeRatingText(vote *models.Vote) string {
	comment := vote.CommentText()
	if comment == "" {
		comment = "-"
	}
	return fmt.Sprintf("Avis négatif reçu (%d★) le %s\n\nCommentaire:\n%s", vote.Rating, internal.Format(vote.VotedAt), comment)
}
