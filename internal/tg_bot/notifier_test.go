package tgbot

import (
	"context"
	"errors"
	"testing"
	"time"

	"patient_feedback_service/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	sent    []tgbotapi.Chattable
	err     error
	block   chan struct{}
	updates chan tgbotapi.Update
	stopped bool
}

func (a *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if a.block != nil {
		<-a.block
	}
	a.sent = append(a.sent, c)
	return tgbotapi.Message{}, a.err
}

func (a *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return a.updates
}

func (a *fakeAPI) StopReceivingUpdates() {
	a.stopped = true
}

func TestNotifier_SendsToChat(t *testing.T) {
	api := &fakeAPI{}
	notifier := &Notifier{api: api, chatID: 42}

	comment := "trop long d'attente"
	err := notifier.NotifyNegativeRating(context.Background(), &models.Vote{
		Rating:  2,
		Comment: &comment,
		VotedAt: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, api.sent, 1)
	message, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), message.ChatID)
	assert.Contains(t, message.Text, "Avis négatif reçu (2★)")
	assert.Contains(t, message.Text, "trop long d'attente")
}

func TestNotifier_Failure(t *testing.T) {
	notifier := &Notifier{api: &fakeAPI{err: errors.New("chat not found")}, chatID: 42}

	err := notifier.NotifyNegativeRating(context.Background(), &models.Vote{Rating: 1})
	assert.ErrorContains(t, err, "chat not found")
}

func TestNotifier_Timeout(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{})}
	defer close(api.block)

	notifier := &Notifier{api: api, chatID: 42}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := notifier.NotifyNegativeRating(ctx, &models.Vote{Rating: 1})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNegativeRatingText_WithoutComment(t *testing.T) {
	text := negativeRatingText(&models.Vote{Rating: 3, VotedAt: time.Now()})
	assert.Contains(t, text, "Commentaire:\n-")
}
