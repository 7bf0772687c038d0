package tgbot

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type echoHandler struct{}

func (echoHandler) Handle(_ context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	return []tgbotapi.Chattable{tgbotapi.NewMessage(update.Message.Chat.ID, "pong")}
}

func TestBot_AnswersUntilCancelled(t *testing.T) {
	api := &fakeAPI{updates: make(chan tgbotapi.Update)}
	b := &bot{api: api, handler: echoHandler{}, logger: zap.NewNop().Sugar()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Start(ctx)
		close(done)
	}()

	api.updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}, Text: "/ping"}}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("bot did not stop")
	}

	assert.True(t, api.stopped)
	assert.Len(t, api.sent, 1)
}
