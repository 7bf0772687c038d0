package mail

import (
	"context"
	"errors"
	"mime"
	"strings"
	"testing"
	"time"

	"patient_feedback_service/internal/db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	messages []*gomail.Message
	err      error
	block    chan struct{}
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.block != nil {
		<-d.block
	}
	d.messages = append(d.messages, m...)
	return d.err
}

func decodedHeader(t *testing.T, msg *gomail.Message, field string) string {
	t.Helper()

	values := msg.GetHeader(field)
	require.Len(t, values, 1)

	decoded, err := new(mime.WordDecoder).DecodeHeader(values[0])
	require.NoError(t, err)
	return decoded
}

func newTestMailer(d dialer) *Mailer {
	return &Mailer{
		dialer:       d,
		from:         "Cabinet <cabinet@example.com>",
		frontendURL:  "https://avis.example.com/",
		practiceName: "Podialpes-Grenoble",
		logger:       zap.NewNop().Sugar(),
	}
}

func TestFeedbackLink(t *testing.T) {
	assert.Equal(t, "https://avis.example.com/feedback?token=abc123", FeedbackLink("https://avis.example.com", "abc123"))
	assert.Equal(t, "https://avis.example.com/feedback?token=abc123", FeedbackLink("https://avis.example.com/", "abc123"))
}

func TestRenderInvitation(t *testing.T) {
	body, err := renderInvitation("Podialpes-Grenoble", "https://avis.example.com/feedback?token=abc123")
	require.NoError(t, err)

	assert.Contains(t, body, `href="https://avis.example.com/feedback?token=abc123"`)
	assert.Contains(t, body, "au Podialpes-Grenoble")
	assert.Contains(t, body, "Cliquez ici pour laisser un avis")

	body, err = renderInvitation("", "https://avis.example.com/feedback?token=abc123")
	require.NoError(t, err)
	assert.Contains(t, body, "au cabinet")
}

func TestAlertText(t *testing.T) {
	assert.Equal(t, "Avis négatif reçu (2★)", alertSubject(2))
	assert.Equal(t, "Un patient a laissé une note de 2.\n\nCommentaire:\ntrop long d'attente", alertText(2, "trop long d'attente"))
	assert.True(t, strings.HasSuffix(alertText(1, ""), "Commentaire:\n-"))
}

func TestSendFeedbackInvitation(t *testing.T) {
	d := &fakeDialer{}
	mailer := newTestMailer(d)

	err := mailer.SendFeedbackInvitation(context.Background(), "patient@example.com", "abc123")
	require.NoError(t, err)

	require.Len(t, d.messages, 1)
	msg := d.messages[0]
	assert.Equal(t, []string{"patient@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Cabinet <cabinet@example.com>"}, msg.GetHeader("From"))
	assert.Equal(t, invitationSubject, decodedHeader(t, msg, "Subject"))
}

func TestSendFeedbackInvitation_Failure(t *testing.T) {
	mailer := newTestMailer(&fakeDialer{err: errors.New("535 authentication failed")})

	err := mailer.SendFeedbackInvitation(context.Background(), "patient@example.com", "abc123")
	assert.ErrorContains(t, err, "535 authentication failed")
}

func TestSend_RespectsContext(t *testing.T) {
	d := &fakeDialer{block: make(chan struct{})}
	defer close(d.block)

	mailer := newTestMailer(d)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := mailer.SendFeedbackInvitation(ctx, "patient@example.com", "abc123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAlertNotifier(t *testing.T) {
	d := &fakeDialer{}
	notifier := NewAlertNotifier(newTestMailer(d), "cabinet@example.com")

	comment := "trop long d'attente"
	err := notifier.NotifyNegativeRating(context.Background(), &models.Vote{Rating: 2, Comment: &comment})
	require.NoError(t, err)

	require.Len(t, d.messages, 1)
	assert.Equal(t, []string{"cabinet@example.com"}, d.messages[0].GetHeader("To"))
	assert.Equal(t, "Avis négatif reçu (2★)", decodedHeader(t, d.messages[0], "Subject"))
}
