package mail

import (
	"context"
	"fmt"

	"patient_feedback_service/configs"
	"patient_feedback_service/internal/db/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer       dialer
	from         string
	frontendURL  string
	practiceName string
	logger       *zap.SugaredLogger
}

func NewMailer(config configs.SMTP, frontendURL, practiceName string, logger *zap.SugaredLogger) *Mailer {
	return &Mailer{
		dialer:       gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		from:         config.From,
		frontendURL:  frontendURL,
		practiceName: practiceName,
		logger:       logger,
	}
}

func (m *Mailer) SendFeedbackInvitation(ctx context.Context, to, token string) error {
	link := FeedbackLink(m.frontendURL, token)

	body, err := renderInvitation(m.practiceName, link)
	if err != nil {
		return err
	}

	msg := m.newMessage(to, invitationSubject)
	msg.SetBody("text/plain", invitationText(link))
	msg.AddAlternative("text/html", body)

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send feedback invitation: %w", err)
	}

	m.logger.Infow("feedback invitation sent", "to", to)
	return nil
}

func (m *Mailer) SendNegativeRatingAlert(ctx context.Context, to string, rating int, comment string) error {
	msg := m.newMessage(to, alertSubject(rating))
	msg.SetBody("text/plain", alertText(rating, comment))

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send negative rating alert: %w", err)
	}
	return nil
}

func (m *Mailer) newMessage(to, subject string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	return msg
}

// send gives up waiting when ctx is done. gomail has no context support,
// so the SMTP exchange itself finishes in the background.
func (m *Mailer) send(ctx context.Context, msg *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AlertNotifier emails the practice when a patient leaves a negative rating.
type AlertNotifier struct {
	mailer *Mailer
	to     string
}

func NewAlertNotifier(mailer *Mailer, to string) *AlertNotifier {
	return &AlertNotifier{mailer: mailer, to: to}
}

func (n *AlertNotifier) NotifyNegativeRating(ctx context.Context, vote *models.Vote) error {
	return n.mailer.SendNegativeRatingAlert(ctx, n.to, vote.Rating, vote.CommentText())
}
