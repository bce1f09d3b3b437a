package mailer

import (
	"context"
	"net/smtp"

	"github.com/BloggingApp/social-service/internal/config"
	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"go.uber.org/zap"
)

// Mailer is a Dispatcher listener that mails new-follower notifications to
// the followed user. Delivery is best-effort; failures surface through the
// dispatcher's per-listener error logging.
type Mailer struct {
	logger *zap.Logger
	users  repository.User

	from string
	pass string
	host string
	port string
}

func New(logger *zap.Logger, users repository.User, cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		logger: logger,
		users:  users,
		from:   cfg.From,
		pass:   cfg.Pass,
		host:   cfg.Host,
		port:   cfg.Port,
	}
}

func (m *Mailer) Notify(ctx context.Context, n *model.Notification) error {
	if n.Type != model.NOTIFICATION_TYPE_FOLLOW {
		return nil
	}

	receiver, err := m.users.FindByID(ctx, n.ReceiverID)
	if err != nil {
		return err
	}

	return m.SendFollowMail(receiver.Email, n.Message)
}

func (m *Mailer) SendFollowMail(email string, message string) error {
	subject := "You have a new follower"
	body := message

	msg := []byte("Subject: " + subject + "\r\n" +
	"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n" +
	"\r\n" + body)

	auth := smtp.PlainAuth("", m.from, m.pass, m.host)

	if err := smtp.SendMail(m.host + ":" + m.port, auth, m.from, []string{email}, msg); err != nil {
		return err
	}

	return nil
}
