package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
	"github.com/sirupsen/logrus"
)

// Mailer sends notification email via Mailgun. When no domain or API key is
// configured it degrades to logging the message instead of sending, which
// keeps local development working without credentials.
type Mailer struct {
	Domain string
	APIKey string
	Sender string
	Log    *logrus.Logger
}

func New(domain, apiKey, sender string, log *logrus.Logger) *Mailer {
	return &Mailer{Domain: domain, APIKey: apiKey, Sender: sender, Log: log}
}

func (m *Mailer) configured() bool {
	return m.Domain != "" && m.APIKey != ""
}

// Send delivers one message with a bounded timeout so a slow transport can
// never stall a caller that chose to wait on it.
func (m *Mailer) Send(ctx context.Context, to, subject, text string) error {
	if !m.configured() {
		m.Log.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
			"body":    text,
		}).Warn("mailgun not configured, email not sent")
		return nil
	}

	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)

	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// SendAsync dispatches a fire-and-forget message. Failures are logged and
// never reach the caller: the triggering request has already committed its
// state change and must not be failed or rolled back by mail problems.
func (m *Mailer) SendAsync(to, subject, text string) {
	go func() {
		if err := m.Send(context.Background(), to, subject, text); err != nil {
			m.Log.WithFields(logrus.Fields{
				"to":      to,
				"subject": subject,
				"error":   err.Error(),
			}).Error("email sending failed")
		}
	}()
}
