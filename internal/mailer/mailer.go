// Package mailer sends subscriber email through the configured SMTP relay.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/nextgenscores/ngsapi/internal/config"
)

type Mailer struct {
	cfg config.SmtpConfig
}

func New(cfg config.SmtpConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one message per recipient over a single SMTP session.
func (m *Mailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	msgs := make([]*mail.Msg, 0, len(to))
	for _, addr := range to {
		msg := mail.NewMsg()
		if err := msg.From(m.cfg.From); err != nil {
			return fmt.Errorf("from address: %w", err)
		}
		if err := msg.To(addr); err != nil {
			return fmt.Errorf("to address %q: %w", addr, err)
		}
		msg.Subject(subject)
		msg.SetBodyString(mail.TypeTextHTML, htmlBody)
		msgs = append(msgs, msg)
	}

	return client.DialAndSendWithContext(ctx, msgs...)
}
