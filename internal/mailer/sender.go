package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/cryptfolio/cryptfolio-tools/internal/config"
)

// Sender delivers a built message using the envelope's credentials.
type Sender interface {
	Send(ctx context.Context, e Envelope, msg *mail.Msg) error
}

// SMTPSender sends over implicit TLS with PLAIN authentication.
type SMTPSender struct {
	Host    string
	Port    int
	Timeout time.Duration
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		Host:    cfg.Host,
		Port:    cfg.Port,
		Timeout: cfg.Timeout,
	}
}

func (s *SMTPSender) Send(ctx context.Context, e Envelope, msg *mail.Msg) error {
	client, err := mail.NewClient(s.Host,
		mail.WithPort(s.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(e.From),
		mail.WithPassword(e.Password),
		mail.WithTimeout(s.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send via %s:%d: %w", s.Host, s.Port, err)
	}

	return nil
}
