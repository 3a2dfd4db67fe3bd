// Package mailer delivers the generated report by email.
package mailer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wneessen/go-mail"
)

const (
	subjectPrefix = "Relatório Cryptfolio Arcade - "

	messageBody = `Olá,

Segue em anexo o Relatório de Portfólio Cripto gerado pelo Cryptfolio Arcade.

Atenciosamente,
Sistema Cryptfolio
`

	pdfContentType mail.ContentType = "application/pdf"
)

var validate = validator.New()

// Envelope carries the addresses and credential for one delivery.
// The sender address doubles as the SMTP username.
type Envelope struct {
	From     string `validate:"required,email"`
	Password string `validate:"required"`
	To       string `validate:"required,email"`
}

// Validate checks both addresses and that a password is present.
func (e Envelope) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid envelope: %w", err)
	}
	return nil
}

// Subject returns the message subject for the given day.
func Subject(now time.Time) string {
	return subjectPrefix + now.Format("02/01/2006")
}

// BuildMessage assembles the report message. The attachment is read fully
// here so a missing report fails before any connection is made.
func BuildMessage(e Envelope, attachment string, now time.Time) (*mail.Msg, error) {
	content, err := os.ReadFile(attachment)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	m := mail.NewMsg()
	if err := m.From(e.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(e.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(Subject(now))
	m.SetDateWithValue(now)
	m.SetBodyString(mail.TypeTextPlain, messageBody)

	name := filepath.Base(attachment)
	if err := m.AttachReader(name, bytes.NewReader(content), mail.WithFileContentType(pdfContentType)); err != nil {
		return nil, fmt.Errorf("failed to attach %s: %w", name, err)
	}

	return m, nil
}
