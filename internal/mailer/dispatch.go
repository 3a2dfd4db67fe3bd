package mailer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
)

// ErrCancelled is returned by a Prompter when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

const (
	confirmQuestion = "Deseja enviar este relatório por e-mail agora? (s/n): "
	fromLabel       = "Seu E-mail (Gmail): "
	passwordLabel   = "Sua Senha de App (oculta): "
	toLabel         = "E-mail do Destinatário: "

	// RemediationHint follows every delivery failure.
	RemediationHint = "Verifique se o 'Acesso a apps menos seguros' está ativado ou se usou a Senha de App correta."
)

// Prompter collects answers from the user. Secret must not echo the input.
type Prompter interface {
	Input(label string) (string, error)
	Secret(label string) (string, error)
}

type Outcome int

const (
	Declined Outcome = iota
	Sent
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Declined:
		return "declined"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsConfirmation reports whether answer accepts the send prompt.
func IsConfirmation(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "s"
}

// Dispatcher runs the optional email step after a report is written.
// Fields set in Preset are used as-is and never prompted for.
type Dispatcher struct {
	Prompter Prompter
	Sender   Sender
	Preset   Envelope
	Now      func() time.Time
}

func NewDispatcher(p Prompter, s Sender, preset Envelope) *Dispatcher {
	return &Dispatcher{
		Prompter: p,
		Sender:   s,
		Preset:   preset,
		Now:      time.Now,
	}
}

// Dispatch asks whether to send attachment and delivers it on confirmation.
// Failures are logged and reported through the outcome, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, attachment string) Outcome {
	logger.Info("--- CONFIGURAÇÃO DE ENVIO DE E-MAIL ---")

	answer, err := d.Prompter.Input(confirmQuestion)
	if err != nil || !IsConfirmation(answer) {
		logger.Info("Envio cancelado. O arquivo PDF permanece salvo localmente.")
		return Declined
	}

	logger.Info("NOTA DE SEGURANÇA: Para Gmail, você deve usar uma 'Senha de Aplicativo'.")

	e, err := d.collect()
	if errors.Is(err, ErrCancelled) {
		logger.Info("Envio cancelado. O arquivo PDF permanece salvo localmente.")
		return Declined
	}
	if err != nil {
		return fail(err)
	}

	if err := e.Validate(); err != nil {
		return fail(err)
	}

	msg, err := BuildMessage(e, attachment, d.Now())
	if err != nil {
		return fail(err)
	}

	logger.Info("Conectando ao servidor SMTP...")
	if err := d.Sender.Send(ctx, e, msg); err != nil {
		return fail(err)
	}

	logger.Success("SUCESSO! E-mail enviado para %s", e.To)
	return Sent
}

func (d *Dispatcher) collect() (Envelope, error) {
	e := d.Preset
	var err error

	if e.From == "" {
		if e.From, err = d.Prompter.Input(fromLabel); err != nil {
			return e, err
		}
	}
	if e.Password == "" {
		if e.Password, err = d.Prompter.Secret(passwordLabel); err != nil {
			return e, err
		}
	}
	if e.To == "" {
		if e.To, err = d.Prompter.Input(toLabel); err != nil {
			return e, err
		}
	}

	e.From = strings.TrimSpace(e.From)
	e.To = strings.TrimSpace(e.To)
	return e, nil
}

func fail(err error) Outcome {
	logger.Error("❌ ERRO AO ENVIAR: %v", err)
	logger.Warn(RemediationHint)
	return Failed
}
