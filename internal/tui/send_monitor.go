package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wneessen/go-mail"

	"github.com/cryptfolio/cryptfolio-tools/internal/mailer"
)

type sendDone struct {
	err error
}

// SendModel shows a spinner while a delivery is in flight. ctrl+c calls
// cancel and the model keeps waiting for the send to return.
type SendModel struct {
	message    string
	send       func() error
	cancel     context.CancelFunc
	spinner    spinner.Model
	cancelling bool
	done       bool
	err        error
}

func NewSendModel(message string, send func() error, cancel context.CancelFunc) SendModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CED1"))

	return SendModel{
		message: message,
		send:    send,
		cancel:  cancel,
		spinner: sp,
	}
}

func (m SendModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.run,
	)
}

func (m SendModel) run() tea.Msg {
	return sendDone{err: m.send()}
}

func (m SendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && !m.cancelling {
			m.cancelling = true
			m.message = "Cancelando envio..."
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case sendDone:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m SendModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.message)
}

// Err returns the delivery error once the model has finished.
func (m SendModel) Err() error {
	return m.err
}

// SendMonitor wraps a mailer.Sender with a terminal spinner.
type SendMonitor struct {
	inner mailer.Sender
	in    io.Reader
	out   io.Writer
}

func NewSendMonitor(inner mailer.Sender, in io.Reader, out io.Writer) *SendMonitor {
	return &SendMonitor{inner: inner, in: in, out: out}
}

// Send runs the inner sender behind a spinner. Without a terminal on the
// input side the inner sender is called directly.
func (sm *SendMonitor) Send(ctx context.Context, e mailer.Envelope, msg *mail.Msg) error {
	if !isTerminal(sm.in) {
		return sm.inner.Send(ctx, e, msg)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewSendModel("Enviando relatório para "+e.To+"...", func() error {
		return sm.inner.Send(ctx, e, msg)
	}, cancel)

	program := tea.NewProgram(model, tea.WithInput(sm.in), tea.WithOutput(sm.out))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("send monitor failed: %w", err)
	}

	result, ok := final.(SendModel)
	if !ok {
		return fmt.Errorf("unexpected send model %T", final)
	}
	return result.Err()
}
