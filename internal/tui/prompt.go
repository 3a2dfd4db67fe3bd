package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/cryptfolio/cryptfolio-tools/internal/mailer"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9945FF"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// PromptModel reads a single line of input.
type PromptModel struct {
	label     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func NewPromptModel(label string, secret bool) PromptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 48
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()

	return PromptModel{
		label: label,
		input: ti,
	}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyCtrlJ:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var s strings.Builder
	s.WriteString(labelStyle.Render(strings.TrimSpace(m.label)))
	s.WriteString(" ")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(hintStyle.Render("enter para confirmar • esc para cancelar"))
	s.WriteString("\n")
	return s.String()
}

// Value returns the entered text.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// Cancelled reports whether the prompt was aborted with esc or ctrl+c.
func (m PromptModel) Cancelled() bool {
	return m.cancelled
}

// Prompter asks questions on a terminal. It satisfies mailer.Prompter.
// When the input is not a terminal, answers are read line by line and the
// end of input counts as a cancellation.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	lines *bufio.Reader
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: in, out: out}
	if !isTerminal(in) {
		p.lines = bufio.NewReader(in)
	}
	return p
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Prompter) Input(label string) (string, error) {
	if p.lines != nil {
		return p.readLine(label)
	}
	return p.run(NewPromptModel(label, false))
}

func (p *Prompter) Secret(label string) (string, error) {
	if p.lines != nil {
		return p.readLine(label)
	}
	return p.run(NewPromptModel(label, true))
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.lines.ReadString('\n')
	if err == io.EOF && line == "" {
		fmt.Fprintln(p.out)
		return "", mailer.ErrCancelled
	}
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) run(model PromptModel) (string, error) {
	program := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out))

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	result, ok := final.(PromptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	if result.Cancelled() {
		return "", mailer.ErrCancelled
	}

	return result.Value(), nil
}
