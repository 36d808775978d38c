// Package interactive provides a live preview for duration expressions:
// the user types an expression and sees its normalized value on every
// keystroke.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/d-kuro/durfield/pkg/duration"
)

const prompt = "duration> "

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the live preview.
type Model struct {
	input    []rune
	value    duration.Duration
	err      error
	accepted bool
	quitting bool
}

// New creates a Model, optionally seeded with an initial expression.
func New(initial string) Model {
	m := Model{input: []rune(initial)}
	m.evaluate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.err == nil {
			m.accepted = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyCtrlU:
		m.input = m.input[:0]
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	default:
		return m, nil
	}

	m.evaluate()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.accepted || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(prompt))
	b.WriteString(string(m.input))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	default:
		b.WriteString(resultStyle.Render(fmt.Sprintf("= %s (%d us)", duration.Format(m.value), duration.ToMicroseconds(m.value))))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: accept  ctrl+u: clear  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Input returns the current expression.
func (m Model) Input() string { return string(m.input) }

// Result returns the parsed value and whether the user accepted it.
func (m Model) Result() (duration.Duration, bool) {
	return m.value, m.accepted
}

func (m *Model) evaluate() {
	m.value, m.err = duration.Parse(string(m.input))
}

// Run starts the preview on in/out and returns the accepted value. The
// boolean is false when the user quit without accepting.
func Run(ctx context.Context, initial string, in io.Reader, out io.Writer) (duration.Duration, bool, error) {
	p := tea.NewProgram(New(initial),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return duration.Duration{}, false, fmt.Errorf("interactive preview failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return duration.Duration{}, false, fmt.Errorf("unexpected model type %T", final)
	}
	d, accepted := m.Result()
	return d, accepted, nil
}
