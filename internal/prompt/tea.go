package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// TeaPrompter renders each question as a one-shot inline Bubble Tea program.
// The program exits before Ask returns, so the console is free for winget.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask runs the question until enter, Ctrl+C or Esc.
func (p *TeaPrompter) Ask(label string) (string, error) {
	prog := tea.NewProgram(newModel(label), tea.WithInput(p.In), tea.WithOutput(p.Out))
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	m := final.(model)
	if m.cancelled {
		return "", ErrInterrupted
	}
	return m.answer(), nil
}

type model struct {
	header    string
	input     textinput.Model
	done      bool
	cancelled bool
}

// newModel splits label so that everything before the last line is shown
// above the input and the last line becomes the input prompt.
func newModel(label string) model {
	header, last := "", label
	if i := strings.LastIndex(label, "\n"); i >= 0 {
		header, last = label[:i], label[i+1:]
	}

	ti := textinput.New()
	ti.Prompt = last
	ti.Focus()
	ti.Width = 60

	return model{header: header, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	if m.header != "" {
		b.WriteString(headerStyle.Render(m.header) + "\n")
	}
	switch {
	case m.done:
		b.WriteString(m.input.Prompt + answerStyle.Render(m.answer()) + "\n")
	case m.cancelled:
		b.WriteString(m.input.Prompt + "\n")
	default:
		b.WriteString(m.input.View())
	}
	return b.String()
}

func (m model) answer() string {
	return strings.TrimSpace(m.input.Value())
}
