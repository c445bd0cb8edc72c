package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/theme"
)

// KeyChoose picks an option directly by its number or letter.
var KeyChoose = key.NewBinding(
	key.WithKeys("1", "2", "3", "4", "5", "6", "a", "b", "c", "d", "e", "f"),
	key.WithHelp("1-4", "answer"),
)

// MultiChoice is a multiple-choice selector. It accepts one submission;
// after that it only renders the outcome.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
	TimedOut     bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, KeyDown):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, KeySelect):
		m = m.Choose(m.Selected)
	case key.Matches(kmsg, KeyChoose):
		if i, ok := optionIndex(kmsg.String()); ok && i < len(m.Options) {
			m = m.Choose(i)
		}
	}

	return m, nil
}

func optionIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	c := k[0]
	switch {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	}
	return 0, false
}

// Choose submits the option at i. It is a no-op once submitted.
func (m MultiChoice) Choose(i int) MultiChoice {
	if m.Submitted || i < 0 || i >= len(m.Options) {
		return m
	}
	m.Selected = i
	m.ChosenIndex = i
	m.Submitted = true
	return m
}

// Expire submits a timeout. It is a no-op once submitted.
func (m MultiChoice) Expire() MultiChoice {
	if m.Submitted {
		return m
	}
	m.Submitted = true
	m.TimedOut = true
	return m
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = style.Foreground(theme.Success).Bold(true)
		case m.Submitted && i == m.ChosenIndex:
			style = style.Foreground(theme.Error).Bold(true)
		case m.Submitted:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && !m.TimedOut && m.ChosenIndex == m.CorrectIndex
}
