package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/router"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screen"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/components"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/layout"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/theme"
)

// SummaryScreen displays the results of one game.
type SummaryScreen struct {
	summary *session.Summary
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. saveErr is shown as a warning when the
// record could not be written to history.
func New(summary *session.Summary, saveErr error) *SummaryScreen {
	return &SummaryScreen{summary: summary, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("%s complete!", sum.GameMode), width))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Duration: %d:%02d", mins, secs), width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
		fmt.Sprintf("Score %d", sum.Score), width))
	b.WriteString("\n")
	stats := fmt.Sprintf("Questions: %d     Correct: %d     Accuracy: %.1f%%     Best streak: %d",
		sum.TotalQuestions, sum.CorrectAnswers, sum.Accuracy, sum.BestStreak)
	if sum.Timeouts > 0 {
		stats += fmt.Sprintf("     Timeouts: %d", sum.Timeouts)
	}
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text), stats, width))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 60), 0)))

	if len(sum.Subjects) > 0 {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Subjects", width))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")

		barWidth := min(width-8, 60)
		for _, sr := range sum.Subjects {
			label := fmt.Sprintf("%-22s %2d/%-2d", sr.Subject, sr.Correct, sr.Total)
			bar := components.NewProgressBar(label, sr.Accuracy/100, true, barWidth)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
			for _, tr := range sr.Topics {
				line := fmt.Sprintf("    %-26s %d/%d  %.0f%%", tr.Topic, tr.Correct, tr.Total, tr.Accuracy)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Width(barWidth).Render(line)))
				b.WriteString("\n")
			}
		}
	}

	if len(sum.Difficulty) > 0 {
		parts := make([]string, 0, len(sum.Difficulty))
		for _, d := range sum.Difficulty {
			parts = append(parts, theme.Difficulty(string(d.Level)).Render(fmt.Sprintf("%s ×%d", d.Level, d.Count)))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "   ")))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Warning),
			"This game could not be saved to history.", width))
		b.WriteString("\n")
	}

	return b.String()
}
