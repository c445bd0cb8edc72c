package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/components"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/layout"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.current.q == nil:
		return renderLoading(width)
	case s.showingQuitConfirm:
		return renderQuitConfirm(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

// renderInfoLine renders the question counter, subject and timer.
func (s *SessionScreen) renderInfoLine(width int) string {
	q := s.current.q

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", q.Subject, q.Topic)) +
		"  " + theme.Difficulty(string(q.Difficulty)).Render(string(q.Difficulty))

	right := fmt.Sprintf("Q %d/%d", s.current.number, s.current.total)
	if s.cfg.Timed() && !s.showingFeedback {
		right += fmt.Sprintf("   ⏱ %ds", max(s.remaining, 0))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	line := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + infoRight
	}
	return line
}

func (s *SessionScreen) renderQuestionView(width int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	if s.cfg.Timed() {
		bar := components.NewProgressBar("", float64(s.remaining)/float64(s.cfg.TimeLimitSeconds), false, width-4)
		bar.LowBelow = 0.25
		b.WriteString("  " + bar.View())
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	}
	b.WriteString("\n\n")

	card := components.ArcadeCard(fmt.Sprintf("Question %d", s.current.number), s.mc.View(), min(width-4, 76))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Hint, "Press a number or letter, or use arrows + Enter", width))

	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	q := s.current.q
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	var points int
	if rec := s.ctrl.Record(); rec != nil {
		if ev, ok := rec.LastAnswer(); ok {
			points = ev.PointsEarned
		}
	}

	switch {
	case s.mc.TimedOut:
		b.WriteString(layout.Centered(theme.TimedOut, "Time's up!", width))
	case s.mc.IsCorrect():
		b.WriteString(layout.Centered(theme.Correct, fmt.Sprintf("Correct! +%d", points), width))
	default:
		b.WriteString(layout.Centered(theme.Incorrect, "Incorrect.", width))
	}
	b.WriteString("\n\n")

	card := components.ArcadeCard(fmt.Sprintf("Question %d", s.current.number), s.mc.View(), min(width-4, 76))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if !s.mc.IsCorrect() {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text),
			"Correct answer: "+q.CorrectAnswer, width))
		b.WriteString("\n\n")
	}

	if q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.TextDim).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if s.ctrl.State().Terminal() {
		b.WriteString(layout.Centered(theme.Incorrect, "Game over", width))
		b.WriteString("\n")
	}
	b.WriteString(layout.Centered(theme.Hint, "Press Enter to continue...", width))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End this game early?", width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Answers so far are saved to your history.", width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, end game", width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going", width))
	return b.String()
}

func renderLoading(width int) string {
	return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), "\n\n\n  Loading questions...", width)
}

func renderError(width int, errMsg string) string {
	return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg), width)
}
