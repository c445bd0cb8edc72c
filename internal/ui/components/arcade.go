package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/theme"
)

// ContentWidth is the inner width shared by every boxed section of the
// home cabinet, clamped to 20..64 columns.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + padding (4)
	return min(max(frameWidth-6, 20), 64)
}

// CabinetFrame draws the double border around the home screen and centers
// content inside it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard boxes a question with its label on the top line.
func ArcadeCard(label, content string, cw int) string {
	var b strings.Builder
	if label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(label))
		b.WriteString("\n\n")
	}
	b.WriteString(content)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(b.String())
}

// ArcadeButton renders one home menu entry. Disabled entries stay visible
// but dimmed; they are never highlighted.
func ArcadeButton(label string, selected, disabled bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case disabled:
		return style.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Faint(true).
			Render(label)
	case selected:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	default:
		return style.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}
