package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/components"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/theme"
)

const arcadeTitleFull = ` ▄▀█ █▀█ ▀█▀ █ ▀█▀ █ █ █▀▄ █▀▀
 █▀█ █▀▀  █  █  █  █▄█ █▄▀ ██▄`

const arcadeTitleCompact = "A · P · T · I · T · U · D · E"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders lifetime stats in a bordered box matching content width.
func renderStatsBar(stats *session.HistoryStats, cw int, compact bool) string {
	gamesStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var text string
	switch {
	case stats == nil || stats.Sessions == 0:
		text = dimStyle.Render("NO GAMES PLAYED YET")
	case compact:
		text = fmt.Sprintf("%s %s %s",
			gamesStyle.Render(fmt.Sprintf("▶%d", stats.Sessions)),
			bestStyle.Render(fmt.Sprintf("◆%d", stats.BestScore)),
			accStyle.Render(fmt.Sprintf("%.0f%%", stats.Accuracy)),
		)
	default:
		text = fmt.Sprintf("%s  %s  %s",
			gamesStyle.Render(fmt.Sprintf("▶ %d GAMES", stats.Sessions)),
			bestStyle.Render(fmt.Sprintf("◆ BEST %d", stats.BestScore)),
			accStyle.Render(fmt.Sprintf("%.0f%% ACCURACY", stats.Accuracy)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(menu components.Menu, cw int) string {
	buttons := make([]string, 0, len(menu.Items))
	for i, item := range menu.Items {
		buttons = append(buttons, components.ArcadeButton(item.Label, i == menu.Selected, item.Disabled, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(menu components.Menu, cw int) string {
	lines := make([]string, 0, len(menu.Items))
	for i, item := range menu.Items {
		if item.Disabled {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Faint(true).
				Render("   "+item.Label))
			continue
		}
		if i == menu.Selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+item.Label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+item.Label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderDetail describes the highlighted menu entry.
func renderDetail(detail string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(detail)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
