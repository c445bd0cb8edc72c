package home

import (
	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no games yet or an average last game
	MascotCelebrating                      // last game at 80% accuracy or better
	MascotAlert                            // last game under 40% accuracy
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ?!✓ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ?!✓ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ?!✓ │
└─────┘`

// mascotFor picks the variant from the most recent game.
func mascotFor(last *session.Record) MascotVariant {
	switch {
	case last == nil || last.TotalQuestions == 0:
		return MascotIdle
	case last.Accuracy >= 80:
		return MascotCelebrating
	case last.Accuracy < 40:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
