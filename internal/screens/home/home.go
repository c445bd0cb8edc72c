package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/router"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screen"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/history"
	sessionscreen "github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/components"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/layout"
)

type statsLoadedMsg struct {
	stats *session.HistoryStats
	last  *session.Record
}

// HomeScreen is the main menu: one entry per game mode plus history.
type HomeScreen struct {
	menu   components.Menu
	repo   history.Reader
	stats  *session.HistoryStats
	mascot MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen offering every mode in modes.
func New(modes mode.Table, deps sessionscreen.Deps, repo history.Reader) *HomeScreen {
	if deps.Options.Modes == nil {
		deps.Options.Modes = modes
	}

	var items []components.MenuItem
	for _, cfg := range modes.List() {
		id := cfg.ID
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(cfg.Name),
			Detail: Describe(cfg),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: sessionscreen.New(deps, id)}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label:    "HISTORY",
			Detail:   "Past games and lifetime accuracy by subject",
			Disabled: repo == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(repo)}
				}
			},
		},
		components.MenuItem{
			Label:  "EXIT",
			Detail: "See you next time",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)

	return &HomeScreen{
		menu: components.NewMenu(items),
		repo: repo,
	}
}

// Describe summarizes a mode's rules in one line.
func Describe(cfg mode.Config) string {
	parts := []string{fmt.Sprintf("%d questions", cfg.QuestionsCount)}
	if cfg.Timed() {
		parts = append(parts, fmt.Sprintf("%ds each", cfg.TimeLimitSeconds))
	} else {
		parts = append(parts, "untimed")
	}
	parts = append(parts, cfg.Difficulty.String()+" difficulty")
	if cfg.EndsOnWrongAnswer {
		parts = append(parts, "one miss ends it")
	}
	return strings.Join(parts, " · ")
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads stats after a game or the history screen is closed.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	if h.repo == nil {
		return nil
	}
	repo := h.repo
	return func() tea.Msg {
		recs, err := repo.ReadAll(context.Background())
		if err != nil {
			return statsLoadedMsg{}
		}
		msg := statsLoadedMsg{stats: session.Aggregate(recs)}
		if newest := session.NewestFirst(recs); len(newest) > 0 {
			msg.last = newest[0]
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.stats = msg.stats
		h.mascot = mascotFor(msg.last)
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu, cw))
	}
	if item, ok := h.menu.Current(); ok && item.Detail != "" {
		sections = append(sections, renderDetail(item.Detail, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
