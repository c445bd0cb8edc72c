package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/router"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screen"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/summary"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/components"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/layout"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/theme"
)

// Reader loads the saved game records.
type Reader interface {
	ReadAll(ctx context.Context) ([]*session.Record, error)
}

type historyLoadedMsg struct {
	Records []*session.Record
	Err     error
}

// HistoryScreen lists past games, newest first, with lifetime stats.
type HistoryScreen struct {
	repo     Reader
	records  []*session.Record
	stats    *session.HistoryStats
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo Reader) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		recs, err := repo.ReadAll(context.Background())
		return historyLoadedMsg{Records: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = session.NewestFirst(msg.Records)
			s.stats = session.Aggregate(msg.Records)
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.records) {
				rec := s.records[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: summary.New(session.BuildSummary(rec), nil)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("\n\nError: %s", s.errMsg), width)
	}
	if !s.loaded {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim),
			"\n\n  Loading history...", width)
	}
	if len(s.records) == 0 {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
			"\n\n  No games yet. Pick a mode and start playing!", width)
	}

	var b strings.Builder
	b.WriteString("\n")

	st := s.stats
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true),
		fmt.Sprintf("%d games   %.1f%% accuracy   best score %d   best streak %d",
			st.Sessions, st.Accuracy, st.BestScore, st.BestStreak), width))
	b.WriteString("\n")

	barWidth := min(width-8, 60)
	for _, sr := range st.Subjects {
		bar := components.NewProgressBar(fmt.Sprintf("%-22s", sr.Subject), sr.Accuracy/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Keep the selection visible on short terminals.
	rows := max(height-lipgloss.Height(b.String())-1, 3)
	first := 0
	if s.selected >= rows {
		first = s.selected - rows + 1
	}

	for i := first; i < len(s.records) && i < first+rows; i++ {
		rec := s.records[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-12s  score %4d  %2d/%-2d  %5.1f%%",
			prefix, rec.StartTime.Local().Format("Jan 02 15:04"), rec.GameMode,
			rec.Score, rec.CorrectAnswers, rec.TotalQuestions, rec.Accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
