package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/router"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screen"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/history"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/home"
	sessionscreen "github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Modes   mode.Table
	Game    sessionscreen.Deps
	History history.Reader

	// StartMode, when set, opens a game in that mode right away.
	StartMode string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	game      sessionscreen.Deps
	startMode string
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Modes == nil {
		opts.Modes = mode.Defaults()
	}
	if opts.Game.Options.Modes == nil {
		opts.Game.Options.Modes = opts.Modes
	}
	return AppModel{
		router:    router.New(home.New(opts.Modes, opts.Game, opts.History)),
		game:      opts.Game,
		startMode: opts.StartMode,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.startMode != "" {
		game := sessionscreen.New(m.game, m.startMode)
		cmds = append(cmds, func() tea.Msg { return router.PushScreenMsg{Screen: game} })
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.frame())
	return v
}

func (m AppModel) frame() string {
	active := m.router.Active()

	var title string
	var status *layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	if hints == nil {
		if m.router.Depth() > 1 {
			hints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
			}
		} else {
			hints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
			}
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
