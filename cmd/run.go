package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/app"
	sessionscreen "github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/session"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A non-empty startMode skips the menu and starts that game.
func runApp(cmd *cobra.Command, startMode string) error {
	logger, closeLog := fileLogger()
	defer closeLog()

	env, err := openEnv(cmd, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	return app.Run(app.Options{
		Modes: env.modes,
		Game: sessionscreen.Deps{
			Source:  env.source,
			Store:   env.repo,
			Options: env.sessionOptions(),
		},
		History:   env.repo,
		StartMode: startMode,
	})
}
