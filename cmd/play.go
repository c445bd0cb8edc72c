package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/console"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

const defaultMode = "RAPID_FIRE"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start a game (RAPID_FIRE by default)",
	Long: `Start a game in the given mode. Run "aptitude modes" to list them.

With --plain the game runs as a line-oriented prompt instead of the
full-screen interface, which suits pipes and screen readers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modeID := defaultMode
		if len(args) == 1 {
			modeID = args[0]
		}

		plain, _ := cmd.Flags().GetBool("plain")
		if !plain {
			return runApp(cmd, modeID)
		}

		env, err := openEnv(cmd, stderrLogger())
		if err != nil {
			return err
		}
		defer env.Close()

		surface := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		ctrl := session.New(env.source, surface, env.repo, env.sessionOptions())
		if err := surface.Run(cmdContext(cmd), ctrl, modeID); err != nil {
			return err
		}
		if err := ctrl.PersistErr(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: this game was not saved: %v\n", err)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().Bool("plain", false, "Play in plain text mode")
}
