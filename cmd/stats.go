package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/console"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd, stderrLogger())
		if err != nil {
			return err
		}
		defer env.Close()

		recs, err := env.repo.ReadAll(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		console.WriteStats(cmd.OutOrStdout(), session.Aggregate(recs))
		return nil
	},
}
