package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/console"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past games, newest first",
	Args:  cobra.NoArgs,
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
		recs = session.NewestFirst(recs)
		if n, _ := cmd.Flags().GetInt("limit"); n > 0 && len(recs) > n {
			recs = recs[:n]
		}
		console.WriteHistory(cmd.OutOrStdout(), recs)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the results of one past game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd, stderrLogger())
		if err != nil {
			return err
		}
		defer env.Close()

		rec, err := env.repo.Get(cmdContext(cmd), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no game with id %q (see \"aptitude history\")", args[0])
		}
		if err != nil {
			return fmt.Errorf("load game %s: %w", args[0], err)
		}
		console.WriteSummary(cmd.OutOrStdout(), session.BuildSummary(rec))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Show at most this many games (0 for all)")
}
