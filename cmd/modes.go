package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/home"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List game modes and how many questions each can draw",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd, stderrLogger())
		if err != nil {
			return err
		}
		defer env.Close()

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tRULES\tPOOL")
		for _, cfg := range env.modes.List() {
			pool := "?"
			if n, err := env.source.Available(cmdContext(cmd), cfg); err == nil {
				pool = fmt.Sprint(n)
			} else {
				env.logger.Printf("warning: count questions for %s: %v", cfg.ID, err)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", cfg.ID, cfg.Name, home.Describe(cfg), pool)
		}
		return tw.Flush()
	},
}
