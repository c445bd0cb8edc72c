package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aptitude",
	Short: "Aptitude quiz game for the terminal",
	Long: `Aptitude: timed multiple-choice practice across mathematics, logical reasoning,
verbal ability, quantitative and technical aptitude.

Run without arguments to open the game menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

// Execute runs the root command. Ctrl+C cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides APTITUDE_DB env var)")
	pf.String("config", "", "Path to settings file (overrides APTITUDE_CONFIG env var)")
	pf.String("data", "", "Directory with <subject>.json question files (default: built-in bank)")
	pf.String("store", "", "History backend: sqlite or redis")
	pf.String("redis-addr", "", "Redis address for the redis backend (default localhost:6379)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the settings file, then APTITUDE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, fromConfig *string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fromConfig != nil && *fromConfig != "" {
		return *fromConfig, store.EnsureDir(*fromConfig)
	}
	return store.DefaultDBPath()
}
