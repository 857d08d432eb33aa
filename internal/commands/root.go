// Package commands wires the kakeibo CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kakeibo-dev/kakeibo/internal/buildinfo"
	"github.com/kakeibo-dev/kakeibo/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "kakeibo",
		Short:   "Household ledger with monthly fixed-cost templates",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory holding the ledger documents")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand(&dataDir))
	rootCmd.AddCommand(newTxCommand(&dataDir))
	rootCmd.AddCommand(newFixedCommand(&dataDir))
	rootCmd.AddCommand(newSummaryCommand(&dataDir))

	return rootCmd
}

func defaultDataDir() string {
	if dir := config.DataDirFromEnv(); dir != "" {
		return dir
	}
	return "."
}
