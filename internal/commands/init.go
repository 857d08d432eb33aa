package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kakeibo-dev/kakeibo/internal/config"
	"github.com/kakeibo-dev/kakeibo/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var storageBackend string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new kakeibo data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, storageBackend, useGit)
		},
	}

	cmd.Flags().StringVar(&storageBackend, "storage", config.BackendJSON, "storage backend (json or sqlite)")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and auto-commit data changes")

	return cmd
}

func runInit(cmd *cobra.Command, dir, storageBackend string, useGit bool) error {
	if storageBackend != config.BackendJSON && storageBackend != config.BackendSQLite {
		return fmt.Errorf("unknown storage backend %q", storageBackend)
	}

	for _, d := range []string{"import", filepath.Join("import", "processed"), "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default()
	cfg.Storage.Backend = storageBackend
	cfg.Git.AutoCommit = useGit

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the empty collections so the documents exist from day one.
	gw, closer, err := openGateway(dir, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer() //nolint:errcheck
	}
	if err := gw.SaveAccounts(nil); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	if err := gw.SaveTransactions(nil); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	if err := gw.SaveFixedCosts(nil); err != nil {
		return fmt.Errorf("writing fixed costs: %w", err)
	}

	if useGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}

	cmd.Printf("Initialized kakeibo data directory at %s (storage: %s)\n", dir, storageBackend)
	return nil
}
