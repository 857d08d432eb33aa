package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kakeibo-dev/kakeibo/internal/ledger"
)

func newFixedCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Manage fixed-cost templates and apply them monthly",
	}

	cmd.AddCommand(newFixedAddCommand(dataDir))
	cmd.AddCommand(newFixedListCommand(dataDir))
	cmd.AddCommand(newFixedDeleteCommand(dataDir))
	cmd.AddCommand(newFixedApplyCommand(dataDir))

	return cmd
}

func newFixedAddCommand(dataDir *string) *cobra.Command {
	var account, amount, memo string
	var day int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a fixed-cost template (amount negative for charges)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			minor, err := s.parseAmount(amount)
			if err != nil {
				return err
			}

			fc, err := s.svc.AddFixedCost(ledger.FixedCostParams{
				Name:    args[0],
				Account: account,
				Amount:  minor,
				Memo:    memo,
				Day:     day,
			})
			if err != nil {
				return err
			}

			if err := s.record("fixed.add", fc.ID, fmt.Sprintf("%s %s %d day %d", fc.Name, fc.Account, fc.Amount, fc.Day)); err != nil {
				return err
			}

			cmd.Printf("Added fixed cost %s: %s / %s / %s / every month on day %d\n",
				fc.ID, fc.Name, fc.Account, s.amount(fc.Amount), fc.Day)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name to charge (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&memo, "memo", "", "free-text memo")
	cmd.Flags().IntVar(&day, "day", 0, "day of month the charge becomes due, 1-31 (required)")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newFixedListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fixed-cost templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			fcs := s.svc.FixedCosts()
			if len(fcs) == 0 {
				cmd.Println("No fixed-cost templates yet.")
				return nil
			}
			for _, fc := range fcs {
				line := fmt.Sprintf("%s  %s / %s / %s / day %d", fc.ID, fc.Name, fc.Account, s.amount(fc.Amount), fc.Day)
				if fc.Memo != "" {
					line += " / " + fc.Memo
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}

func newFixedDeleteCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a fixed-cost template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.svc.DeleteFixedCost(args[0]); err != nil {
				return err
			}

			if err := s.record("fixed.delete", args[0], ""); err != nil {
				return err
			}

			cmd.Printf("Deleted fixed cost %s (if it existed)\n", args[0])
			return nil
		},
	}
}

func newFixedApplyCommand(dataDir *string) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Generate this month's due fixed costs (safe to re-run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			asOf, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("parsing --as-of date %q: %w", dateStr, err)
			}

			res, err := s.svc.ApplyFixedCosts(asOf)
			if err != nil {
				return err
			}

			details := fmt.Sprintf("added=%d future=%d dup=%d no_account=%d",
				res.Added, res.SkippedFuture, res.SkippedDup, res.SkippedNoAccount)
			if err := s.record("fixed.apply", "", details); err != nil {
				return err
			}

			cmd.Printf("Fixed costs applied: %d added / %d not yet due / %d duplicates skipped / %d missing account\n",
				res.Added, res.SkippedFuture, res.SkippedDup, res.SkippedNoAccount)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "as-of", today(), "treat this date as today (YYYY-MM-DD)")

	return cmd
}
