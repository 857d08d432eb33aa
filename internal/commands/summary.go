package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newSummaryCommand(dataDir *string) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total balance and monthly income/expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			sum := s.svc.Summary(period)

			cmd.Printf("Period:        %s\n", period)
			cmd.Printf("Total balance: %s\n", s.amount(sum.TotalBalance))
			cmd.Printf("Income:        %s\n", s.amount(sum.Income))
			cmd.Printf("Expense:       %s\n", s.amount(sum.Expense))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", time.Now().Format("2006-01"), "year-month to aggregate, e.g. 2024-05")

	return cmd
}
