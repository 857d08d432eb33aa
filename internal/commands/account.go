package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kakeibo-dev/kakeibo/internal/ledger"
)

func newAccountCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAccountAddCommand(dataDir))
	cmd.AddCommand(newAccountListCommand(dataDir))
	cmd.AddCommand(newAccountDeleteCommand(dataDir))

	return cmd
}

func newAccountAddCommand(dataDir *string) *cobra.Command {
	var opening string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			balance, err := s.parseAmount(opening)
			if err != nil {
				return err
			}

			acc, err := s.svc.AddAccount(args[0], balance)
			if err != nil {
				return err
			}

			if err := s.record("account.add", acc.ID, fmt.Sprintf("%s opening %d", acc.Name, acc.Balance)); err != nil {
				return err
			}

			cmd.Printf("Added account %s (%s, opening balance %s)\n", acc.ID, acc.Name, s.amount(acc.Balance))
			return nil
		},
	}

	cmd.Flags().StringVar(&opening, "opening", "0", "opening balance")

	return cmd
}

func newAccountListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			accounts := s.svc.Accounts()
			if len(accounts) == 0 {
				cmd.Println("No accounts yet.")
				return nil
			}
			for _, a := range accounts {
				cmd.Printf("%s  %s  %s\n", a.ID, a.Name, s.amount(a.Balance))
			}
			cmd.Printf("Total: %s\n", s.amount(ledger.TotalBalance(accounts)))
			return nil
		},
	}
}

func newAccountDeleteCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account (its transactions are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.svc.DeleteAccount(args[0]); err != nil {
				return err
			}

			if err := s.record("account.delete", args[0], ""); err != nil {
				return err
			}

			cmd.Printf("Deleted account %s (if it existed)\n", args[0])
			return nil
		},
	}
}
