package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kakeibo-dev/kakeibo/internal/importer"
	"github.com/kakeibo-dev/kakeibo/internal/ledger"
	"github.com/kakeibo-dev/kakeibo/internal/money"
)

func newTxCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}

	cmd.AddCommand(newTxAddCommand(dataDir))
	cmd.AddCommand(newTxListCommand(dataDir))
	cmd.AddCommand(newTxDeleteCommand(dataDir))
	cmd.AddCommand(newTxImportCommand(dataDir))

	return cmd
}

func newTxAddCommand(dataDir *string) *cobra.Command {
	var date, account, amount, memo string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction (positive = income, negative = expense)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			minor, err := s.parseAmount(amount)
			if err != nil {
				return err
			}

			tx, err := s.svc.AddTransaction(ledger.TransactionParams{
				Date:    date,
				Account: account,
				Amount:  minor,
				Memo:    memo,
			})
			if err != nil {
				return err
			}

			if err := s.record("tx.add", tx.ID, fmt.Sprintf("%s %s %d", tx.Date, tx.Account, tx.Amount)); err != nil {
				return err
			}

			cmd.Printf("Added transaction %s: %s | %s | %s\n", tx.ID, tx.Date, tx.Account, s.amount(tx.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&account, "account", "", "account name (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&memo, "memo", "", "free-text memo")

	return cmd
}

func newTxListCommand(dataDir *string) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			txs := s.svc.Transactions()
			printed := 0
			for i := len(txs) - 1; i >= 0; i-- {
				t := txs[i]
				if period != "" && !strings.HasPrefix(t.Date, period) {
					continue
				}
				sign := ""
				if t.Amount > 0 {
					sign = "+"
				}
				cmd.Printf("%s  %s | %s | %s%s | %s\n", t.ID, t.Date, t.Account, sign, s.amount(t.Amount), t.Memo)
				printed++
			}
			if printed == 0 {
				cmd.Println("No transactions.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "only show a year-month, e.g. 2024-05")

	return cmd
}

func newTxDeleteCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction and reverse its balance contribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.svc.DeleteTransaction(args[0]); err != nil {
				return err
			}

			if err := s.record("tx.delete", args[0], ""); err != nil {
				return err
			}

			cmd.Printf("Deleted transaction %s (if it existed)\n", args[0])
			return nil
		},
	}
}

func newTxImportCommand(dataDir *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import transactions from CSV; without a file, process <data-dir>/import/",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dataDir)
			if err != nil {
				return err
			}
			defer s.close()

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			if len(args) == 1 {
				n, err := importFile(s, parser, args[0])
				if err != nil {
					return err
				}
				cmd.Printf("Imported %d transactions from %s\n", n, args[0])
				return nil
			}

			files, err := importer.Scan(s.dataDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				cmd.Println("Nothing to import.")
				return nil
			}
			for _, f := range files {
				n, err := importFile(s, parser, f.Path)
				if err != nil {
					return fmt.Errorf("%s: %w", f.Name, err)
				}
				if err := importer.MarkProcessed(s.dataDir, f.Name); err != nil {
					return err
				}
				cmd.Printf("Imported %d transactions from %s\n", n, f.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "kakeibo", "import file format")

	return cmd
}

// importFile parses one CSV and records every row as a manual entry:
// rows referencing unknown accounts are still imported, balances untouched.
func importFile(s *session, parser importer.Parser, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, row := range rows {
		minor, err := money.ToMinor(row.Amount, s.cfg.Currency.Exponent)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
		tx, err := s.svc.AddTransaction(ledger.TransactionParams{
			Date:    row.Date,
			Account: row.Account,
			Amount:  minor,
			Memo:    row.Memo,
		})
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := s.record("tx.import", tx.ID, fmt.Sprintf("%s %s %d", tx.Date, tx.Account, tx.Amount)); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
