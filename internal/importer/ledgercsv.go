package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerParser parses the native kakeibo export format:
// date,account,amount,memo with an ISO date and a signed decimal amount.
type LedgerParser struct{}

const (
	ledgerDateFormat = "2006-01-02"
	ledgerNumFields  = 4
	ledgerColDate    = 0
	ledgerColAccount = 1
	ledgerColAmount  = 2
	ledgerColMemo    = 3
)

// Format returns the parser name.
func (p *LedgerParser) Format() string { return "kakeibo" }

// Parse reads a kakeibo CSV and returns Rows.
func (p *LedgerParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = ledgerNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading kakeibo CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	// Skip header row.
	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseLedgerRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseLedgerRow(rec []string) (Row, error) {
	if _, err := time.Parse(ledgerDateFormat, rec[ledgerColDate]); err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[ledgerColDate], err)
	}

	amount, err := decimal.NewFromString(rec[ledgerColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[ledgerColAmount], err)
	}

	return Row{
		Date:    rec[ledgerColDate],
		Account: rec[ledgerColAccount],
		Amount:  amount,
		Memo:    rec[ledgerColMemo],
	}, nil
}
