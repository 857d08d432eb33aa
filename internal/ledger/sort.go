package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

// dateLayout is the ISO calendar date format used for all transaction dates.
const dateLayout = "2006-01-02"

// sortTransactions establishes the one transaction order used for both
// storage and display: date ascending, with transactions whose date fails
// to parse after all parseable ones, then id ascending as the tie-break.
// The sort is stable, so sorting an already-sorted collection is a no-op.
func sortTransactions(txs []model.Transaction) {
	slices.SortStableFunc(txs, compareTransactions)
}

func compareTransactions(a, b model.Transaction) int {
	da, aok := parseDate(a.Date)
	db, bok := parseDate(b.Date)
	switch {
	case aok && bok:
		if c := da.Compare(db); c != 0 {
			return c
		}
	case aok:
		return -1 // parseable sorts before malformed
	case bok:
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}
