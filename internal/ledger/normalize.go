package ledger

import (
	"github.com/kakeibo-dev/kakeibo/internal/id"
	"github.com/kakeibo-dev/kakeibo/internal/model"
)

// placeholderName is assigned to legacy accounts stored without a name.
const placeholderName = "unnamed"

// normalize backfills ids and defaults on legacy records in place and
// reports whether anything changed. A true result means the caller must
// persist immediately, so the assigned ids are durable before any later
// operation references them.
//
// Numeric and memo fields need no handling here: a missing JSON field
// decodes to the zero value, which is already the documented default.
func normalize(accounts []model.Account, txs []model.Transaction, fcs []model.FixedCost, today string) bool {
	changed := false

	for i := range accounts {
		if accounts[i].ID == "" {
			accounts[i].ID = id.New(id.KindAccount)
			changed = true
		}
		if accounts[i].Name == "" {
			accounts[i].Name = placeholderName
			changed = true
		}
	}

	for i := range txs {
		if txs[i].ID == "" {
			txs[i].ID = id.New(id.KindTransaction)
			changed = true
		}
		if txs[i].Date == "" {
			txs[i].Date = today
			changed = true
		}
	}

	for i := range fcs {
		if fcs[i].ID == "" {
			fcs[i].ID = id.New(id.KindFixedCost)
			changed = true
		}
		if fcs[i].Day == 0 {
			fcs[i].Day = 1
			changed = true
		}
	}

	return changed
}
