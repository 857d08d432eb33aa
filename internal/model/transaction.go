package model

// Transaction is a single ledger entry.
//
// Account holds the referenced account's *name* at creation time, not its
// id. The reference is denormalized on purpose: legacy data stores names,
// and duplicate detection for generated fixed costs is defined over them.
// A transaction may outlive its account; lookups treat that as a no-match,
// never an error.
type Transaction struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // ISO date "2006-01-02"; may be malformed in legacy data
	Account string `json:"account"`
	Amount  int64  `json:"amount"` // positive = income, negative = expense
	Memo    string `json:"memo"`
}
