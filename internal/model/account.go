package model

// Account is a single bank account (or cash pool) with a running balance.
//
// Balance is denominated in the smallest currency unit (yen for JPY) and
// must always equal the opening balance plus the sum of amounts of all
// transactions currently referencing this account by name.
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}
