package model

// FixedCost is a template for a recurring monthly charge or credit.
// It holds no balance state itself; the applicator expands it into a
// concrete Transaction once per month, on or after Day.
type FixedCost struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Account string `json:"account"` // account name reference, same caveats as Transaction.Account
	Amount  int64  `json:"amount"`
	Memo    string `json:"memo"`
	Day     int    `json:"day"` // day-of-month (1-31) on which the charge becomes due
}
