// Package store defines the persistence gateway the ledger engine talks to.
package store

import (
	"github.com/kakeibo-dev/kakeibo/internal/model"
)

// Gateway loads and saves the three persisted collections.
//
// Loads must be forgiving: a missing or unreadable document yields the
// empty collection, never an error. Saves replace the stored collection
// wholesale and propagate I/O failures to the caller.
type Gateway interface {
	LoadAccounts() ([]model.Account, error)
	LoadTransactions() ([]model.Transaction, error)
	LoadFixedCosts() ([]model.FixedCost, error)

	SaveAccounts([]model.Account) error
	SaveTransactions([]model.Transaction) error
	SaveFixedCosts([]model.FixedCost) error
}
