// Package jsonstore persists the ledger collections as three JSON
// documents in a data directory, matching the legacy file layout.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

// Document file names inside the data directory.
const (
	AccountsFile     = "accounts.json"
	TransactionsFile = "transactions.json"
	FixedCostsFile   = "fixed_costs.json"
)

// Store is a store.Gateway backed by JSON files.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// LoadAccounts reads accounts.json.
func (s *Store) LoadAccounts() ([]model.Account, error) {
	var accounts []model.Account
	s.load(AccountsFile, &accounts)
	return accounts, nil
}

// LoadTransactions reads transactions.json.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	var txs []model.Transaction
	s.load(TransactionsFile, &txs)
	return txs, nil
}

// LoadFixedCosts reads fixed_costs.json.
func (s *Store) LoadFixedCosts() ([]model.FixedCost, error) {
	var fcs []model.FixedCost
	s.load(FixedCostsFile, &fcs)
	return fcs, nil
}

// SaveAccounts writes accounts.json.
func (s *Store) SaveAccounts(accounts []model.Account) error {
	if accounts == nil {
		accounts = []model.Account{}
	}
	return s.save(AccountsFile, accounts)
}

// SaveTransactions writes transactions.json.
func (s *Store) SaveTransactions(txs []model.Transaction) error {
	if txs == nil {
		txs = []model.Transaction{}
	}
	return s.save(TransactionsFile, txs)
}

// SaveFixedCosts writes fixed_costs.json.
func (s *Store) SaveFixedCosts(fcs []model.FixedCost) error {
	if fcs == nil {
		fcs = []model.FixedCost{}
	}
	return s.save(FixedCostsFile, fcs)
}

// load fills v from a document. A missing or corrupt document leaves v at
// its zero value: stored data must never prevent the app from starting.
func (s *Store) load(name string, v any) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, v)
}

// save writes v as indented UTF-8 JSON. Memo and account names carry
// Japanese text, so HTML escaping is turned off to keep the files readable.
func (s *Store) save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
