// Package ledger keeps accounts, transactions and fixed-cost templates
// mutually consistent. It owns the in-memory collections for the session;
// every mutation re-establishes the balance invariant, re-sorts the
// transactions, and persists through the gateway before it is committed.
package ledger

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/kakeibo-dev/kakeibo/internal/id"
	"github.com/kakeibo-dev/kakeibo/internal/model"
	"github.com/kakeibo-dev/kakeibo/internal/store"
)

// Service is the authoritative in-memory view of the ledger.
//
// Mutations are serialized by a single lock scoped to the full
// mutate-sort-persist sequence; reads may run concurrently with each
// other but never see a half-applied mutation. Each mutation works on
// copies and commits them only after the gateway save succeeds, so a
// persistence failure leaves the service at the last durable state.
type Service struct {
	mu sync.RWMutex
	gw store.Gateway

	accounts []model.Account
	txs      []model.Transaction
	fixed    []model.FixedCost
}

// Load reads the three collections through the gateway, backfills legacy
// records, sorts transactions, and writes the collections back immediately
// if normalization assigned any ids or defaults.
func Load(gw store.Gateway) (*Service, error) {
	return load(gw, time.Now)
}

func load(gw store.Gateway, now func() time.Time) (*Service, error) {
	accounts, err := gw.LoadAccounts()
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	txs, err := gw.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	fixed, err := gw.LoadFixedCosts()
	if err != nil {
		return nil, fmt.Errorf("loading fixed costs: %w", err)
	}

	s := &Service{gw: gw, accounts: accounts, txs: txs, fixed: fixed}

	changed := normalize(s.accounts, s.txs, s.fixed, now().Format(dateLayout))
	sortTransactions(s.txs)

	if changed {
		if err := gw.SaveAccounts(s.accounts); err != nil {
			return nil, fmt.Errorf("persisting normalized accounts: %w", err)
		}
		if err := gw.SaveTransactions(s.txs); err != nil {
			return nil, fmt.Errorf("persisting normalized transactions: %w", err)
		}
		if err := gw.SaveFixedCosts(s.fixed); err != nil {
			return nil, fmt.Errorf("persisting normalized fixed costs: %w", err)
		}
	}

	return s, nil
}

// Accounts returns a copy of the account collection.
func (s *Service) Accounts() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.accounts)
}

// Transactions returns a copy of the transaction collection in ledger order.
func (s *Service) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.txs)
}

// FixedCosts returns a copy of the fixed-cost template collection.
func (s *Service) FixedCosts() []model.FixedCost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.fixed)
}

// AddAccount creates an account with a fresh id and the given opening
// balance. The name is stored trimmed and must not trim to empty. Name
// uniqueness is NOT enforced (matching the legacy data sets); all name
// lookups are first-match.
func (s *Service) AddAccount(name string, openingBalance int64) (model.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Account{}, validationErr("account name", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := model.Account{
		ID:      id.New(id.KindAccount),
		Name:    name,
		Balance: openingBalance,
	}

	accounts := append(slices.Clone(s.accounts), account)
	if err := s.gw.SaveAccounts(accounts); err != nil {
		return model.Account{}, fmt.Errorf("saving accounts: %w", err)
	}

	s.accounts = accounts
	return account, nil
}

// DeleteAccount removes the account with the given id. Deleting an absent
// id is a no-op, not an error. Transactions referencing the account by
// name are left untouched; they become orphaned references.
func (s *Service) DeleteAccount(accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.accounts, func(a model.Account) bool { return a.ID == accountID })
	if i < 0 {
		return nil
	}

	accounts := slices.Delete(slices.Clone(s.accounts), i, i+1)
	if err := s.gw.SaveAccounts(accounts); err != nil {
		return fmt.Errorf("saving accounts: %w", err)
	}

	s.accounts = accounts
	return nil
}

// FixedCostParams holds the fields for a new fixed-cost template.
type FixedCostParams struct {
	Name    string
	Account string
	Amount  int64
	Memo    string
	Day     int
}

// AddFixedCost creates a fixed-cost template with a fresh id. The name
// must not trim to empty, the day must be a valid day-of-month, and the
// referenced account must exist at call time.
func (s *Service) AddFixedCost(p FixedCostParams) (model.FixedCost, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return model.FixedCost{}, validationErr("fixed cost name", "must not be empty")
	}
	if p.Day < 1 || p.Day > 31 {
		return model.FixedCost{}, validationErr("day", fmt.Sprintf("must be 1-31, got %d", p.Day))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := strings.TrimSpace(p.Account)
	if _, ok := s.findAccount(account); !ok {
		return model.FixedCost{}, validationErr("account", fmt.Sprintf("no account named %q", account))
	}

	fc := model.FixedCost{
		ID:      id.New(id.KindFixedCost),
		Name:    name,
		Account: account,
		Amount:  p.Amount,
		Memo:    strings.TrimSpace(p.Memo),
		Day:     p.Day,
	}

	fixed := append(slices.Clone(s.fixed), fc)
	if err := s.gw.SaveFixedCosts(fixed); err != nil {
		return model.FixedCost{}, fmt.Errorf("saving fixed costs: %w", err)
	}

	s.fixed = fixed
	return fc, nil
}

// DeleteFixedCost removes the template with the given id; no-op if absent.
func (s *Service) DeleteFixedCost(fcID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.fixed, func(fc model.FixedCost) bool { return fc.ID == fcID })
	if i < 0 {
		return nil
	}

	fixed := slices.Delete(slices.Clone(s.fixed), i, i+1)
	if err := s.gw.SaveFixedCosts(fixed); err != nil {
		return fmt.Errorf("saving fixed costs: %w", err)
	}

	s.fixed = fixed
	return nil
}

// TransactionParams holds the fields for a manually entered transaction.
type TransactionParams struct {
	Date    string
	Account string
	Amount  int64
	Memo    string
}

// AddTransaction records a transaction and applies its amount to the first
// account whose name matches exactly. If no account matches, the
// transaction is still recorded and no balance changes: a transaction may
// legitimately reference a since-deleted account. This asymmetry with
// fixed-cost generation (which refuses missing accounts) is intentional.
func (s *Service) AddTransaction(p TransactionParams) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := model.Transaction{
		ID:      id.New(id.KindTransaction),
		Date:    p.Date,
		Account: p.Account,
		Amount:  p.Amount,
		Memo:    strings.TrimSpace(p.Memo),
	}

	accounts := slices.Clone(s.accounts)
	for i := range accounts {
		if accounts[i].Name == p.Account {
			accounts[i].Balance += p.Amount
			break
		}
	}

	txs := append(slices.Clone(s.txs), tx)
	sortTransactions(txs)

	if err := s.gw.SaveAccounts(accounts); err != nil {
		return model.Transaction{}, fmt.Errorf("saving accounts: %w", err)
	}
	if err := s.gw.SaveTransactions(txs); err != nil {
		return model.Transaction{}, fmt.Errorf("saving transactions: %w", err)
	}

	s.accounts = accounts
	s.txs = txs
	return tx, nil
}

// DeleteTransaction removes the transaction with the given id and reverses
// its balance contribution on the first account whose name matches its
// account field. If no account matches (orphaned reference), the
// transaction is removed without touching any balance. Deleting an absent
// id is a no-op.
func (s *Service) DeleteTransaction(txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.txs, func(t model.Transaction) bool { return t.ID == txID })
	if i < 0 {
		return nil
	}
	tx := s.txs[i]

	accounts := slices.Clone(s.accounts)
	for j := range accounts {
		if accounts[j].Name == tx.Account {
			accounts[j].Balance -= tx.Amount
			break
		}
	}

	txs := slices.Delete(slices.Clone(s.txs), i, i+1)
	sortTransactions(txs)

	if err := s.gw.SaveAccounts(accounts); err != nil {
		return fmt.Errorf("saving accounts: %w", err)
	}
	if err := s.gw.SaveTransactions(txs); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}

	s.accounts = accounts
	s.txs = txs
	return nil
}

// findAccount returns the index of the first account whose trimmed name
// matches name, which must already be trimmed.
func (s *Service) findAccount(name string) (int, bool) {
	for i := range s.accounts {
		if strings.TrimSpace(s.accounts[i].Name) == name {
			return i, true
		}
	}
	return -1, false
}
