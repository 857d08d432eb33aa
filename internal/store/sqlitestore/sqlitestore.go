// Package sqlitestore persists the ledger collections in a single SQLite
// database, as an alternative to the JSON document layout.
package sqlitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

// schema creates the three collection tables. pos preserves stored order so
// a load returns records exactly as they were saved.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    pos     INTEGER PRIMARY KEY,
    id      TEXT NOT NULL,
    name    TEXT NOT NULL,
    balance INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    pos     INTEGER PRIMARY KEY,
    id      TEXT NOT NULL,
    date    TEXT NOT NULL,
    account TEXT NOT NULL,
    amount  INTEGER NOT NULL,
    memo    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS fixed_costs (
    pos     INTEGER PRIMARY KEY,
    id      TEXT NOT NULL,
    name    TEXT NOT NULL,
    account TEXT NOT NULL,
    amount  INTEGER NOT NULL,
    memo    TEXT NOT NULL,
    day     INTEGER NOT NULL
);
`

// Store is a store.Gateway backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite does not benefit from multiple connections.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadAccounts returns all stored accounts in saved order.
func (s *Store) LoadAccounts() ([]model.Account, error) {
	rows, err := s.db.Query(`SELECT id, name, balance FROM accounts ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Balance); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// LoadTransactions returns all stored transactions in saved order.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, date, account, amount, memo FROM transactions ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Account, &t.Amount, &t.Memo); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// LoadFixedCosts returns all stored fixed-cost templates in saved order.
func (s *Store) LoadFixedCosts() ([]model.FixedCost, error) {
	rows, err := s.db.Query(`SELECT id, name, account, amount, memo, day FROM fixed_costs ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("querying fixed costs: %w", err)
	}
	defer rows.Close()

	var fcs []model.FixedCost
	for rows.Next() {
		var fc model.FixedCost
		if err := rows.Scan(&fc.ID, &fc.Name, &fc.Account, &fc.Amount, &fc.Memo, &fc.Day); err != nil {
			return nil, fmt.Errorf("scanning fixed cost: %w", err)
		}
		fcs = append(fcs, fc)
	}
	return fcs, rows.Err()
}

// SaveAccounts replaces the stored accounts collection.
func (s *Store) SaveAccounts(accounts []model.Account) error {
	return s.replace("accounts", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO accounts (pos, id, name, balance) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, a := range accounts {
			if _, err := stmt.Exec(i, a.ID, a.Name, a.Balance); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveTransactions replaces the stored transactions collection.
func (s *Store) SaveTransactions(txs []model.Transaction) error {
	return s.replace("transactions", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO transactions (pos, id, date, account, amount, memo) VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, t := range txs {
			if _, err := stmt.Exec(i, t.ID, t.Date, t.Account, t.Amount, t.Memo); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveFixedCosts replaces the stored fixed-cost collection.
func (s *Store) SaveFixedCosts(fcs []model.FixedCost) error {
	return s.replace("fixed_costs", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO fixed_costs (pos, id, name, account, amount, memo, day) VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, fc := range fcs {
			if _, err := stmt.Exec(i, fc.ID, fc.Name, fc.Account, fc.Amount, fc.Memo, fc.Day); err != nil {
				return err
			}
		}
		return nil
	})
}

// replace runs delete-all + insert-all for one table inside a transaction,
// so a failed save leaves the previous collection intact.
func (s *Store) replace(table string, insert func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", table, err)
	}
	return nil
}
