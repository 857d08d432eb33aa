package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kakeibo-dev/kakeibo/internal/config"
	"github.com/kakeibo-dev/kakeibo/internal/gitops"
	"github.com/kakeibo-dev/kakeibo/internal/ledger"
	"github.com/kakeibo-dev/kakeibo/internal/money"
	"github.com/kakeibo-dev/kakeibo/internal/oplog"
	"github.com/kakeibo-dev/kakeibo/internal/store"
	"github.com/kakeibo-dev/kakeibo/internal/store/jsonstore"
	"github.com/kakeibo-dev/kakeibo/internal/store/sqlitestore"
)

// session is one command's view of a data directory: its config, the
// loaded ledger, and the gateway cleanup hook.
type session struct {
	dataDir string
	cfg     *config.Config
	svc     *ledger.Service
	closer  func() error
}

// openSession loads config and ledger for dataDir.
func openSession(dataDir string) (*session, error) {
	cfg, err := config.Load(filepath.Join(dataDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("no kakeibo data directory at %s (run 'kakeibo init' first): %w", dataDir, err)
	}
	cfg.ApplyEnv()

	gw, closer, err := openGateway(dataDir, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := ledger.Load(gw)
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	return &session{dataDir: dataDir, cfg: cfg, svc: svc, closer: closer}, nil
}

func openGateway(dataDir string, cfg *config.Config) (store.Gateway, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendJSON, "":
		return jsonstore.New(dataDir), nil, nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(filepath.Join(dataDir, cfg.Storage.Path))
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func (s *session) close() {
	if s.closer != nil {
		_ = s.closer()
	}
}

// record appends the mutation to the operation log and, when auto-commit
// is on, commits the data documents. Audit failures are reported but never
// undo an already-persisted mutation.
func (s *session) record(action, recordID, details string) error {
	hash := ""
	if s.cfg.Git.AutoCommit && gitops.IsRepo(s.dataDir) {
		h, err := gitops.CommitPaths(s.dataDir, action+": "+details,
			s.cfg.Git.AuthorName, s.cfg.Git.AuthorEmail, s.dataPaths())
		if err != nil {
			return fmt.Errorf("auto-commit: %w", err)
		}
		hash = h
	}

	entry := oplog.Entry{
		Timestamp:  time.Now(),
		Action:     action,
		RecordID:   recordID,
		Details:    details,
		CommitHash: hash,
	}
	if err := oplog.Append(s.dataDir, []oplog.Entry{entry}); err != nil {
		return fmt.Errorf("appending operation log: %w", err)
	}
	return nil
}

// dataPaths lists the documents the active backend persists, relative to
// the data directory.
func (s *session) dataPaths() []string {
	if s.cfg.Storage.Backend == config.BackendSQLite {
		return []string{s.cfg.Storage.Path}
	}
	return []string{jsonstore.AccountsFile, jsonstore.TransactionsFile, jsonstore.FixedCostsFile}
}

// amount formats minor units for display, e.g. "-80,000 JPY".
func (s *session) amount(minor int64) string {
	return money.Format(minor, s.cfg.Currency.Exponent) + " " + s.cfg.Currency.Code
}

// parseAmount converts a user-entered decimal string into minor units.
func (s *session) parseAmount(v string) (int64, error) {
	return money.ParseMinor(v, s.cfg.Currency.Exponent)
}

// today returns the current calendar date as an ISO string.
func today() string {
	return time.Now().Format("2006-01-02")
}
