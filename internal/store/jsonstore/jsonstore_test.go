package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

func TestRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	accounts := []model.Account{{ID: "acc_1", Name: "SMBC", Balance: 50000}}
	txs := []model.Transaction{{ID: "tx_1", Date: "2024-05-01", Account: "SMBC", Amount: -3000, Memo: "食費"}}
	fcs := []model.FixedCost{{ID: "fc_1", Name: "家賃", Account: "SMBC", Amount: -80000, Memo: "", Day: 27}}

	require.NoError(t, s.SaveAccounts(accounts))
	require.NoError(t, s.SaveTransactions(txs))
	require.NoError(t, s.SaveFixedCosts(fcs))

	gotAccounts, err := s.LoadAccounts()
	require.NoError(t, err)
	assert.Equal(t, accounts, gotAccounts)

	gotTxs, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Equal(t, txs, gotTxs)

	gotFcs, err := s.LoadFixedCosts()
	require.NoError(t, err)
	assert.Equal(t, fcs, gotFcs)
}

func TestLoad_MissingFiles(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nonexistent"))

	accounts, err := s.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	txs, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, txs)

	fcs, err := s.LoadFixedCosts()
	require.NoError(t, err)
	assert.Empty(t, fcs)
}

func TestLoad_CorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, AccountsFile), []byte("{{{not json"), 0o644))

	s := New(dir)
	accounts, err := s.LoadAccounts()
	require.NoError(t, err, "corrupt stored data must not fail the load")
	assert.Empty(t, accounts)
}

func TestSave_EmptyCollectionWritesArray(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.SaveTransactions(nil))

	data, err := os.ReadFile(filepath.Join(dir, TransactionsFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data[:2]), "empty collection is an empty array, not null")
}

func TestSave_KeepsUTF8Readable(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.SaveTransactions([]model.Transaction{
		{ID: "tx_1", Date: "2024-05-27", Account: "SMBC", Amount: -80000, Memo: "固定費:家賃"},
	}))

	data, err := os.ReadFile(filepath.Join(dir, TransactionsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "固定費:家賃", "Japanese memos are stored unescaped")
}
