package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kakeibo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)

	accounts := []model.Account{
		{ID: "acc_1", Name: "SMBC", Balance: 50000},
		{ID: "acc_2", Name: "現金", Balance: -200},
	}
	txs := []model.Transaction{
		{ID: "tx_1", Date: "2024-05-01", Account: "SMBC", Amount: -3000, Memo: "食費"},
		{ID: "tx_2", Date: "not-a-date", Account: "現金", Amount: 100, Memo: ""},
	}
	fcs := []model.FixedCost{
		{ID: "fc_1", Name: "家賃", Account: "SMBC", Amount: -80000, Memo: "", Day: 27},
	}

	require.NoError(t, s.SaveAccounts(accounts))
	require.NoError(t, s.SaveTransactions(txs))
	require.NoError(t, s.SaveFixedCosts(fcs))

	gotAccounts, err := s.LoadAccounts()
	require.NoError(t, err)
	assert.Equal(t, accounts, gotAccounts, "saved order is preserved")

	gotTxs, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Equal(t, txs, gotTxs)

	gotFcs, err := s.LoadFixedCosts()
	require.NoError(t, err)
	assert.Equal(t, fcs, gotFcs)
}

func TestLoad_EmptyDatabase(t *testing.T) {
	s := openTestStore(t)

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

func TestSave_ReplacesCollection(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveAccounts([]model.Account{
		{ID: "acc_1", Name: "SMBC", Balance: 100},
		{ID: "acc_2", Name: "SBI", Balance: 200},
	}))
	require.NoError(t, s.SaveAccounts([]model.Account{
		{ID: "acc_2", Name: "SBI", Balance: 250},
	}))

	accounts, err := s.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1, "save replaces the collection wholesale")
	assert.Equal(t, int64(250), accounts[0].Balance)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kakeibo.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveAccounts([]model.Account{{ID: "acc_1", Name: "SMBC", Balance: 1}}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	accounts, err := s.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1, "data survives reopen")
}
