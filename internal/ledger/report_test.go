package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

func TestPeriodAggregation(t *testing.T) {
	txs := []model.Transaction{
		{ID: "tx_1", Date: "2024-05-03", Amount: 1000},
		{ID: "tx_2", Date: "2024-05-10", Amount: -300},
		{ID: "tx_3", Date: "2024-04-20", Amount: 5000},
	}

	assert.Equal(t, int64(1000), PeriodIncome(txs, "2024-05"))
	assert.Equal(t, int64(300), PeriodExpense(txs, "2024-05"), "expense is reported non-negative")
	assert.Equal(t, int64(5000), PeriodIncome(txs, "2024-04"))
	assert.Equal(t, int64(0), PeriodExpense(txs, "2024-04"))
}

func TestTotalBalance(t *testing.T) {
	accounts := []model.Account{
		{ID: "acc_1", Name: "SMBC", Balance: 120000},
		{ID: "acc_2", Name: "SBI", Balance: -4500},
	}
	assert.Equal(t, int64(115500), TotalBalance(accounts))
	assert.Equal(t, int64(0), TotalBalance(nil))
}

func TestServiceSummary(t *testing.T) {
	svc := newTestService(t, &memGateway{})
	_, err := svc.AddAccount("SMBC", 10000)
	require.NoError(t, err)
	_, err = svc.AddTransaction(TransactionParams{Date: "2024-05-03", Account: "SMBC", Amount: 1000})
	require.NoError(t, err)
	_, err = svc.AddTransaction(TransactionParams{Date: "2024-05-10", Account: "SMBC", Amount: -300})
	require.NoError(t, err)
	_, err = svc.AddTransaction(TransactionParams{Date: "2024-04-20", Account: "SMBC", Amount: 5000})
	require.NoError(t, err)

	got := svc.Summary("2024-05")
	assert.Equal(t, Summary{TotalBalance: 15700, Income: 1000, Expense: 300}, got)
}
