package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

func TestNormalize_BackfillsDefaults(t *testing.T) {
	accounts := []model.Account{{Balance: 500}}
	txs := []model.Transaction{{Account: "SMBC", Amount: -100}}
	fcs := []model.FixedCost{{Name: "rent", Account: "SMBC", Amount: -80000}}

	changed := normalize(accounts, txs, fcs, "2024-05-15")
	assert.True(t, changed)

	assert.True(t, strings.HasPrefix(accounts[0].ID, "acc_"))
	assert.Equal(t, "unnamed", accounts[0].Name)
	assert.Equal(t, int64(500), accounts[0].Balance, "existing values untouched")

	assert.True(t, strings.HasPrefix(txs[0].ID, "tx_"))
	assert.Equal(t, "2024-05-15", txs[0].Date)

	assert.True(t, strings.HasPrefix(fcs[0].ID, "fc_"))
	assert.Equal(t, 1, fcs[0].Day)
}

func TestNormalize_CompleteRecordsUnchanged(t *testing.T) {
	accounts := []model.Account{{ID: "acc_1", Name: "SMBC", Balance: 500}}
	txs := []model.Transaction{{ID: "tx_1", Date: "2024-05-01", Account: "SMBC", Amount: -100}}
	fcs := []model.FixedCost{{ID: "fc_1", Name: "rent", Account: "SMBC", Amount: -80000, Day: 27}}

	changed := normalize(accounts, txs, fcs, "2024-05-15")

	assert.False(t, changed, "nothing defaulted, nothing to persist")
	assert.Equal(t, "acc_1", accounts[0].ID)
	assert.Equal(t, "tx_1", txs[0].ID)
	assert.Equal(t, "fc_1", fcs[0].ID)
}

func TestNormalize_Empty(t *testing.T) {
	assert.False(t, normalize(nil, nil, nil, "2024-05-15"))
}
