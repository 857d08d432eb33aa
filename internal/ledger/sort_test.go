package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

func tx(id, date string) model.Transaction {
	return model.Transaction{ID: id, Date: date}
}

func TestSortTransactions_DateAscending(t *testing.T) {
	txs := []model.Transaction{
		tx("tx_c", "2024-05-10"),
		tx("tx_a", "2024-04-20"),
		tx("tx_b", "2024-05-03"),
	}
	sortTransactions(txs)

	assert.Equal(t, []string{"tx_a", "tx_b", "tx_c"}, ids(txs))
}

func TestSortTransactions_MalformedDatesLast(t *testing.T) {
	txs := []model.Transaction{
		tx("tx_b", "not-a-date"),
		tx("tx_d", "2024-12-01"),
		tx("tx_a", ""),
		tx("tx_c", "2024-01-01"),
	}
	sortTransactions(txs)

	assert.Equal(t, []string{"tx_c", "tx_d", "tx_a", "tx_b"}, ids(txs),
		"malformed dates sort after all parseable dates, then by id")
}

func TestSortTransactions_IDTieBreak(t *testing.T) {
	txs := []model.Transaction{
		tx("tx_z", "2024-05-01"),
		tx("tx_a", "2024-05-01"),
		tx("tx_m", "2024-05-01"),
	}
	sortTransactions(txs)

	assert.Equal(t, []string{"tx_a", "tx_m", "tx_z"}, ids(txs),
		"same-date transactions order by lexical id, not creation order")
}

func TestSortTransactions_Stable(t *testing.T) {
	txs := []model.Transaction{
		tx("tx_b", "2024-05-03"),
		tx("tx_a", "2024-04-20"),
		tx("tx_c", "junk"),
		tx("tx_d", "2024-05-03"),
	}
	sortTransactions(txs)
	once := ids(txs)

	sortTransactions(txs)
	assert.Equal(t, once, ids(txs), "sorting an already-sorted collection is a no-op")
}

func ids(txs []model.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}
