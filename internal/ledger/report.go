package ledger

import (
	"strings"

	"github.com/kakeibo-dev/kakeibo/internal/model"
)

// TotalBalance sums all account balances.
func TotalBalance(accounts []model.Account) int64 {
	var total int64
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}

// PeriodIncome sums positive transaction amounts whose date starts with
// periodPrefix (a "2006-01" year-month string).
func PeriodIncome(txs []model.Transaction, periodPrefix string) int64 {
	var total int64
	for _, t := range txs {
		if t.Amount > 0 && strings.HasPrefix(t.Date, periodPrefix) {
			total += t.Amount
		}
	}
	return total
}

// PeriodExpense sums negative transaction amounts whose date starts with
// periodPrefix, negated so the result is non-negative.
func PeriodExpense(txs []model.Transaction, periodPrefix string) int64 {
	var total int64
	for _, t := range txs {
		if t.Amount < 0 && strings.HasPrefix(t.Date, periodPrefix) {
			total += t.Amount
		}
	}
	return -total
}

// Summary is the monthly dashboard: total balance across all accounts and
// income/expense for one period.
type Summary struct {
	TotalBalance int64
	Income       int64
	Expense      int64
}

// Summary computes the dashboard figures for one period prefix. Pure read;
// no mutation, no persistence.
func (s *Service) Summary(periodPrefix string) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summary{
		TotalBalance: TotalBalance(s.accounts),
		Income:       PeriodIncome(s.txs, periodPrefix),
		Expense:      PeriodExpense(s.txs, periodPrefix),
	}
}
