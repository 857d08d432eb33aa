package ledger

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kakeibo-dev/kakeibo/internal/id"
	"github.com/kakeibo-dev/kakeibo/internal/model"
)

// memoPrefix marks transactions generated from a fixed-cost template.
// It is part of the duplicate-detection contract over existing data sets,
// so it must not change.
const memoPrefix = "固定費:"

// ApplyResult counts the outcome of one fixed-cost batch run, one
// classification per template.
type ApplyResult struct {
	Added            int // transaction generated and balance applied
	SkippedFuture    int // template day not reached yet this month
	SkippedDup       int // matching transaction already exists this month
	SkippedNoAccount int // template references an account that no longer exists
}

// ApplyFixedCosts expands every due template into a transaction for
// today's month, exactly once each. today is the only time input; it is
// injected rather than read from the clock so runs are reproducible.
//
// The duplicate test is value equality over (date, trimmed account,
// amount, composed memo) against the live collection, including
// transactions generated earlier in the same run. It is never an id
// comparison. Running the batch twice for the same date therefore adds
// nothing the second time.
func (s *Service) ApplyFixedCosts(today time.Time) (ApplyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	monthPrefix := today.Format("2006-01")

	accounts := slices.Clone(s.accounts)
	txs := slices.Clone(s.txs)

	var res ApplyResult
	for _, fc := range s.fixed {
		if today.Day() < fc.Day {
			res.SkippedFuture++
			continue
		}

		targetDate := fmt.Sprintf("%s-%02d", monthPrefix, fc.Day)
		account := strings.TrimSpace(fc.Account)
		memo := composeMemo(fc.Name, fc.Memo)

		if hasDuplicate(txs, targetDate, account, fc.Amount, memo) {
			res.SkippedDup++
			continue
		}

		i := indexAccount(accounts, account)
		if i < 0 {
			res.SkippedNoAccount++
			continue
		}

		accounts[i].Balance += fc.Amount
		txs = append(txs, model.Transaction{
			ID:      id.New(id.KindTransaction),
			Date:    targetDate,
			Account: account,
			Amount:  fc.Amount,
			Memo:    memo,
		})
		res.Added++
	}

	sortTransactions(txs)

	if err := s.gw.SaveTransactions(txs); err != nil {
		return ApplyResult{}, fmt.Errorf("saving transactions: %w", err)
	}
	if err := s.gw.SaveAccounts(accounts); err != nil {
		return ApplyResult{}, fmt.Errorf("saving accounts: %w", err)
	}

	s.accounts = accounts
	s.txs = txs
	return res, nil
}

// composeMemo builds the generated transaction memo: "固定費:<name>",
// plus " / <memo>" when the template carries a memo of its own.
func composeMemo(name, memo string) string {
	out := memoPrefix + strings.TrimSpace(name)
	if m := strings.TrimSpace(memo); m != "" {
		out += " / " + m
	}
	return out
}

func hasDuplicate(txs []model.Transaction, date, account string, amount int64, memo string) bool {
	for _, t := range txs {
		if t.Date == date &&
			strings.TrimSpace(t.Account) == account &&
			t.Amount == amount &&
			strings.TrimSpace(t.Memo) == memo {
			return true
		}
	}
	return false
}

func indexAccount(accounts []model.Account, name string) int {
	for i := range accounts {
		if strings.TrimSpace(accounts[i].Name) == name {
			return i
		}
	}
	return -1
}
