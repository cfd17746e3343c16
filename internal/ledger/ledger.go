// Package ledger computes the view of a transaction list: which entries are
// visible under the current time-window filter, the balance over them, and
// the set of past months available to pick from. Everything here is a pure
// function of its inputs; callers own the transaction list and pass the
// evaluation time explicitly.
package ledger

import (
	"sort"
	"time"

	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

// Period identifies a calendar month in the local calendar of the
// transaction timestamps.
type Period struct {
	Month time.Month
	Year  int
}

// Snapshot is the derived, read-only result of applying a selection to a
// transaction list. It is recomputed on demand and never mutated in place.
type Snapshot struct {
	Visible []*transaction.Transaction
	Balance int64
	Periods []Period
}

// AvailablePeriods returns the distinct (month, year) pairs present in the
// list, most recent period first.
func AvailablePeriods(txs []*transaction.Transaction) []Period {
	seen := make(map[Period]struct{}, len(txs))

	var periods []Period

	for _, tx := range txs {
		y, m, _ := tx.Timestamp.Date()

		p := Period{Month: m, Year: y}
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		periods = append(periods, p)
	}

	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}

		return periods[i].Month > periods[j].Month
	})

	return periods
}

// Visible returns the entries matching the selection, preserving their
// relative order. The input is never mutated; FilterAll returns the input
// slice unchanged. "Today" and "This Month" are judged against now, so two
// calls on different days may disagree for the same input.
func Visible(txs []*transaction.Transaction, sel Selection, now time.Time) []*transaction.Transaction {
	switch sel.Filter() {
	case FilterAll:
		return txs

	case FilterToday:
		return keep(txs, func(t time.Time) bool {
			return sameDay(t, now)
		})

	case FilterThisMonth:
		return keep(txs, func(t time.Time) bool {
			return sameMonth(t, now)
		})

	case FilterPastMonth:
		p, ok := sel.Period()
		if !ok {
			// No month picked yet. An empty view is the deliberate
			// "nothing selected" state, not an error.
			return []*transaction.Transaction{}
		}

		return keep(txs, func(t time.Time) bool {
			y, m, _ := t.Date()
			return y == p.Year && m == p.Month
		})
	}

	return txs
}

// Balance sums the amounts of the given entries in cents. The empty list
// sums to zero. Rounding to two decimal places happens only when an amount
// is formatted for display, never inside the sum.
func Balance(txs []*transaction.Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		sum += tx.Amount
	}

	return sum
}

// Apply composes the visible subset, its balance, and the available periods
// into a single snapshot. Identical inputs yield identical snapshots.
func Apply(txs []*transaction.Transaction, sel Selection, now time.Time) Snapshot {
	visible := Visible(txs, sel, now)

	return Snapshot{
		Visible: visible,
		Balance: Balance(visible),
		Periods: AvailablePeriods(txs),
	}
}

func keep(txs []*transaction.Transaction, match func(time.Time) bool) []*transaction.Transaction {
	out := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if match(tx.Timestamp) {
			out = append(out, tx)
		}
	}

	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()

	return ay == by && am == bm
}
