package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rituraj-gharat/trackmycash/internal/ledger"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

func entry(title string, amount int64, ts time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:        uuid.New(),
		OwnerID:   "user-123",
		Title:     title,
		Amount:    amount,
		Timestamp: ts,
	}
}

var evalTime = time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)

func TestBalance(t *testing.T) {
	type testCase struct {
		name string
		txs  []*transaction.Transaction
		want int64
	}

	tests := []testCase{
		{
			name: "Empty",
			txs:  nil,
			want: 0,
		},
		{
			name: "IncomeAndExpense",
			txs: []*transaction.Transaction{
				entry("Coffee", -500, evalTime),
				entry("Salary", 200000, evalTime),
			},
			want: 199500,
		},
		{
			name: "AllExpenses",
			txs: []*transaction.Transaction{
				entry("Rent", -90000, evalTime),
				entry("Groceries", -4250, evalTime),
			},
			want: -94250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.Balance(tt.txs))
		})
	}
}

func TestBalance_OrderIndependent(t *testing.T) {
	a := entry("Coffee", -500, evalTime)
	b := entry("Salary", 200000, evalTime)
	c := entry("Rent", -90000, evalTime)

	forward := ledger.Balance([]*transaction.Transaction{a, b, c})
	reversed := ledger.Balance([]*transaction.Transaction{c, b, a})

	assert.Equal(t, forward, reversed)
}

func TestVisible_AllIsIdentity(t *testing.T) {
	txs := []*transaction.Transaction{
		entry("Coffee", -500, evalTime.AddDate(0, -2, 0)),
		entry("Salary", 200000, evalTime),
		entry("Rent", -90000, evalTime.AddDate(-1, 0, 0)),
	}

	got := ledger.Visible(txs, ledger.NewSelection(), evalTime)

	require.Len(t, got, len(txs))
	for i := range txs {
		assert.Same(t, txs[i], got[i])
	}
}

func TestVisible_Today(t *testing.T) {
	today := entry("Lunch", -1200, evalTime.Add(-3*time.Hour))
	txs := []*transaction.Transaction{
		entry("Yesterday", -500, evalTime.AddDate(0, 0, -1)),
		today,
		entry("Tomorrow", -500, evalTime.AddDate(0, 0, 1)),
		entry("SameDayLastMonth", -500, evalTime.AddDate(0, -1, 0)),
	}

	sel := ledger.NewSelection().Select(ledger.FilterToday)
	got := ledger.Visible(txs, sel, evalTime)

	require.Len(t, got, 1)
	assert.Same(t, today, got[0])
}

func TestVisible_TodayNoMatches(t *testing.T) {
	txs := []*transaction.Transaction{
		entry("Old", -500, evalTime.AddDate(0, 0, -3)),
		entry("Older", 1000, evalTime.AddDate(0, -6, 0)),
	}

	sel := ledger.NewSelection().Select(ledger.FilterToday)
	snap := ledger.Apply(txs, sel, evalTime)

	assert.Empty(t, snap.Visible)
	assert.Zero(t, snap.Balance)
}

func TestVisible_ThisMonth(t *testing.T) {
	inMonth := entry("Groceries", -4250, time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC))
	txs := []*transaction.Transaction{
		entry("April", -500, time.Date(2024, time.April, 30, 23, 59, 0, 0, time.UTC)),
		inMonth,
		entry("MayLastYear", -500, time.Date(2023, time.May, 15, 12, 0, 0, 0, time.UTC)),
	}

	sel := ledger.NewSelection().Select(ledger.FilterThisMonth)
	got := ledger.Visible(txs, sel, evalTime)

	require.Len(t, got, 1)
	assert.Same(t, inMonth, got[0])
}

func TestVisible_PastMonth(t *testing.T) {
	march1 := entry("March rent", -90000, time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))
	march2 := entry("March salary", 250000, time.Date(2024, time.March, 28, 17, 0, 0, 0, time.UTC))
	txs := []*transaction.Transaction{
		march1,
		entry("May", -500, evalTime),
		march2,
		entry("MarchLastYear", -500, time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)),
	}

	sel := ledger.NewSelection().
		Select(ledger.FilterPastMonth).
		Choose(ledger.Period{Month: time.March, Year: 2024})

	got := ledger.Visible(txs, sel, evalTime)

	require.Len(t, got, 2)
	assert.Same(t, march1, got[0])
	assert.Same(t, march2, got[1])
}

func TestVisible_PastMonthUnselectedIsEmpty(t *testing.T) {
	txs := []*transaction.Transaction{
		entry("March", -500, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	sel := ledger.NewSelection().Select(ledger.FilterPastMonth)
	got := ledger.Visible(txs, sel, evalTime)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAvailablePeriods(t *testing.T) {
	type testCase struct {
		name string
		txs  []*transaction.Transaction
		want []ledger.Period
	}

	tests := []testCase{
		{
			name: "Empty",
			txs:  nil,
			want: nil,
		},
		{
			name: "DeduplicatesAndSortsDescending",
			txs: []*transaction.Transaction{
				entry("a", 1, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
				entry("b", 1, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
				entry("c", 1, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)),
			},
			want: []ledger.Period{
				{Month: time.May, Year: 2024},
				{Month: time.March, Year: 2024},
			},
		},
		{
			name: "YearOrdersBeforeMonth",
			txs: []*transaction.Transaction{
				entry("a", 1, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)),
				entry("b", 1, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
			},
			want: []ledger.Period{
				{Month: time.January, Year: 2024},
				{Month: time.December, Year: 2023},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.AvailablePeriods(tt.txs))
		})
	}
}

func TestApply_ScenarioTotalBalance(t *testing.T) {
	txs := []*transaction.Transaction{
		entry("Coffee", -500, evalTime),
		entry("Salary", 200000, evalTime),
	}

	snap := ledger.Apply(txs, ledger.NewSelection(), evalTime)

	assert.Equal(t, int64(199500), snap.Balance)
	assert.Len(t, snap.Visible, 2)
}

func TestApply_Idempotent(t *testing.T) {
	txs := []*transaction.Transaction{
		entry("Coffee", -500, evalTime.AddDate(0, -1, 0)),
		entry("Salary", 200000, evalTime),
	}
	sel := ledger.NewSelection().Select(ledger.FilterThisMonth)

	first := ledger.Apply(txs, sel, evalTime)
	second := ledger.Apply(txs, sel, evalTime)

	assert.Equal(t, first, second)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	txs := []*transaction.Transaction{
		entry("Coffee", -500, evalTime.AddDate(0, -1, 0)),
		entry("Salary", 200000, evalTime),
	}
	before := make([]*transaction.Transaction, len(txs))
	copy(before, txs)

	sel := ledger.NewSelection().Select(ledger.FilterToday)
	_ = ledger.Apply(txs, sel, evalTime)

	require.Len(t, txs, 2)
	for i := range before {
		assert.Same(t, before[i], txs[i])
	}
}
