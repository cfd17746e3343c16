package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rituraj-gharat/trackmycash/internal/ledger"
)

func TestSelection_InitialStateIsAll(t *testing.T) {
	sel := ledger.NewSelection()

	assert.Equal(t, ledger.FilterAll, sel.Filter())

	_, ok := sel.Period()
	assert.False(t, ok)
}

func TestSelection_ChooseRequiresPastMonthView(t *testing.T) {
	sel := ledger.NewSelection().Choose(ledger.Period{Month: time.March, Year: 2024})

	assert.Equal(t, ledger.FilterAll, sel.Filter())

	_, ok := sel.Period()
	assert.False(t, ok)
}

func TestSelection_ChooseInPastMonthView(t *testing.T) {
	p := ledger.Period{Month: time.March, Year: 2024}

	sel := ledger.NewSelection().
		Select(ledger.FilterPastMonth).
		Choose(p)

	got, ok := sel.Period()
	assert.True(t, ok)
	assert.Equal(t, p, got)
}

func TestSelection_SwitchingAwayDropsChosenMonth(t *testing.T) {
	sel := ledger.NewSelection().
		Select(ledger.FilterPastMonth).
		Choose(ledger.Period{Month: time.March, Year: 2024}).
		Select(ledger.FilterToday).
		Select(ledger.FilterPastMonth)

	// Returning to the past-months view lands on the unselected state,
	// not the previously chosen month.
	assert.Equal(t, ledger.FilterPastMonth, sel.Filter())

	_, ok := sel.Period()
	assert.False(t, ok)
}

func TestFilter_String(t *testing.T) {
	assert.Equal(t, "All", ledger.FilterAll.String())
	assert.Equal(t, "Today", ledger.FilterToday.String())
	assert.Equal(t, "This Month", ledger.FilterThisMonth.String())
	assert.Equal(t, "Past Months", ledger.FilterPastMonth.String())
}
