package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rituraj-gharat/trackmycash/internal/ledger"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

func TestSession_ReplaceCopiesInput(t *testing.T) {
	s := ledger.NewSession()

	fetched := []*transaction.Transaction{
		entry("Coffee", -500, time.Now()),
	}
	s.Replace(fetched)

	fetched[0] = entry("Mutated", 1, time.Now())

	got := s.Transactions()
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee", got[0].Title)
}

func TestSession_StageCreateCommit(t *testing.T) {
	s := ledger.NewSession()
	s.Replace([]*transaction.Transaction{entry("Coffee", -500, time.Now())})

	tx := entry("Salary", 200000, time.Now())
	pending := s.StageCreate(tx)

	// Visible immediately, before the store confirms.
	assert.Len(t, s.Transactions(), 2)

	pending.Commit()
	assert.Len(t, s.Transactions(), 2)
}

func TestSession_StageCreateRevert(t *testing.T) {
	s := ledger.NewSession()
	s.Replace([]*transaction.Transaction{entry("Coffee", -500, time.Now())})

	pending := s.StageCreate(entry("Salary", 200000, time.Now()))
	pending.Revert()

	got := s.Transactions()
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee", got[0].Title)
}

func TestSession_StageDeleteRevert(t *testing.T) {
	a := entry("Coffee", -500, time.Now())
	b := entry("Salary", 200000, time.Now())

	s := ledger.NewSession()
	s.Replace([]*transaction.Transaction{a, b})

	pending := s.StageDelete(a.ID)
	require.Len(t, s.Transactions(), 1)

	// The store rejected the delete: the entry comes back.
	pending.Revert()

	got := s.Transactions()
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestSession_StageDeleteUnknownIDKeepsList(t *testing.T) {
	a := entry("Coffee", -500, time.Now())

	s := ledger.NewSession()
	s.Replace([]*transaction.Transaction{a})

	pending := s.StageDelete(entry("Other", 1, time.Now()).ID)
	pending.Commit()

	assert.Len(t, s.Transactions(), 1)
}

func TestSession_PendingIsSingleShot(t *testing.T) {
	s := ledger.NewSession()
	s.Replace([]*transaction.Transaction{entry("Coffee", -500, time.Now())})

	pending := s.StageCreate(entry("Salary", 200000, time.Now()))
	pending.Commit()

	// A late revert after commit must not roll back confirmed state.
	pending.Revert()

	assert.Len(t, s.Transactions(), 2)
}
