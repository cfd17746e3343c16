package ledger

import (
	"github.com/google/uuid"

	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

// Session owns the in-memory transaction list for one UI session. Mutations
// are two-phase: StageCreate/StageDelete apply the change immediately so the
// view updates without waiting for the store, and the returned Pending is
// committed once the store confirms or reverted if the call failed. The
// session has a single writer (the component driving the page) and hands out
// copies, never its internal slice.
type Session struct {
	txs  []*transaction.Transaction
	last []*transaction.Transaction
}

func NewSession() *Session {
	return &Session{}
}

// Transactions returns a copy of the current list.
func (s *Session) Transactions() []*transaction.Transaction {
	out := make([]*transaction.Transaction, len(s.txs))
	copy(out, s.txs)

	return out
}

// Replace installs the result of a completed fetch as the new known-good
// list, discarding any staged change.
func (s *Session) Replace(txs []*transaction.Transaction) {
	s.txs = make([]*transaction.Transaction, len(txs))
	copy(s.txs, txs)
	s.last = nil
}

// Pending is a staged mutation awaiting the store's verdict.
type Pending struct {
	session *Session
	done    bool
}

// StageCreate appends the transaction to the local list ahead of store
// confirmation.
func (s *Session) StageCreate(tx *transaction.Transaction) *Pending {
	s.snapshot()
	s.txs = append(s.txs, tx)

	return &Pending{session: s}
}

// StageDelete removes the transaction with the given id from the local list
// ahead of store confirmation. Staging an id that is not present is harmless.
func (s *Session) StageDelete(id uuid.UUID) *Pending {
	s.snapshot()

	kept := make([]*transaction.Transaction, 0, len(s.txs))

	for _, tx := range s.txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}

	s.txs = kept

	return &Pending{session: s}
}

// Commit keeps the staged change. The store confirmed it.
func (p *Pending) Commit() {
	if p.done {
		return
	}

	p.done = true
	p.session.last = nil
}

// Revert restores the list as it was before the staged change. The store
// call failed, so the optimistic update is rolled back instead of letting
// the view drift from the store.
func (p *Pending) Revert() {
	if p.done {
		return
	}

	p.done = true

	// A Replace since staging already installed a fresh list; there is
	// nothing to roll back then.
	if p.session.last != nil {
		p.session.txs = p.session.last
		p.session.last = nil
	}
}

func (s *Session) snapshot() {
	s.last = make([]*transaction.Transaction, len(s.txs))
	copy(s.last, s.txs)
}
