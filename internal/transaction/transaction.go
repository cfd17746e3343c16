package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a single titled ledger entry. A negative amount is
// an expense, a non-negative amount is income or a credit.
type Transaction struct {
	ID        uuid.UUID
	OwnerID   string
	Title     string
	Amount    int64 // Amount in cents
	Timestamp time.Time
	CreatedAt time.Time
	DeletedAt *time.Time
}
