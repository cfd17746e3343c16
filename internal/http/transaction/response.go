package transaction

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

type transactionResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Timestamp int64     `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// formatAmount renders cents with two decimal places. Rounding happens here,
// at the presentation boundary, never in the stored values or sums.
func formatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		Title:     tx.Title,
		Amount:    formatAmount(tx.Amount),
		Timestamp: tx.Timestamp.UnixMilli(),
		CreatedAt: tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
