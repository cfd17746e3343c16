package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rituraj-gharat/trackmycash/internal/auth"
	"github.com/rituraj-gharat/trackmycash/internal/ledger"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.snapshot)
}

type transactionResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Timestamp int64     `json:"timestamp"`
}

type periodResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type snapshotResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Balance      string                `json:"balance"`
	TotalBalance string                `json:"total_balance"`
	Periods      []periodResponse      `json:"periods"`
}

// snapshot fetches the caller's full transaction list and applies the
// requested time-window view to it. Filtering happens here, in memory: the
// store always returns the whole list.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromRequest(r)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	sel, err := selectionFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.svc.List(r.Context(), transaction.ListFilter{OwnerID: &identity.UserID})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	snap := ledger.Apply(txs, sel, time.Now())

	resp := snapshotResponse{
		Transactions: make([]transactionResponse, 0, len(snap.Visible)),
		Balance:      formatAmount(snap.Balance),
		TotalBalance: formatAmount(ledger.Balance(txs)),
		Periods:      make([]periodResponse, 0, len(snap.Periods)),
	}

	for _, tx := range snap.Visible {
		resp.Transactions = append(resp.Transactions, transactionResponse{
			ID:        tx.ID,
			Title:     tx.Title,
			Amount:    formatAmount(tx.Amount),
			Timestamp: tx.Timestamp.UnixMilli(),
		})
	}

	for _, p := range snap.Periods {
		resp.Periods = append(resp.Periods, periodResponse{Month: int(p.Month), Year: p.Year})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func selectionFromQuery(r *http.Request) (ledger.Selection, error) {
	sel := ledger.NewSelection()

	switch view := r.URL.Query().Get("view"); view {
	case "", "all":
		return sel, nil
	case "today":
		return sel.Select(ledger.FilterToday), nil
	case "month":
		return sel.Select(ledger.FilterThisMonth), nil
	case "past":
		sel = sel.Select(ledger.FilterPastMonth)
	default:
		return sel, fmt.Errorf("unknown view %q", view)
	}

	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	// Neither supplied: the deliberate "no month picked yet" state.
	if monthStr == "" && yearStr == "" {
		return sel, nil
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return sel, fmt.Errorf("invalid month %q", monthStr)
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return sel, fmt.Errorf("invalid year %q", yearStr)
	}

	return sel.Choose(ledger.Period{Month: time.Month(month), Year: year}), nil
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
