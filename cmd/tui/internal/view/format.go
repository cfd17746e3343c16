package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dbTimeout = 5 * time.Second

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// FormatAmount formats an amount stored as cents into a human-readable string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

// ColorAmount formats an amount and colors it green for income, red for expense.
func ColorAmount(cents int64) string {
	if cents < 0 {
		return expenseStyle.Render(FormatAmount(cents))
	}

	return incomeStyle.Render("+" + FormatAmount(cents))
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatPeriod renders a period like "March 2024".
func FormatPeriod(month time.Month, year int) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
