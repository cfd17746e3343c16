package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rituraj-gharat/trackmycash/internal/ledger"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

type ledgerState int

const (
	ledgerStateBrowse ledgerState = iota
	ledgerStateAdd
	ledgerStatePickMonth
)

var filterOrder = []ledger.Filter{
	ledger.FilterAll,
	ledger.FilterToday,
	ledger.FilterThisMonth,
	ledger.FilterPastMonth,
}

// LedgerModel is the main screen: filter tabs, the visible transaction
// list, and the balance line. The transaction list lives in a ledger.Session
// so adds and deletes show up immediately and roll back if the store says no.
type LedgerModel struct {
	CommonModel
	txService *transaction.Service
	owner     string

	state   ledgerState
	session *ledger.Session
	sel     ledger.Selection
	table   table.Model
	visible []*transaction.Transaction

	periods      []ledger.Period
	periodCursor int

	form       *huh.Form
	formTitle  string
	formAmount string

	loading bool
	status  string
	err     error
}

func NewLedgerModel(txSvc *transaction.Service, owner string) LedgerModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 12},
		{Title: "Title", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return LedgerModel{
		txService: txSvc,
		owner:     owner,
		session:   ledger.NewSession(),
		sel:       ledger.NewSelection(),
		table:     t,
		loading:   true,
	}
}

func (m LedgerModel) Title() string { return "Ledger" }

func (m LedgerModel) ShortHelp() string {
	switch m.state {
	case ledgerStateAdd:
		return "Navigate form | Esc: cancel"
	case ledgerStatePickMonth:
		return "Up/Down: select month | Enter: apply | Esc: back"
	}

	return "Esc: back | tab: filter | a: add | x: delete | r: refresh"
}

func (m LedgerModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.session.Replace(msg.txs)
		m.refresh()

		return m, nil

	case addResultMsg:
		if msg.err != nil {
			msg.pending.Revert()
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			m.refresh()

			return m, nil
		}

		msg.pending.Commit()
		m.status = "Saved."

		// Reload so the staged entry picks up its store-assigned id.
		return m, m.loadCmd()

	case deleteResultMsg:
		if msg.err != nil {
			msg.pending.Revert()
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			msg.pending.Commit()
			m.status = "Deleted."
		}

		m.refresh()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	case ledgerStateAdd:
		return m.updateAdd(msg)
	case ledgerStatePickMonth:
		return m.updatePickMonth(msg)
	}

	return m, nil
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "tab":
			return m.cycleFilter()
		case "a":
			return m.startAdd()
		case "x", "delete":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LedgerModel) cycleFilter() (tea.Model, tea.Cmd) {
	next := filterOrder[0]

	for i, f := range filterOrder {
		if f == m.sel.Filter() {
			next = filterOrder[(i+1)%len(filterOrder)]
			break
		}
	}

	// Select drops any chosen past month, so returning to Past Months
	// always starts from the unselected state.
	m.sel = m.sel.Select(next)

	if next == ledger.FilterPastMonth {
		m.periods = ledger.AvailablePeriods(m.session.Transactions())
		m.periodCursor = 0

		if len(m.periods) > 0 {
			m.state = ledgerStatePickMonth
		}
	}

	m.refresh()

	return m, nil
}

func (m LedgerModel) updatePickMonth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up":
		if m.periodCursor > 0 {
			m.periodCursor--
		}
	case "down":
		if m.periodCursor < len(m.periods)-1 {
			m.periodCursor++
		}
	case "enter":
		m.sel = m.sel.Choose(m.periods[m.periodCursor])
		m.state = ledgerStateBrowse
		m.refresh()
	case "esc":
		m.state = ledgerStateBrowse
		m.refresh()
	}

	return m, nil
}

func (m LedgerModel) startAdd() (tea.Model, tea.Cmd) {
	m.formTitle = ""
	m.formAmount = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount (negative for expense)").
				Placeholder("-12.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("enter a number like -12.50")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = ledgerStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m LedgerModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ledgerStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	title := strings.TrimSpace(m.form.GetString("title"))
	amountStr := strings.TrimSpace(m.form.GetString("amount"))

	m.state = ledgerStateBrowse
	m.form = nil
	m.table.Focus()

	return m.submitAdd(title, amountStr)
}

func (m LedgerModel) submitAdd(title, amountStr string) (tea.Model, tea.Cmd) {
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	// Optimistic: the draft shows up right away and is rolled back if the
	// store rejects it.
	draft := &transaction.Transaction{
		OwnerID:   m.owner,
		Title:     title,
		Amount:    cents,
		Timestamp: time.Now(),
	}
	pending := m.session.StageCreate(draft)
	m.refresh()

	svc := m.txService
	owner := m.owner

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := svc.Create(ctx, transaction.CreateParams{
			OwnerID: owner,
			Title:   title,
			Amount:  cents,
		})

		return addResultMsg{pending: pending, err: err}
	}
}

func (m LedgerModel) deleteSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return m, nil
	}

	id := m.visible[idx].ID

	pending := m.session.StageDelete(id)
	m.refresh()

	svc := m.txService

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteResultMsg{pending: pending, err: svc.Delete(ctx, id)}
	}
}

// refresh recomputes the snapshot and rebuilds the table rows.
func (m *LedgerModel) refresh() {
	snap := ledger.Apply(m.session.Transactions(), m.sel, time.Now())
	m.visible = snap.Visible

	rows := make([]table.Row, 0, len(snap.Visible))
	for _, tx := range snap.Visible {
		rows = append(rows, table.Row{
			FormatDate(tx.Timestamp),
			FormatAmount(tx.Amount),
			tx.Title,
		})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m LedgerModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == ledgerStatePickMonth {
		return m.viewPickMonth()
	}

	all := m.session.Transactions()
	snap := ledger.Apply(all, m.sel, time.Now())

	header := m.viewTabs()
	balance := fmt.Sprintf(
		"Filtered Balance: %s   Total Balance: %s",
		ColorAmount(snap.Balance),
		ColorAmount(ledger.Balance(all)),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		balance,
		tableView,
	)

	if m.state == ledgerStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render("Add Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m LedgerModel) viewTabs() string {
	tabs := make([]string, 0, len(filterOrder))

	for _, f := range filterOrder {
		label := f.String()

		if f == ledger.FilterPastMonth {
			if p, ok := m.sel.Period(); ok {
				label = FormatPeriod(p.Month, p.Year)
			}
		}

		if f == m.sel.Filter() {
			label = activeStyle(label)
		}

		tabs = append(tabs, label)
	}

	return "Filter: " + strings.Join(tabs, " | ")
}

func (m LedgerModel) viewPickMonth() string {
	s := "Select Month:\n\n"

	for i, p := range m.periods {
		cursor := " "
		if i == m.periodCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, FormatPeriod(p.Month, p.Year))
	}

	s += "\n(Enter to select, Esc to back)"

	return lipgloss.NewStyle().Padding(1).Render(s)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

// Messages

type loadLedgerMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m LedgerModel) loadCmd() tea.Cmd {
	svc := m.txService
	owner := m.owner

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := svc.List(ctx, transaction.ListFilter{OwnerID: &owner})

		return loadLedgerMsg{txs: txs, err: err}
	}
}

type addResultMsg struct {
	pending *ledger.Pending
	err     error
}

type deleteResultMsg struct {
	pending *ledger.Pending
	err     error
}
