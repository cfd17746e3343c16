package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rituraj-gharat/trackmycash/cmd/tui/internal/view"
	"github.com/rituraj-gharat/trackmycash/internal/config"
	"github.com/rituraj-gharat/trackmycash/internal/database"
	"github.com/rituraj-gharat/trackmycash/internal/importer"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
	txStore "github.com/rituraj-gharat/trackmycash/internal/transaction/store"
)

type model struct {
	txService     *transaction.Service
	importService *importer.Service
	owner         string

	currentView View

	ledgerView view.LedgerModel
	importView view.ImportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewLedger View = 1
	ViewImport View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	impSvc := importer.NewService()

	// The TUI is the single-user surface: everything is scoped to the
	// configured local owner, no sign-in step.
	owner := cfg.Auth.DefaultOwner

	return model{
		txService:     txSvc,
		importService: impSvc,
		owner:         owner,
		currentView:   ViewMenu,
		ledgerView:    view.NewLedgerModel(txSvc, owner),
		importView:    view.NewImportModel(txSvc, impSvc, owner),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.txService, m.owner)

				return m, m.ledgerView.Init()
			case "2":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.importService, m.owner)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"TrackMyCash\n\n" +
				"1. Ledger\n" +
				"2. Import Statement CSV\n\n" +
				"q. Quit",
		)
	case ViewLedger:
		return m.ledgerView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
