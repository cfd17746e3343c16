package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rituraj-gharat/trackmycash/internal/importer"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

type importState int

const (
	importStateForm importState = iota
	importStateRunning
	importStateDone
)

// ImportModel imports a statement CSV from a local file path.
type ImportModel struct {
	CommonModel
	txService *transaction.Service
	importSvc *importer.Service
	owner     string

	state    importState
	form     *huh.Form
	formPath string

	imported int
	err      error
}

func NewImportModel(txSvc *transaction.Service, importSvc *importer.Service, owner string) ImportModel {
	m := ImportModel{
		txService: txSvc,
		importSvc: importSvc,
		owner:     owner,
	}
	m.form = m.newForm()

	return m
}

func (m ImportModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Statement CSV path").
				Placeholder("statement.csv").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateDone {
		return "Esc: back | Enter: import another"
	}

	return "Enter: import | Esc: back"
}

func (m ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

type importDoneMsg struct {
	imported int
	err      error
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importDoneMsg:
		m.state = importStateDone
		m.imported = msg.imported
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == importStateDone && msg.Type == tea.KeyEnter {
			m.state = importStateForm
			m.formPath = ""
			m.form = m.newForm()

			return m, m.form.Init()
		}
	}

	if m.state != importStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = importStateRunning

	return m, m.runImportCmd(strings.TrimSpace(m.form.GetString("path")))
}

func (m ImportModel) runImportCmd(path string) tea.Cmd {
	svc := m.importSvc
	txSvc := m.txService
	owner := m.owner

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		params, err := svc.Import(f)
		if err != nil {
			return importDoneMsg{err: err}
		}

		for i := range params {
			params[i].OwnerID = owner
		}

		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := txSvc.CreateBatch(ctx, params)
		if err != nil {
			return importDoneMsg{err: err}
		}

		return importDoneMsg{imported: len(txs)}
	}
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateRunning:
		return lipgloss.NewStyle().Padding(2).Render("Importing...")

	case importStateDone:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(
				fmt.Sprintf("Import failed: %v\n\n(Esc to back)", m.err),
			)
		}

		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Imported %d transactions.\n\n(Enter to import another, Esc to back)", m.imported),
		)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		"Import Statement CSV\n\n" + m.form.View(),
	)
}
