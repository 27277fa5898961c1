package view

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/villagekitchen/billing/internal/invoice"
	"github.com/villagekitchen/billing/internal/ledger"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateSaving
	exportStateResult
)

// ExportModel collects the customer details and writes the generated
// invoice PDF into the output directory.
type ExportModel struct {
	CommonModel
	invoiceService *invoice.Service
	ledger         *ledger.Ledger

	state exportState
	err   error

	form    *huh.Form
	spinner spinner.Model
	path    string

	name    string
	phone   string
	address string
	date    string
	dir     string
}

func NewExportModel(svc *invoice.Service, l *ledger.Ledger, outputDir string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		invoiceService: svc,
		ledger:         l,
		spinner:        s,
		date:           FormatDate(time.Now()),
		dir:            outputDir,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) Title() string { return "Export Invoice" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateSaving:
		return "Generating..."
	}
	return "Esc: back | Enter/Tab: navigate form"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateSaving:
		return m.updateSaving(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.name = m.form.GetString("name")
	m.phone = m.form.GetString("phone")
	m.address = m.form.GetString("address")
	m.date = m.form.GetString("date")
	m.dir = m.form.GetString("dir")

	m.state = exportStateSaving
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd())
}

func (m ExportModel) updateSaving(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.path = result.path

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m *ExportModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Customer Name").
				Value(&m.name),

			huh.NewInput().
				Key("phone").
				Title("Customer Phone").
				Value(&m.phone),

			huh.NewText().
				Key("address").
				Title("Delivery Address").
				Lines(3).
				Value(&m.address),

			huh.NewInput().
				Key("date").
				Title("Invoice Date").
				Description("YYYY-MM-DD").
				Value(&m.date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("dir").
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Value(&m.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateSaving:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Generating invoice...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Invoice Generated!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			fmt.Sprintf("Saved to %s", m.path),
		),
	)
}

type exportResultMsg struct {
	path string
	err  error
}

func (m ExportModel) runExportCmd() tea.Cmd {
	snap := m.ledger.Snapshot()

	meta := invoice.Metadata{
		CustomerName:    m.name,
		CustomerPhone:   m.phone,
		DeliveryAddress: m.address,
	}

	if d, err := time.Parse(time.DateOnly, strings.TrimSpace(m.date)); err == nil {
		meta.Date = d
	}

	dir := m.dir
	svc := m.invoiceService

	return func() tea.Msg {
		artifact, err := svc.Export(snap, meta)
		if err != nil {
			return exportResultMsg{err: err}
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportResultMsg{err: fmt.Errorf("creating output directory: %w", err)}
		}

		path := filepath.Join(dir, artifact.Filename)
		if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
			return exportResultMsg{err: fmt.Errorf("writing invoice: %w", err)}
		}

		return exportResultMsg{path: path}
	}
}
