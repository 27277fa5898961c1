package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/villagekitchen/billing/cmd/tui/internal/view"
	"github.com/villagekitchen/billing/internal/catalog"
	"github.com/villagekitchen/billing/internal/config"
	"github.com/villagekitchen/billing/internal/invoice"
	"github.com/villagekitchen/billing/internal/ledger"
	"github.com/villagekitchen/billing/internal/pdf"
)

type model struct {
	billLedger     *ledger.Ledger
	menu           *catalog.Catalog
	invoiceService *invoice.Service
	currency       string
	outputDir      string

	currentView View

	orderView  view.OrderModel
	exportView view.ExportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewOrder  View = 1
	ViewExport View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	brand := invoice.Brand{
		Name:          cfg.Brand.Name,
		Tagline:       cfg.Brand.Tagline,
		Phone:         cfg.Brand.Phone,
		CurrencyLabel: cfg.Brand.Currency,
	}

	billLedger := ledger.New()
	menu := catalog.Default()
	projector := invoice.NewProjector(brand, func() invoice.Canvas { return pdf.New() })
	invoiceSvc := invoice.NewService(projector, brand)

	return model{
		billLedger:     billLedger,
		menu:           menu,
		invoiceService: invoiceSvc,
		currency:       cfg.Brand.Currency,
		outputDir:      cfg.Export.OutputDir,
		currentView:    ViewMenu,
		orderView:      view.NewOrderModel(billLedger, menu, cfg.Brand.Currency),
		exportView:     view.NewExportModel(invoiceSvc, billLedger, cfg.Export.OutputDir),
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
				m.currentView = ViewOrder
				m.orderView = view.NewOrderModel(m.billLedger, m.menu, m.currency)

				return m, m.orderView.Init()
			case "2":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.invoiceService, m.billLedger, m.outputDir)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewOrder:
		var newModel tea.Model
		newModel, cmd = m.orderView.Update(msg)
		m.orderView = newModel.(view.OrderModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Village Kitchen Billing\n\n" +
				"1. Manage Order\n" +
				"2. Export Invoice\n\n" +
				"q. Quit",
		)
	case ViewOrder:
		return m.orderView.View()
	case ViewExport:
		return m.exportView.View()
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
