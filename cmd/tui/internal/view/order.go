package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/villagekitchen/billing/internal/catalog"
	"github.com/villagekitchen/billing/internal/ledger"
)

type orderState int

const (
	orderStateList orderState = iota
	orderStateAdding
	orderStateCharge
	orderStateClearing
)

// orderItem wraps a line item to implement list.Item.
type orderItem struct {
	item     ledger.LineItem
	currency string
}

func (i orderItem) Title() string {
	return fmt.Sprintf("%s  x%d", i.item.Name, i.item.Quantity)
}

func (i orderItem) Description() string {
	return fmt.Sprintf("%s each = %s",
		FormatAmount(i.currency, i.item.UnitPrice),
		FormatAmount(i.currency, i.item.LineTotal),
	)
}

func (i orderItem) FilterValue() string { return i.item.Name }

// OrderModel is the screen for building the current order: adding items
// from the catalog, removing them, and managing the delivery charge.
type OrderModel struct {
	CommonModel
	ledger   *ledger.Ledger
	catalog  *catalog.Catalog
	currency string

	state  orderState
	list   list.Model
	form   *huh.Form
	status string

	// Form field bindings
	formItem     string
	formQuantity string
	formCharge   string
	formConfirm  bool
}

func NewOrderModel(l *ledger.Ledger, c *catalog.Catalog, currency string) OrderModel {
	ol := list.New([]list.Item{}, orderItemDelegate{}, 0, 0)
	ol.Title = "Current Order"
	ol.SetShowStatusBar(false)
	ol.SetFilteringEnabled(false)
	ol.SetShowHelp(false)

	m := OrderModel{
		ledger:   l,
		catalog:  c,
		currency: currency,
		list:     ol,
	}
	m.refreshListItems()

	return m
}

func (m OrderModel) Title() string { return "Manage Order" }

func (m OrderModel) ShortHelp() string {
	switch m.state {
	case orderStateList:
		return "Esc: back | a: add | x: remove | c: delivery charge | f: free delivery | r: clear"
	default:
		return "Esc: cancel | Enter/Tab: navigate form"
	}
}

func (m OrderModel) Init() tea.Cmd {
	return nil
}

func (m OrderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-4, size.Height-12)
		return m, nil
	}

	switch m.state {
	case orderStateList:
		return m.updateList(msg)
	case orderStateAdding:
		return m.updateAdding(msg)
	case orderStateCharge:
		return m.updateCharge(msg)
	case orderStateClearing:
		return m.updateClearing(msg)
	}

	return m, nil
}

func (m OrderModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)

		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "a":
		return m.startAdding()
	case "x":
		return m.removeSelected()
	case "c":
		return m.startCharge()
	case "f":
		return m.toggleFreeDelivery()
	case "r":
		return m.startClearing()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m OrderModel) startAdding() (tea.Model, tea.Cmd) {
	entries := m.catalog.Entries()

	options := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("%s (%s)", e.Name, FormatAmount(m.currency, e.UnitPrice))
		options[i] = huh.NewOption(label, e.Name)
	}

	m.formItem = ""
	m.formQuantity = "1"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("item").
				Title("Item").
				Options(options...).
				Value(&m.formItem),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.formQuantity).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("quantity must be a whole number")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = orderStateAdding

	return m, m.form.Init()
}

func (m OrderModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = orderStateList
			m.form = nil

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

	quantity, _ := strconv.Atoi(strings.TrimSpace(m.form.GetString("quantity")))
	entry, _ := m.catalog.Lookup(m.form.GetString("item"))

	if _, err := m.ledger.AddItem(entry, quantity); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
	} else {
		m.status = fmt.Sprintf("Added %s x%d.", entry.Name, quantity)
	}

	m.refreshListItems()
	m.state = orderStateList
	m.form = nil

	return m, nil
}

func (m OrderModel) removeSelected() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(orderItem)
	if !ok {
		return m, nil
	}

	m.ledger.RemoveItem(selected.item.ID)
	m.refreshListItems()
	m.status = fmt.Sprintf("Removed %s.", selected.item.Name)

	return m, nil
}

func (m OrderModel) startCharge() (tea.Model, tea.Cmd) {
	if m.ledger.Snapshot().FreeDelivery {
		m.status = "Free delivery is on; charge is locked at 0."
		return m, nil
	}

	m.formCharge = m.ledger.Snapshot().DeliveryCharge.String()

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("charge").
				Title("Delivery Charges").
				Description("Non-numeric input counts as 0").
				Value(&m.formCharge),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = orderStateCharge

	return m, m.form.Init()
}

func (m OrderModel) updateCharge(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = orderStateList
			m.form = nil

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

	amount, err := decimal.NewFromString(strings.TrimSpace(m.form.GetString("charge")))
	if err != nil {
		amount = decimal.Zero
	}

	m.ledger.SetDeliveryCharge(amount)
	m.status = fmt.Sprintf("Delivery charges set to %s.", FormatAmount(m.currency, amount))
	m.state = orderStateList
	m.form = nil

	return m, nil
}

func (m OrderModel) toggleFreeDelivery() (tea.Model, tea.Cmd) {
	enabled := !m.ledger.Snapshot().FreeDelivery
	m.ledger.SetFreeDelivery(enabled)

	if enabled {
		m.status = "Free delivery on."
	} else {
		m.status = "Free delivery off."
	}

	return m, nil
}

func (m OrderModel) startClearing() (tea.Model, tea.Cmd) {
	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Clear all items?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formConfirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = orderStateClearing

	return m, m.form.Init()
}

func (m OrderModel) updateClearing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = orderStateList
			m.form = nil

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

	if m.form.GetBool("confirm") {
		m.ledger.Clear()
		m.refreshListItems()
		m.status = "Order cleared."
	}

	m.state = orderStateList
	m.form = nil

	return m, nil
}

func (m OrderModel) View() string {
	switch m.state {
	case orderStateList:
		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(
			statusLine + m.list.View() + "\n" + m.summaryView(),
		)

	case orderStateAdding, orderStateCharge, orderStateClearing:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	return ""
}

func (m OrderModel) summaryView() string {
	snap := m.ledger.Snapshot()

	delivery := FormatAmount(m.currency, snap.DeliveryCharge)
	if snap.FreeDelivery {
		delivery += "  (free delivery)"
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"Subtotal: %s\nDelivery Charges: %s\nTotal Amount: %s",
			FormatAmount(m.currency, snap.Subtotal),
			delivery,
			FormatAmount(m.currency, snap.FinalTotal),
		))
}

func (m *OrderModel) refreshListItems() {
	snap := m.ledger.Snapshot()

	items := make([]list.Item, len(snap.Items))
	for i, item := range snap.Items {
		items[i] = orderItem{item: item, currency: m.currency}
	}

	m.list.SetItems(items)
}

// orderItemDelegate renders items in the list.
type orderItemDelegate struct{}

func (d orderItemDelegate) Height() int                             { return 2 }
func (d orderItemDelegate) Spacing() int                            { return 0 }
func (d orderItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d orderItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(orderItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
