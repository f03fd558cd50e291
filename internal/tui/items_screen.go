package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/meera/gstbill/internal/app"
	"github.com/meera/gstbill/internal/domain"
	"github.com/meera/gstbill/internal/render"
	"github.com/meera/gstbill/internal/service"
	"github.com/meera/gstbill/internal/wizard"
)

// itemsPane identifies which of the two panes has focus
type itemsPane int

const (
	paneCatalog itemsPane = iota
	paneSelected
)

// catalog item form field indices
const (
	fieldItemName = iota
	fieldItemRate
	fieldItemHSN
	fieldItemUnit
	fieldItemCount
)

// itemsModel is the first wizard step: pick catalog items and set quantities
type itemsModel struct {
	app     *app.App
	session *wizard.Session

	catalog       []*domain.InventoryRecord
	catalogCursor int
	itemCursor    int
	pane          itemsPane
	loading       bool
	err           error
	statusMsg     string

	// Search state
	searching   bool
	searchInput textinput.Model

	// Quantity edit state
	editingQty bool
	qtyInput   textinput.Model
	editingID  int64

	// New catalog item form state
	formOpen    bool
	fields      []textinput.Model
	fieldFocus  int
	autoNewItem bool // open the form after the first data load
}

type catalogDataMsg struct {
	records []*domain.InventoryRecord
	err     error
}

type itemSavedMsg struct {
	name string
	err  error
}

// newItemsModel creates the item selection screen
func newItemsModel(a *app.App, s *wizard.Session) tea.Model {
	search := textinput.New()
	search.Placeholder = "type to search catalog"
	search.CharLimit = 60
	search.Width = 30

	qty := textinput.New()
	qty.Placeholder = "1"
	qty.CharLimit = 10
	qty.Width = 8

	return &itemsModel{
		app:         a,
		session:     s,
		searchInput: search,
		qtyInput:    qty,
		loading:     true,
	}
}

// IsCapturingInput returns true while the search box, quantity editor, or
// new item form is focused
func (m *itemsModel) IsCapturingInput() bool {
	return m.searching || m.editingQty || m.formOpen
}

func (m *itemsModel) Init() tea.Cmd {
	return m.loadCatalog()
}

func (m *itemsModel) loadCatalog() tea.Cmd {
	query := m.searchInput.Value()
	return func() tea.Msg {
		ctx := context.Background()

		var records []*domain.InventoryRecord
		var err error
		if query != "" {
			records, err = m.app.CatalogRepo.Search(ctx, query)
		} else {
			records, err = m.app.CatalogRepo.List(ctx)
		}
		if err != nil {
			return catalogDataMsg{err: err}
		}
		return catalogDataMsg{records: records}
	}
}

func (m *itemsModel) initForm() {
	m.fields = make([]textinput.Model, fieldItemCount)

	m.fields[fieldItemName] = textinput.New()
	m.fields[fieldItemName].Placeholder = "Item name"
	m.fields[fieldItemName].CharLimit = 100
	m.fields[fieldItemName].Width = 40

	m.fields[fieldItemRate] = textinput.New()
	m.fields[fieldItemRate].Placeholder = "100.00"
	m.fields[fieldItemRate].CharLimit = 12
	m.fields[fieldItemRate].Width = 15

	m.fields[fieldItemHSN] = textinput.New()
	m.fields[fieldItemHSN].Placeholder = "HSN/SAC code (optional)"
	m.fields[fieldItemHSN].CharLimit = 12
	m.fields[fieldItemHSN].Width = 20

	m.fields[fieldItemUnit] = textinput.New()
	m.fields[fieldItemUnit].Placeholder = "Nos, Kg, ... (optional)"
	m.fields[fieldItemUnit].CharLimit = 12
	m.fields[fieldItemUnit].Width = 20

	m.fieldFocus = fieldItemName
	m.fields[fieldItemName].Focus()
}

func (m *itemsModel) saveItem() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		name := m.fields[fieldItemName].Value()
		rateStr := m.fields[fieldItemRate].Value()

		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil && rateStr != "" {
			return itemSavedMsg{err: fmt.Errorf("invalid rate: %s", rateStr)}
		}

		record := domain.NewInventoryRecord(name, rate)
		record.HSN = m.fields[fieldItemHSN].Value()
		record.Unit = m.fields[fieldItemUnit].Value()

		if err := m.app.CatalogRepo.Create(ctx, record); err != nil {
			return itemSavedMsg{err: err}
		}
		return itemSavedMsg{name: record.Name}
	}
}

func (m *itemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle OpenNewItemFormMsg at the top so it works regardless of mode
	if _, ok := msg.(OpenNewItemFormMsg); ok {
		if m.loading {
			// Data hasn't loaded yet; open the form when it does
			m.autoNewItem = true
			return m, nil
		}
		m.formOpen = true
		m.initForm()
		return m, m.fields[fieldItemName].Focus()
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadCatalog()

	case catalogDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.catalog = msg.records
			if m.catalogCursor >= len(m.catalog) {
				m.catalogCursor = max(0, len(m.catalog)-1)
			}
		}
		// Auto-open the new item form on first run
		if m.autoNewItem {
			m.autoNewItem = false
			m.formOpen = true
			m.initForm()
			return m, m.fields[fieldItemName].Focus()
		}
		return m, nil

	case itemSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.formOpen = false
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadCatalog()

	case tea.KeyMsg:
		if m.formOpen {
			return m.updateForm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.editingQty {
			return m.updateQtyEdit(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *itemsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.formOpen = false
		m.err = nil
		return m, nil

	case "tab", "down":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus + 1) % fieldItemCount
		return m, m.fields[m.fieldFocus].Focus()

	case "shift+tab", "up":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus - 1 + fieldItemCount) % fieldItemCount
		return m, m.fields[m.fieldFocus].Focus()

	case "enter":
		if m.fieldFocus == fieldItemCount-1 {
			return m, m.saveItem()
		}
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus++
		return m, m.fields[m.fieldFocus].Focus()

	case "ctrl+s":
		return m, m.saveItem()
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *itemsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.loading = true
		return m, m.loadCatalog()
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.catalogCursor = 0
	return m, tea.Batch(cmd, m.loadCatalog())
}

func (m *itemsModel) updateQtyEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingQty = false
		m.qtyInput.Blur()
		return m, nil
	case "enter":
		qty := service.LenientFloat(m.qtyInput.Value())
		m.session.Ledger().UpdateQuantity(m.editingID, qty)
		m.editingQty = false
		m.qtyInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(msg)
	return m, cmd
}

func (m *itemsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	m.statusMsg = ""
	m.err = nil

	items := m.session.Ledger().Items()

	switch {
	case key.Matches(msg, DefaultKeyMap.Search):
		m.searching = true
		m.pane = paneCatalog
		return m, m.searchInput.Focus()

	case msg.String() == "a":
		m.formOpen = true
		m.initForm()
		return m, m.fields[fieldItemName].Focus()

	case key.Matches(msg, DefaultKeyMap.Pane):
		if m.pane == paneCatalog {
			m.pane = paneSelected
			m.itemCursor = 0
		} else {
			m.pane = paneCatalog
		}
		return m, nil

	case key.Matches(msg, DefaultKeyMap.Up):
		if m.pane == paneCatalog && m.catalogCursor > 0 {
			m.catalogCursor--
		} else if m.pane == paneSelected && m.itemCursor > 0 {
			m.itemCursor--
		}

	case key.Matches(msg, DefaultKeyMap.Down):
		if m.pane == paneCatalog && m.catalogCursor < len(m.catalog)-1 {
			m.catalogCursor++
		} else if m.pane == paneSelected && m.itemCursor < len(items)-1 {
			m.itemCursor++
		}

	case key.Matches(msg, DefaultKeyMap.Select):
		if m.pane == paneCatalog {
			if len(m.catalog) > 0 && m.catalogCursor < len(m.catalog) {
				record := m.catalog[m.catalogCursor]
				m.session.Ledger().Add(*record)
				m.statusMsg = fmt.Sprintf("Added: %s", record.Name)
			}
		} else if len(items) > 0 && m.itemCursor < len(items) {
			item := items[m.itemCursor]
			m.editingQty = true
			m.editingID = item.ID
			m.qtyInput.SetValue(formatQty(item.Quantity))
			return m, m.qtyInput.Focus()
		}

	case key.Matches(msg, DefaultKeyMap.IncQty):
		if m.pane == paneSelected && len(items) > 0 && m.itemCursor < len(items) {
			item := items[m.itemCursor]
			m.session.Ledger().UpdateQuantity(item.ID, item.Quantity+1)
		}

	case key.Matches(msg, DefaultKeyMap.DecQty):
		if m.pane == paneSelected && len(items) > 0 && m.itemCursor < len(items) {
			item := items[m.itemCursor]
			m.session.Ledger().UpdateQuantity(item.ID, item.Quantity-1)
		}

	case key.Matches(msg, DefaultKeyMap.Delete):
		if m.pane == paneSelected && len(items) > 0 && m.itemCursor < len(items) {
			m.session.Ledger().Remove(items[m.itemCursor].ID)
			if m.itemCursor >= m.session.Ledger().Len() {
				m.itemCursor = max(0, m.session.Ledger().Len()-1)
			}
		}

	case key.Matches(msg, DefaultKeyMap.Clear):
		if m.pane == paneSelected {
			m.session.Ledger().Clear()
			m.itemCursor = 0
		}
	}

	return m, nil
}

func (m *itemsModel) View() string {
	if m.formOpen {
		return m.viewForm()
	}

	if m.loading {
		return "Loading catalog..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	left := m.viewCatalog()
	right := m.viewSelected()

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Width(44).Render(left),
		boxStyle.Width(44).Render(right),
	)

	var s string
	s += panes + "\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n"
	}

	s += m.viewSummary() + "\n"

	if m.editingQty {
		s += helpStyle.Render("  enter: set quantity  esc: cancel")
	} else if m.searching {
		s += helpStyle.Render("  enter: keep filter  esc: clear search")
	} else {
		s += helpStyle.Render("  tab: switch pane  /: search  enter: add/edit qty  +/-: qty  a: new item  d: remove  c: clear  n: next")
	}

	return s
}

func (m *itemsModel) viewForm() string {
	var s string

	if len(m.catalog) == 0 {
		s += titleStyle.Render("Welcome to gstbill!") + "\n"
		s += subtitleStyle.Render("  Let's add your first catalog item to get started.") + "\n\n"
	} else {
		s += titleStyle.Render("New Catalog Item") + "\n\n"
	}

	labels := []string{"Name:", "Rate:", "HSN/SAC:", "Unit:"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}

func (m *itemsModel) viewCatalog() string {
	var s string

	title := "Catalog"
	if m.pane == paneCatalog {
		title = "Catalog *"
	}
	s += titleStyle.Render(title) + "\n"

	if m.searching || m.searchInput.Value() != "" {
		s += m.searchInput.View() + "\n"
	}
	s += "\n"

	if len(m.catalog) == 0 {
		if m.searchInput.Value() != "" {
			s += subtitleStyle.Render("No matches.")
		} else {
			s += subtitleStyle.Render("No catalog items.")
		}
		return s
	}

	for i, record := range m.catalog {
		indicator := "  "
		line := fmt.Sprintf("%s  %s", truncateStr(record.Name, 24),
			render.FormatMoney(m.currency(), record.Rate))
		style := lipgloss.NewStyle()
		if m.pane == paneCatalog && i == m.catalogCursor {
			indicator = "> "
			style = style.Bold(true).Foreground(primaryColor)
		}
		s += style.Render(indicator+line) + "\n"
	}

	return s
}

func (m *itemsModel) viewSelected() string {
	var s string

	title := "Invoice Items"
	if m.pane == paneSelected {
		title = "Invoice Items *"
	}
	s += titleStyle.Render(title) + "\n\n"

	items := m.session.Ledger().Items()
	if len(items) == 0 {
		s += subtitleStyle.Render("Nothing selected yet.") + "\n"
		s += subtitleStyle.Render("Press enter on a catalog item to add it.")
		return s
	}

	for i, item := range items {
		indicator := "  "
		qty := formatQty(item.Quantity)
		if m.editingQty && item.ID == m.editingID {
			qty = m.qtyInput.View()
		}
		line := fmt.Sprintf("%s  x%s  %s", truncateStr(item.Record.Name, 20), qty,
			render.FormatMoney(m.currency(), item.Amount()))
		style := lipgloss.NewStyle()
		if m.pane == paneSelected && i == m.itemCursor {
			indicator = "> "
			style = style.Bold(true).Foreground(primaryColor)
		}
		s += style.Render(indicator+line) + "\n"
	}

	return s
}

func (m *itemsModel) viewSummary() string {
	items := m.session.Ledger().Items()
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Amount()
	}
	label := totalLabelStyle.Render(fmt.Sprintf("%d item(s), subtotal ", len(items)))
	value := totalValueStyle.Render(render.FormatMoney(m.currency(), subtotal))
	return "  " + label + value
}

func (m *itemsModel) currency() string {
	return m.app.Config.Invoice.CurrencyPrefix
}
