package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/meera/gstbill/internal/app"
	"github.com/meera/gstbill/internal/domain"
	"github.com/meera/gstbill/internal/render"
	"github.com/meera/gstbill/internal/wizard"
)

// buyerModel is the second wizard step: choose the buyer the invoice is billed to
type buyerModel struct {
	app     *app.App
	session *wizard.Session

	buyers  []*domain.Buyer
	cursor  int
	loading bool
	err     error
}

type buyersDataMsg struct {
	buyers []*domain.Buyer
	err    error
}

// newBuyerModel creates the buyer selection screen
func newBuyerModel(a *app.App, s *wizard.Session) tea.Model {
	return &buyerModel{
		app:     a,
		session: s,
		loading: true,
	}
}

func (m *buyerModel) Init() tea.Cmd {
	return m.loadBuyers()
}

func (m *buyerModel) loadBuyers() tea.Cmd {
	return func() tea.Msg {
		buyers, err := m.app.BuyerRepo.List(context.Background())
		if err != nil {
			return buyersDataMsg{err: err}
		}
		return buyersDataMsg{buyers: buyers}
	}
}

func (m *buyerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadBuyers()

	case buyersDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.buyers = msg.buyers
			if m.cursor >= len(m.buyers) {
				m.cursor = max(0, len(m.buyers)-1)
			}
			// Keep the cursor on a previously selected buyer
			if sel := m.session.Buyer(); sel != nil {
				for i, b := range m.buyers {
					if b.ID == sel.ID {
						m.cursor = i
						break
					}
				}
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.buyers)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.buyers) > 0 && m.cursor < len(m.buyers) {
				m.session.SetBuyer(m.buyers[m.cursor])
				return m, func() tea.Msg { return NextStepMsg{} }
			}
		}
	}

	return m, nil
}

func (m *buyerModel) View() string {
	if m.loading {
		return "Loading buyers..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string
	s += titleStyle.Render("Bill To") + "\n\n"

	if len(m.buyers) == 0 {
		s += subtitleStyle.Render("  No buyers found.") + "\n"
		s += subtitleStyle.Render("  Add one with: gstbill buyers add \"Buyer name\"") + "\n"
		return s
	}

	selected := m.session.Buyer()
	for i, buyer := range m.buyers {
		s += m.renderBuyer(i, buyer, selected) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: select & continue  b: back")

	return s
}

func (m *buyerModel) renderBuyer(index int, buyer *domain.Buyer, selected *domain.Buyer) string {
	indicator := "  "
	if index == m.cursor {
		indicator = "> "
	}

	name := buyer.Name
	if selected != nil && buyer.ID == selected.ID {
		name += " (selected)"
	}

	var details []string
	if buyer.GSTIN != "" {
		details = append(details, "GSTIN: "+buyer.GSTIN)
	}
	if buyer.State != "" {
		details = append(details, buyer.State)
	}
	if buyer.Balance != 0 {
		details = append(details, "Balance: "+render.FormatMoney(m.app.Config.Invoice.CurrencyPrefix, buyer.Balance))
	}

	nameStyle := lipgloss.NewStyle()
	if index == m.cursor {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	result := nameStyle.Render(indicator + name)
	if len(details) > 0 {
		result += "\n" + subtitleStyle.Render("    "+strings.Join(details, "  |  "))
	}
	return result
}
