package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/meera/gstbill/internal/app"
	"github.com/meera/gstbill/internal/wizard"
)

// Step represents the current wizard step
type Step int

const (
	StepItems Step = iota
	StepBuyer
	StepReview
)

// String returns the step name
func (s Step) String() string {
	switch s {
	case StepItems:
		return "Step 1 of 3 - Items"
	case StepBuyer:
		return "Step 2 of 3 - Buyer"
	case StepReview:
		return "Step 3 of 3 - Review & Generate"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app         *app.App
	session     *wizard.Session
	currentStep Step
	width       int
	height      int

	// Step models (lazy initialized)
	items  tea.Model
	buyer  tea.Model
	review tea.Model

	// First-run state
	checkedFirstRun bool

	// Error state
	err        error
	blockMsg   string // shown when advancing is blocked
	successMsg string // shown after an invoice is generated
}

// New creates a new root model
func New(a *app.App) Model {
	session := wizard.NewSession(a.Config.Invoice.DefaultDueDays)
	session.EnsureFresh()
	items := newItemsModel(a, session)
	return Model{
		app:     a,
		session: session,
		items:   items,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.checkFirstRun(),
	}
	if m.items != nil {
		cmds = append(cmds, m.items.Init())
	}
	return tea.Batch(cmds...)
}

// checkFirstRun checks if any catalog items exist in the database
func (m *Model) checkFirstRun() tea.Cmd {
	return func() tea.Msg {
		records, err := m.app.CatalogRepo.List(context.Background())
		if err != nil {
			return firstRunCheckMsg{hasItems: true} // assume yes on error
		}
		return firstRunCheckMsg{hasItems: len(records) > 0}
	}
}

// initStep lazy-initializes a step screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens reload data.
func (m *Model) initStep(step Step) tea.Cmd {
	switch step {
	case StepItems:
		if m.items == nil {
			m.items = newItemsModel(m.app, m.session)
			return m.items.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case StepBuyer:
		if m.buyer == nil {
			m.buyer = newBuyerModel(m.app, m.session)
			return m.buyer.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case StepReview:
		if m.review == nil {
			m.review = newReviewModel(m.app, m.session)
			return m.review.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (N, B, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeStepCapturingInput returns true if the current step is capturing text input
func (m *Model) activeStepCapturingInput() bool {
	var screen tea.Model
	switch m.currentStep {
	case StepItems:
		screen = m.items
	case StepBuyer:
		screen = m.buyer
	case StepReview:
		screen = m.review
	}
	if ic, ok := screen.(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// advance moves to the next step if the session allows it
func (m *Model) advance() tea.Cmd {
	switch m.currentStep {
	case StepItems:
		if err := m.session.CanAdvance(); err != nil {
			m.blockMsg = err.Error()
			return nil
		}
		m.currentStep = StepBuyer
		return m.initStep(StepBuyer)
	case StepBuyer:
		if m.session.Buyer() == nil {
			m.blockMsg = "select a buyer before continuing"
			return nil
		}
		m.currentStep = StepReview
		return m.initStep(StepReview)
	}
	return nil
}

// retreat moves back one step; item and buyer selections are kept
func (m *Model) retreat() tea.Cmd {
	switch m.currentStep {
	case StepBuyer:
		m.currentStep = StepItems
		return m.initStep(StepItems)
	case StepReview:
		m.currentStep = StepBuyer
		return m.initStep(StepBuyer)
	}
	return nil
}

// Update implements tea.Model - routes keys to step screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Clear block warning on any keypress
		m.blockMsg = ""
		m.successMsg = ""

		// Skip global navigation when a screen is capturing text input
		if !m.activeStepCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Next):
				cmd := m.advance()
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Prev):
				cmd := m.retreat()
				return m, cmd
			}
		}

	case firstRunCheckMsg:
		if !m.checkedFirstRun && !msg.hasItems {
			m.checkedFirstRun = true
			openFormCmd := func() tea.Msg { return OpenNewItemFormMsg{} }
			return m, openFormCmd
		}
		m.checkedFirstRun = true
		return m, nil

	case NextStepMsg:
		cmd := m.advance()
		return m, cmd

	case PrevStepMsg:
		cmd := m.retreat()
		return m, cmd

	case invoiceDoneMsg:
		// A generated invoice ends the session: reset and return to step 1.
		// Errors fall through to the review screen.
		if msg.err == nil {
			m.session.Reset()
			m.review = nil
			m.buyer = nil
			m.currentStep = StepItems
			m.successMsg = fmt.Sprintf("Generated %s -> %s", msg.number, msg.filePath)
			return m, m.initStep(StepItems)
		}

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current step
	var cmd tea.Cmd
	switch m.currentStep {
	case StepItems:
		if m.items != nil {
			m.items, cmd = m.items.Update(msg)
		}
	case StepBuyer:
		if m.buyer != nil {
			m.buyer, cmd = m.buyer.Update(msg)
		}
	case StepReview:
		if m.review != nil {
			m.review, cmd = m.review.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current step + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("gstbill - %s", m.currentStep.String()))
	footer := footerStyle.Render("[N]ext  [B]ack  [Q]uit")

	var content string
	switch m.currentStep {
	case StepItems:
		if m.items != nil {
			content = m.items.View()
		} else {
			content = "Loading..."
		}
	case StepBuyer:
		if m.buyer != nil {
			content = m.buyer.View()
		} else {
			content = "Loading..."
		}
	case StepReview:
		if m.review != nil {
			content = m.review.View()
		} else {
			content = "Loading..."
		}
	}

	// Warning/error display
	notice := ""
	if m.successMsg != "" {
		notice = lipgloss.NewStyle().
			Foreground(successColor).
			Render(fmt.Sprintf("\n%s", m.successMsg))
	}
	if m.blockMsg != "" {
		notice = lipgloss.NewStyle().
			Foreground(warningColor).
			Render(fmt.Sprintf("\n%s", m.blockMsg))
	} else if m.err != nil {
		notice = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, notice, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
