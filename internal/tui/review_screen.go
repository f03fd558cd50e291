package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

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

// reviewMode represents the current screen mode
type reviewMode int

const (
	reviewModeOptions reviewMode = iota
	reviewModeEditField
	reviewModeSavePath
)

// option field indices
const (
	optTerms = iota
	optDueDate
	optTransport
	optVehicle
	optNotes
	optCount
)

var paymentTermsCycle = []domain.PaymentTerms{
	domain.PaymentTermsImmediate,
	domain.PaymentTerms15Days,
	domain.PaymentTerms30Days,
	domain.PaymentTerms60Days,
}

var transportCycle = []domain.TransportMode{
	domain.TransportRoad,
	domain.TransportRail,
	domain.TransportAir,
	domain.TransportShip,
}

// reviewModel is the final wizard step: adjust options, verify totals, generate
type reviewModel struct {
	app     *app.App
	session *wizard.Session

	mode       reviewMode
	optionFoc  int
	fieldInput textinput.Model

	savePathInput textinput.Model
	generating    bool
	err           error

	// Preview state
	showPreview bool
	preview     string
}

// invoiceDoneMsg reports the outcome of invoice generation
type invoiceDoneMsg struct {
	number   string
	filePath string
	err      error
}

// newReviewModel creates the review & generate screen
func newReviewModel(a *app.App, s *wizard.Session) tea.Model {
	field := textinput.New()
	field.CharLimit = 120
	field.Width = 40

	savePath := textinput.New()
	savePath.Placeholder = "path/to/invoice.pdf"
	savePath.Width = 60
	savePath.CharLimit = 256

	return &reviewModel{
		app:           a,
		session:       s,
		fieldInput:    field,
		savePathInput: savePath,
	}
}

// IsCapturingInput returns true while a text field or the save path is focused
func (m *reviewModel) IsCapturingInput() bool {
	return m.mode == reviewModeEditField || m.mode == reviewModeSavePath
}

func (m *reviewModel) Init() tea.Cmd {
	return nil
}

// defaultSavePath builds the suggested output path with a number placeholder,
// resolved to the real invoice number once the sequence hands one out.
func (m *reviewModel) defaultSavePath() string {
	outputDir := m.app.Config.Invoice.OutputDir
	if outputDir == "" {
		homeDir, _ := os.UserHomeDir()
		outputDir = filepath.Join(homeDir, ".config", "gstbill", "invoices")
	}
	prefix := m.numberPrefix()
	return filepath.Join(outputDir, fmt.Sprintf("%s-%d-xxx.pdf", prefix, time.Now().Year()))
}

func (m *reviewModel) numberPrefix() string {
	prefix := m.app.Config.Invoice.NumberPrefix
	if prefix == "" {
		prefix = "INV"
	}
	return prefix
}

// generate reserves an invoice number, builds the document, and writes the
// PDF plus a plain-text copy alongside it
func (m *reviewModel) generate() tea.Cmd {
	a := m.app
	buyer := m.session.Buyer()
	items := m.session.Ledger().Items()
	opts := m.session.Options()
	savePath := m.savePathInput.Value()
	prefix := m.numberPrefix()

	return func() tea.Msg {
		ctx := context.Background()

		if buyer == nil {
			return invoiceDoneMsg{err: fmt.Errorf("no buyer selected")}
		}
		if len(items) == 0 {
			return invoiceDoneMsg{err: fmt.Errorf("no items to invoice")}
		}

		now := time.Now()
		number, err := a.SequenceRepo.Next(ctx, prefix, now.Year())
		if err != nil {
			return invoiceDoneMsg{err: fmt.Errorf("reserve invoice number: %w", err)}
		}

		meta := domain.NewMetadata(number, now, opts)
		doc, err := render.BuildDocument(render.Input{
			Company:         a.Config.Company.Company(),
			Buyer:           *buyer,
			Meta:            meta,
			Items:           items,
			Tax:             domain.TaxConfig{RatePercent: a.Config.Invoice.TaxRatePercent},
			PreviousBalance: buyer.Balance,
			Bank:            a.Config.Bank.Bank(),
			Notes:           opts.Notes,
			Currency:        a.Config.Invoice.CurrencyPrefix,
		})
		if err != nil {
			return invoiceDoneMsg{err: fmt.Errorf("calculate totals: %w", err)}
		}

		// Replace the number placeholder in the save path with the reserved number
		finalPath := strings.Replace(savePath,
			fmt.Sprintf("%s-%d-xxx.pdf", prefix, now.Year()), number+".pdf", 1)
		if finalPath == savePath && !strings.HasSuffix(finalPath, ".pdf") {
			// User typed a directory - append the invoice filename
			finalPath = filepath.Join(finalPath, number+".pdf")
		}

		if err := render.WritePDF(doc, finalPath); err != nil {
			return invoiceDoneMsg{err: fmt.Errorf("write pdf: %w", err)}
		}

		txtPath := strings.TrimSuffix(finalPath, ".pdf") + ".txt"
		if err := render.WriteTextFile(doc, txtPath); err != nil {
			return invoiceDoneMsg{err: fmt.Errorf("write txt: %w", err)}
		}

		return invoiceDoneMsg{number: number, filePath: finalPath}
	}
}

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		return m, nil

	case invoiceDoneMsg:
		m.generating = false
		m.err = msg.err
		m.mode = reviewModeOptions
		return m, nil

	case tea.KeyMsg:
		if m.generating {
			return m, nil
		}

		switch m.mode {
		case reviewModeEditField:
			return m.updateFieldEdit(msg)
		case reviewModeSavePath:
			return m.updateSavePath(msg)
		}
		return m.updateOptions(msg)
	}

	return m, nil
}

func (m *reviewModel) updateOptions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	if m.showPreview {
		if msg.String() == "p" || msg.String() == "esc" {
			m.showPreview = false
		}
		return m, nil
	}

	opts := m.session.Options()

	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.optionFoc > 0 {
			m.optionFoc--
		}

	case key.Matches(msg, DefaultKeyMap.Down):
		if m.optionFoc < optCount-1 {
			m.optionFoc++
		}

	case key.Matches(msg, DefaultKeyMap.Select), msg.String() == "right", msg.String() == "left":
		switch m.optionFoc {
		case optTerms:
			opts.PaymentTerms = cycleTerms(opts.PaymentTerms, msg.String() == "left")
			m.session.SetOptions(opts)
		case optTransport:
			opts.TransportMode = cycleTransport(opts.TransportMode, msg.String() == "left")
			m.session.SetOptions(opts)
		case optDueDate:
			if msg.String() != "enter" {
				break
			}
			m.mode = reviewModeEditField
			m.fieldInput.SetValue(opts.DueDate.Format("2006-01-02"))
			m.fieldInput.Placeholder = "2006-01-02"
			return m, m.fieldInput.Focus()
		case optVehicle:
			if msg.String() != "enter" {
				break
			}
			m.mode = reviewModeEditField
			m.fieldInput.SetValue(opts.VehicleNo)
			m.fieldInput.Placeholder = "KA 01 AB 1234"
			return m, m.fieldInput.Focus()
		case optNotes:
			if msg.String() != "enter" {
				break
			}
			m.mode = reviewModeEditField
			m.fieldInput.SetValue(opts.Notes)
			m.fieldInput.Placeholder = "Printed under the totals section"
			return m, m.fieldInput.Focus()
		}

	case key.Matches(msg, DefaultKeyMap.Generate):
		m.mode = reviewModeSavePath
		m.savePathInput.SetValue(m.defaultSavePath())
		return m, m.savePathInput.Focus()

	case msg.String() == "p":
		m.showPreview = !m.showPreview
		if m.showPreview {
			m.preview = m.buildPreview()
		}
		return m, nil
	}

	return m, nil
}

// buildPreview renders the plain-text invoice with a draft number in place
// of the not-yet-reserved one.
func (m *reviewModel) buildPreview() string {
	buyer := m.session.Buyer()
	if buyer == nil {
		return "No buyer selected."
	}

	meta := domain.NewMetadata("(draft)", time.Now(), m.session.Options())
	doc, err := render.BuildDocument(render.Input{
		Company:         m.app.Config.Company.Company(),
		Buyer:           *buyer,
		Meta:            meta,
		Items:           m.session.Ledger().Items(),
		Tax:             domain.TaxConfig{RatePercent: m.app.Config.Invoice.TaxRatePercent},
		PreviousBalance: buyer.Balance,
		Bank:            m.app.Config.Bank.Bank(),
		Notes:           m.session.Options().Notes,
		Currency:        m.app.Config.Invoice.CurrencyPrefix,
	})
	text := render.RenderText(doc)
	if err != nil {
		text += "\n" + lipgloss.NewStyle().Foreground(warningColor).
			Render("Totals could not be verified; showing safe fallback.")
	}
	return text
}

func (m *reviewModel) updateFieldEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = reviewModeOptions
		m.fieldInput.Blur()
		return m, nil

	case "enter":
		opts := m.session.Options()
		value := strings.TrimSpace(m.fieldInput.Value())
		switch m.optionFoc {
		case optDueDate:
			due, err := time.Parse("2006-01-02", value)
			if err != nil {
				m.err = fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
				return m, nil
			}
			opts.DueDate = due
		case optVehicle:
			opts.VehicleNo = value
		case optNotes:
			opts.Notes = value
		}
		m.session.SetOptions(opts)
		m.mode = reviewModeOptions
		m.fieldInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	return m, cmd
}

func (m *reviewModel) updateSavePath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = reviewModeOptions
		m.savePathInput.Blur()
		return m, nil

	case "enter":
		if strings.TrimSpace(m.savePathInput.Value()) == "" {
			m.err = fmt.Errorf("save path is required")
			return m, nil
		}
		m.generating = true
		m.savePathInput.Blur()
		return m, m.generate()
	}

	var cmd tea.Cmd
	m.savePathInput, cmd = m.savePathInput.Update(msg)
	return m, cmd
}

func cycleTerms(current domain.PaymentTerms, backwards bool) domain.PaymentTerms {
	for i, t := range paymentTermsCycle {
		if t == current {
			if backwards {
				return paymentTermsCycle[(i-1+len(paymentTermsCycle))%len(paymentTermsCycle)]
			}
			return paymentTermsCycle[(i+1)%len(paymentTermsCycle)]
		}
	}
	return paymentTermsCycle[0]
}

func cycleTransport(current domain.TransportMode, backwards bool) domain.TransportMode {
	for i, t := range transportCycle {
		if t == current {
			if backwards {
				return transportCycle[(i-1+len(transportCycle))%len(transportCycle)]
			}
			return transportCycle[(i+1)%len(transportCycle)]
		}
	}
	return transportCycle[0]
}

func (m *reviewModel) View() string {
	if m.generating {
		return "Generating invoice..."
	}

	if m.showPreview {
		return m.preview + "\n" + helpStyle.Render("  p: back to review")
	}

	var s string
	s += m.viewSummary()
	s += "\n" + m.viewOptions()
	s += "\n" + m.viewTotals()

	if m.mode == reviewModeSavePath {
		s += "\n" + titleStyle.Render("Save As") + "\n"
		s += "  " + m.savePathInput.View() + "\n"
		s += helpStyle.Render("  enter: generate  esc: cancel")
	} else if m.mode == reviewModeEditField {
		s += "\n" + helpStyle.Render("  enter: apply  esc: cancel")
	} else {
		s += "\n" + helpStyle.Render("  j/k: navigate  enter/←/→: change  p: preview  g: generate  b: back")
	}

	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err))
	}

	return s
}

func (m *reviewModel) viewSummary() string {
	var s string
	s += titleStyle.Render("Review") + "\n\n"

	buyer := m.session.Buyer()
	if buyer != nil {
		s += fmt.Sprintf("  Bill To:  %s", buyer.Name)
		if buyer.GSTIN != "" {
			s += subtitleStyle.Render("  GSTIN " + buyer.GSTIN)
		}
		s += "\n"
	}

	items := m.session.Ledger().Items()
	s += fmt.Sprintf("  Items:    %d\n", len(items))
	for _, item := range items {
		line := fmt.Sprintf("    %s  x%s  %s", truncateStr(item.Record.Name, 30),
			formatQty(item.Quantity), render.FormatMoney(m.currency(), item.Amount()))
		s += subtitleStyle.Render(line) + "\n"
	}

	return s
}

func (m *reviewModel) viewOptions() string {
	opts := m.session.Options()

	labels := [optCount]string{"Payment Terms:", "Due Date:", "Dispatch:", "Vehicle No:", "Notes:"}
	values := [optCount]string{
		opts.PaymentTerms.Label(),
		opts.DueDate.Format("02 Jan 2006"),
		opts.TransportMode.Label(),
		opts.VehicleNo,
		truncateStr(opts.Notes, 40),
	}

	var s string
	s += titleStyle.Render("Options") + "\n"
	for i := 0; i < optCount; i++ {
		indicator := "  "
		labelStyle := subtitleStyle
		if m.mode != reviewModeSavePath && i == m.optionFoc {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		value := values[i]
		if value == "" {
			value = subtitleStyle.Render("(none)")
		}
		if m.mode == reviewModeEditField && i == m.optionFoc {
			value = m.fieldInput.View()
		}
		s += fmt.Sprintf("%s%-15s %s\n", indicator, labelStyle.Render(labels[i]), value)
	}
	return s
}

func (m *reviewModel) viewTotals() string {
	items := m.session.Ledger().Items()
	rate := m.app.Config.Invoice.TaxRatePercent
	prevBalance := 0.0
	if buyer := m.session.Buyer(); buyer != nil {
		prevBalance = buyer.Balance
	}

	totals, err := service.ComputeTotals(items, rate, prevBalance)

	var s string
	s += titleStyle.Render("Totals") + "\n"

	row := func(label string, amount float64) string {
		return fmt.Sprintf("  %s%s\n",
			totalLabelStyle.Render(fmt.Sprintf("%-18s", label)),
			totalValueStyle.Render(render.FormatMoney(m.currency(), amount)))
	}

	s += row("Subtotal", totals.Subtotal)
	if totals.TaxAmount > 0 {
		s += row(fmt.Sprintf("IGST @ %s%%", formatQty(rate)), totals.TaxAmount)
	}
	if totals.RoundOff != 0 {
		s += row("Round Off", totals.RoundOff)
	}
	s += row("Grand Total", totals.GrandTotal)
	if prevBalance != 0 {
		s += row("Previous Balance", prevBalance)
		s += row("Balance Due", totals.RunningBalance)
	}

	if err != nil {
		s += lipgloss.NewStyle().Foreground(warningColor).
			Render("  Totals could not be verified; showing safe fallback.") + "\n"
	}

	return s
}

func (m *reviewModel) currency() string {
	return m.app.Config.Invoice.CurrencyPrefix
}
