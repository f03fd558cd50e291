package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Step navigation
	Next key.Binding
	Prev key.Binding

	// Actions
	Select   key.Binding
	Search   key.Binding
	Pane     key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Generate key.Binding
	IncQty   key.Binding
	DecQty   key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next step")),
	Prev:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "previous step")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Pane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
	Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear items")),
	Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
	IncQty:   key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "qty +1")),
	DecQty:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "qty -1")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
