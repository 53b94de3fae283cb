package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the TUI
type keyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Focus  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
	// QuitResults quits only when the results have focus, so q can still be typed.
	QuitResults key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Next: key.NewBinding(
		key.WithKeys("pgdown", "right", "l", "n"),
		key.WithHelp("→/n", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("pgup", "left", "h", "p"),
		key.WithHelp("←/p", "previous page"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll answer"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll answer"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	QuitResults: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// inputHelp lists the bindings shown while typing.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Quit}
}

// resultsHelp lists the bindings shown while browsing results.
func (k keyMap) resultsHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Down, k.Focus, k.QuitResults}
}

// loadingHelp lists the bindings shown while a request is in flight.
func (k keyMap) loadingHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Quit}
}
