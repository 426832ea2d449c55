// keys.go - Key bindings for the table view and modals
package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Left     key.Binding
	Right    key.Binding
	Sort     key.Binding
	Reload   key.Binding
	Copy     key.Binding
	Help     key.Binding
	Version  key.Binding
	Quit     key.Binding
	Close    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "Up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "Down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "Page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "Page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "Top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "Bottom")),
		Left:     key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "Prev column")),
		Right:    key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "Next column")),
		Sort:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "Sort")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reinit")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "Copy HTML")),
		Help:     key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "Help")),
		Version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Ver")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Close:    key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "Close")),
	}
}

// footerBindings are the shortcuts listed under the table.
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Sort, k.Reload, k.Copy, k.Help, k.Version, k.Quit}
}
