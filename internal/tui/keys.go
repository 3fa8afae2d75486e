package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	quit    key.Binding
	search  key.Binding
	tagNext key.Binding
	newItem key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	restore key.Binding
	sync    key.Binding
	logout  key.Binding
	save    key.Binding
	reg     key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:  key.NewBinding(key.WithKeys("/")),
	tagNext: key.NewBinding(key.WithKeys("t")),
	newItem: key.NewBinding(key.WithKeys("n")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	restore: key.NewBinding(key.WithKeys("r")),
	sync:    key.NewBinding(key.WithKeys("s")),
	logout:  key.NewBinding(key.WithKeys("L")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	reg:     key.NewBinding(key.WithKeys("ctrl+r")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
