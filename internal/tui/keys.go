package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	download key.Binding
	resend   key.Binding
	copyMail key.Binding
	newItem  key.Binding
	edit     key.Binding
	dismiss  key.Binding
	pause    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	refresh:  key.NewBinding(key.WithKeys("s")),
	download: key.NewBinding(key.WithKeys("d")),
	resend:   key.NewBinding(key.WithKeys("r")),
	copyMail: key.NewBinding(key.WithKeys("c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	dismiss:  key.NewBinding(key.WithKeys("x")),
	pause:    key.NewBinding(key.WithKeys("p")),
}
