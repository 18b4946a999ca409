package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	tabs      [tabCount]key.Binding

	editNames key.Binding
	editDate  key.Binding
	reset     key.Binding

	prevMonth key.Binding
	nextMonth key.Binding
	today     key.Binding
	save      key.Binding
	remove    key.Binding

	add    key.Binding
	rename key.Binding
	copy   key.Binding

	language key.Binding
	export   key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	tabs: [tabCount]key.Binding{
		key.NewBinding(key.WithKeys("1")),
		key.NewBinding(key.WithKeys("2")),
		key.NewBinding(key.WithKeys("3")),
		key.NewBinding(key.WithKeys("4")),
		key.NewBinding(key.WithKeys("5")),
	},

	editNames: key.NewBinding(key.WithKeys("e")),
	editDate:  key.NewBinding(key.WithKeys("s")),
	reset:     key.NewBinding(key.WithKeys("r")),

	prevMonth: key.NewBinding(key.WithKeys("[")),
	nextMonth: key.NewBinding(key.WithKeys("]")),
	today:     key.NewBinding(key.WithKeys("t")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	remove:    key.NewBinding(key.WithKeys("d", "ctrl+d")),

	add:    key.NewBinding(key.WithKeys("a")),
	rename: key.NewBinding(key.WithKeys("n")),
	copy:   key.NewBinding(key.WithKeys("c")),

	language: key.NewBinding(key.WithKeys("L")),
	export:   key.NewBinding(key.WithKeys("x")),

	yes: key.NewBinding(key.WithKeys("y", "enter")),
	no:  key.NewBinding(key.WithKeys("n", "esc")),
}
