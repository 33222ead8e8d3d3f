package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit key.Binding

	// modal prompt
	approve key.Binding
	reject  key.Binding

	// confirm overlay
	yes key.Binding
	no  key.Binding

	// unlock
	toggleMask key.Binding
	submit     key.Binding
	deleteAll  key.Binding
	buildInfo  key.Binding

	// authenticated navigation
	home     key.Binding
	keypairs key.Binding
	relays   key.Binding
	wallet   key.Binding
	settings key.Binding
	lock     key.Binding

	// keypairs
	up       key.Binding
	down     key.Binding
	prevPage key.Binding
	nextPage key.Binding
	add      key.Binding
	delete   key.Binding
	copy     key.Binding
	generate key.Binding
	back     key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(key.WithKeys("ctrl+c")),

	approve: key.NewBinding(key.WithKeys("y", "a")),
	reject:  key.NewBinding(key.WithKeys("n", "r")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n", "esc")),

	toggleMask: key.NewBinding(key.WithKeys("ctrl+t")),
	submit:     key.NewBinding(key.WithKeys("enter")),
	deleteAll:  key.NewBinding(key.WithKeys("ctrl+x")),
	buildInfo:  key.NewBinding(key.WithKeys("ctrl+b")),

	home:     key.NewBinding(key.WithKeys("f1", "alt+1")),
	keypairs: key.NewBinding(key.WithKeys("f2", "alt+2")),
	relays:   key.NewBinding(key.WithKeys("f3", "alt+3")),
	wallet:   key.NewBinding(key.WithKeys("f4", "alt+4")),
	settings: key.NewBinding(key.WithKeys("f5", "alt+5")),
	lock:     key.NewBinding(key.WithKeys("ctrl+l")),

	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	prevPage: key.NewBinding(key.WithKeys("left", "h")),
	nextPage: key.NewBinding(key.WithKeys("right", "l")),
	add:      key.NewBinding(key.WithKeys("a")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	back:     key.NewBinding(key.WithKeys("esc")),
}
