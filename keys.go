package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Regenerate key.Binding
	Lock       key.Binding
	Strategy   key.Binding
	Mood       key.Binding
	Base       key.Binding
	Copy       key.Binding
	Share      key.Binding
	Import     key.Binding
	Export     key.Binding
	LargeText  key.Binding
	Help       key.Binding
	Quit       key.Binding
	Back       key.Binding
	Submit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys(" ", "g"),
			key.WithHelp("space/g", "regenerate"),
		),
		Lock: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lock"),
		),
		Strategy: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "strategy"),
		),
		Mood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mood"),
		),
		Base: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "base colour"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		Share: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "share"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		LargeText: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "large text"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Lock, k.Strategy, k.Copy, k.Share, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Regenerate, k.Lock},
		{k.Strategy, k.Mood, k.Base, k.LargeText},
		{k.Copy, k.Share, k.Import, k.Export},
		{k.Help, k.Back, k.Quit},
	}
}

// listKeyMap keeps only cursor movement and paging from the list's
// defaults. The list re-enables bindings as its state changes, so the
// overlapping ones are emptied rather than disabled.
func listKeyMap() list.KeyMap {
	km := list.DefaultKeyMap()
	km.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"))
	km.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"))
	km.GoToStart = key.NewBinding(key.WithKeys("home"))
	km.GoToEnd = key.NewBinding(key.WithKeys("end"))
	km.Filter = key.NewBinding()
	km.ClearFilter = key.NewBinding()
	km.ShowFullHelp = key.NewBinding()
	km.CloseFullHelp = key.NewBinding()
	km.Quit = key.NewBinding()
	km.ForceQuit = key.NewBinding()
	return km
}
