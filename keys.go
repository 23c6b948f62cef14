package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	FastLeft  key.Binding
	FastRight key.Binding
	FastUp    key.Binding
	FastDown  key.Binding

	NewLayer  key.Binding
	NextLayer key.Binding
	PrevLayer key.Binding
	MoveDown  key.Binding
	MoveUp    key.Binding
	Duplicate key.Binding
	Delete    key.Binding

	Trace  key.Binding
	Close  key.Binding
	Cancel key.Binding

	NextFilter key.Binding
	PrevFilter key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Increase   key.Binding
	Decrease   key.Binding

	Undo    key.Binding
	Redo    key.Binding
	Refresh key.Binding

	ExportPNG key.Binding
	ExportGIF key.Binding
	ExportMap key.Binding
	Open      key.Binding

	Help key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "move cursor left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "move cursor right"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move cursor up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move cursor down"),
	),
	FastLeft: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←/H", "move cursor left 2x"),
	),
	FastRight: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→/L", "move cursor right 2x"),
	),
	FastUp: key.NewBinding(
		key.WithKeys("shift+up"),
		key.WithHelp("shift+↑", "move cursor up 2x"),
	),
	FastDown: key.NewBinding(
		key.WithKeys("shift+down"),
		key.WithHelp("shift+↓", "move cursor down 2x"),
	),

	NewLayer: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new layer"),
	),
	NextLayer: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "select next layer"),
	),
	PrevLayer: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "select previous layer"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "move layer down"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "move layer up"),
	),
	Duplicate: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "duplicate layer"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete layer"),
	),

	Trace: key.NewBinding(
		key.WithKeys("t", " "),
		key.WithHelp("t/space", "start tracing or add a point"),
	),
	Close: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "close the traced selection"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),

	NextFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "next filter"),
	),
	PrevFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "previous filter"),
	),
	NextField: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next config field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous config field"),
	),
	Increase: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "increase config value"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "decrease config value"),
	),

	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo on current layer"),
	),
	Redo: key.NewBinding(
		key.WithKeys("U"),
		key.WithHelp("U", "redo on current layer"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "re-render (new random effects)"),
	),

	ExportPNG: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "export PNG"),
	),
	ExportGIF: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "export animated GIF"),
	),
	ExportMap: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "export layer map PNG"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open image"),
	),

	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

// helpSections groups the bindings for the help screen.
func (k keyMap) helpSections() []struct {
	title    string
	bindings []key.Binding
} {
	return []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{k.Left, k.Right, k.Up, k.Down, k.FastLeft, k.FastRight, k.FastUp, k.FastDown}},
		{"Layers", []key.Binding{k.NewLayer, k.NextLayer, k.PrevLayer, k.MoveUp, k.MoveDown, k.Duplicate, k.Delete}},
		{"Selection", []key.Binding{k.Trace, k.Close, k.Cancel}},
		{"Filters", []key.Binding{k.NextFilter, k.PrevFilter, k.NextField, k.PrevField, k.Increase, k.Decrease}},
		{"History", []key.Binding{k.Undo, k.Redo, k.Refresh}},
		{"Files", []key.Binding{k.Open, k.ExportPNG, k.ExportGIF, k.ExportMap}},
		{"General", []key.Binding{k.Help, k.Quit}},
	}
}
