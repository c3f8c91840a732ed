package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyHome KeyName = iota
	KeySearch
	KeyNotifications
	KeySettings

	KeyPrev      // Key for moving to the tab on the left
	KeyNext      // Key for moving to the tab on the right
	KeyCycle     // Tab cycles forward through the tabs.
	KeyCycleBack // Shift+Tab cycles backward.

	KeyCancel // Key for cancelling an in-progress drag
	KeyHelp   // Key for toggling the full help view
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"1":         KeyHome,
	"2":         KeySearch,
	"3":         KeyNotifications,
	"4":         KeySettings,
	"left":      KeyPrev,
	"h":         KeyPrev,
	"right":     KeyNext,
	"l":         KeyNext,
	"tab":       KeyCycle,
	"shift+tab": KeyCycleBack,
	"esc":       KeyCancel,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyHome: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "search"),
	),
	KeyNotifications: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "notifications"),
	),
	KeySettings: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "settings"),
	),
	KeyPrev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev tab"),
	),
	KeyNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next tab"),
	),
	KeyCycle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle"),
	),
	KeyCycleBack: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("⇧tab", "cycle back"),
	),
	KeyCancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "drop drag"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// KeyMap adapts the global bindings to bubbles/help.
type KeyMap struct{}

// ShortHelp implements help.KeyMap.
func (KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyPrev],
		GlobalkeyBindings[KeyNext],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

// FullHelp implements help.KeyMap.
func (KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			GlobalkeyBindings[KeyHome],
			GlobalkeyBindings[KeySearch],
			GlobalkeyBindings[KeyNotifications],
			GlobalkeyBindings[KeySettings],
		},
		{
			GlobalkeyBindings[KeyPrev],
			GlobalkeyBindings[KeyNext],
			GlobalkeyBindings[KeyCycle],
			GlobalkeyBindings[KeyCycleBack],
		},
		{
			GlobalkeyBindings[KeyCancel],
			GlobalkeyBindings[KeyHelp],
			GlobalkeyBindings[KeyQuit],
		},
	}
}
