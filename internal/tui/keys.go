package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"schoolbag/internal/i18n"
)

// KeyMap 定义全局快捷键绑定
// KeyMap defines global keybindings
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Next        key.Binding
	Prev        key.Binding
	Select      key.Binding
	Back        key.Binding
	EditSubject key.Binding
	Quit        key.Binding
}

// DefaultKeyMap 默认快捷键
// DefaultKeyMap returns default keybindings with help text from locale
func DefaultKeyMap(locale *i18n.I18n) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", locale.T("keys.move")),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", locale.T("keys.select")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", locale.T("keys.back")),
		),
		EditSubject: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", locale.T("keys.edit")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", locale.T("keys.quit")),
		),
	}
}
