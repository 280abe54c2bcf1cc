package bubble

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the field reacts to. Printable runes that match
// no binding are typed into the field.
type KeyMap struct {
	Submit    key.Binding
	Quit      key.Binding
	Toggle    key.Binding
	Info      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
}

// DefaultKeyMap mirrors the editing keys of a browser text input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus/blur")),
		Info:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "field info")),
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
	}
}

// ShortHelp lists the bindings worth showing under the field.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.Info, k.Quit}
}
