package edit

// KeyKind classifies the keys the decision engine cares about.
type KeyKind int

const (
	// KeyOther covers navigation and every key that does not edit text.
	KeyOther KeyKind = iota
	// KeyRune is a printable character.
	KeyRune
	// KeyBackspace deletes the character before the caret.
	KeyBackspace
	// KeyDelete deletes the character after the caret.
	KeyDelete
)

func (k KeyKind) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	default:
		return "other"
	}
}

// Key is a single keydown as reported by the host surface.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune builds a printable key.
func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

// Backspace builds a backspace key.
func Backspace() Key { return Key{Kind: KeyBackspace} }

// Delete builds a forward delete key.
func Delete() Key { return Key{Kind: KeyDelete} }

// Other builds a non-editing key.
func Other() Key { return Key{Kind: KeyOther} }

// IsDigit reports whether the key types an ASCII digit.
func (k Key) IsDigit() bool {
	return k.Kind == KeyRune && k.Rune >= '0' && k.Rune <= '9'
}

// Is reports whether the key types r.
func (k Key) Is(r rune) bool {
	return k.Kind == KeyRune && k.Rune == r
}

// Edits reports whether the key changes the text when applied.
func (k Key) Edits() bool {
	return k.Kind != KeyOther
}

func (k Key) String() string {
	if k.Kind == KeyRune {
		return string(k.Rune)
	}
	return k.Kind.String()
}
