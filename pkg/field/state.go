package field

import "github.com/goliatone/go-currencyfield/pkg/edit"

// EditState carries the per-keystroke flags from a keydown or paste to the
// text change that follows it. It never outlives one event cycle.
type EditState struct {
	Suppress bool
	Pasted   bool
	// CaretBefore is the caret when the key went down.
	CaretBefore int
	// Reference is the offset just past the typed rune, -1 when the last
	// keydown did not insert text or was suppressed.
	Reference int
	Key       edit.Key
}

func freshState() EditState {
	return EditState{Reference: -1}
}

// Snapshot is a read-only view of the field.
type Snapshot struct {
	Text    string
	Value   float64
	Caret   int
	MaxFlag bool
	MinFlag bool
}
