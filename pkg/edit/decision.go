// Package edit decides, one keystroke at a time, whether the field should
// reformat the text produced by the upcoming edit.
//
// Reformatting on every keystroke keeps grouping separators in place, but it
// gets in the way while a user is typing the fractional part: the trailing
// decimal separator of "5,000." would vanish and partially typed fractions
// would be truncated under the user's caret. While the caret sits at the tail
// of the text and the edit touches the fractional part, the engine moves to
// SuppressNextFormat and the field leaves the text alone for that edit.
package edit

// State is the per-keystroke formatting state.
type State int

const (
	// Normal lets the field reformat after the edit.
	Normal State = iota
	// SuppressNextFormat leaves the edited text untouched for one edit.
	SuppressNextFormat
)

func (s State) String() string {
	if s == SuppressNextFormat {
		return "suppress-next-format"
	}
	return "normal"
}

// Input is everything the engine looks at for one keydown. Caret is the
// position before the key is applied, counted in runes.
type Input struct {
	Text     string
	Caret    int
	Key      Key
	Decimals int
	Decimal  rune
}

// Decision is the outcome of one keydown.
type Decision struct {
	State State
	// Cancel asks the host to drop the keystroke entirely.
	Cancel bool
}

// Suppressed reports whether the next edit must bypass reformatting.
func (d Decision) Suppressed() bool {
	return d.State == SuppressNextFormat
}

// Decide runs one transition of the engine.
func Decide(in Input) Decision {
	text := []rune(in.Text)
	length := len(text)
	decimalAt := indexRune(text, in.Decimal)

	atTail := in.Decimals > 0 && in.Caret == length && length > 0

	if in.Key.Is(in.Decimal) {
		if decimalAt >= 0 || in.Decimals == 0 {
			// one decimal separator at most, none without decimals
			return Decision{State: Normal, Cancel: true}
		}
		if atTail {
			return Decision{State: SuppressNextFormat}
		}
		return Decision{State: Normal}
	}

	switch {
	case in.Key.Kind == KeyBackspace && in.Caret == 1:
		return Decision{State: SuppressNextFormat}
	case in.Key.Kind == KeyDelete && in.Caret == 0:
		return Decision{State: SuppressNextFormat}
	}

	tailKey := in.Key.Kind == KeyBackspace || in.Key.Kind == KeyDelete || in.Key.IsDigit()
	if atTail && tailKey && decimalAt >= 0 && in.Caret > decimalAt {
		if in.Key.IsDigit() && length-decimalAt-1 >= in.Decimals {
			// The fraction already holds every allowed digit. Suppressing here
			// would leave an extra digit on screen that the value drops, so the
			// key is cancelled and text and value stay in step.
			return Decision{State: Normal, Cancel: true}
		}
		return Decision{State: SuppressNextFormat}
	}

	return Decision{State: Normal}
}

func indexRune(text []rune, r rune) int {
	for i, c := range text {
		if c == r {
			return i
		}
	}
	return -1
}
