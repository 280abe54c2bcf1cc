// Package caret keeps the insertion point on the digit the user was editing
// while the formatter adds or removes separators around it.
//
// Positions are anchored on digits instead of raw offsets. In the integer
// part the anchor is the number of integer digits to the right of the caret,
// which survives grouping changes as well as leading zeros being dropped or
// added. In the fractional part the anchor is the number of fraction digits
// to the left of the caret, which survives truncation of trailing digits.
// Because the anchors come from separator tables rather than from length
// deltas, grouping that is not in threes (en-IN) is handled the same way.
package caret

// Input describes one reconciliation.
type Input struct {
	// Raw is the text after the host applied the edit, before formatting.
	Raw string
	// Caret is the host caret inside Raw.
	Caret int
	// Formatted is the text the field is about to display.
	Formatted string

	Group   rune
	Decimal rune

	// Reference is the offset just past the rune typed by the last keydown
	// that was not suppressed, -1 when none. The caret never ends more than
	// one rune left of it.
	Reference int
	// Pasted places the caret at the end of Formatted.
	Pasted bool
}

// Reconcile returns the caret position inside Formatted.
func Reconcile(in Input) int {
	after := Boundaries(in.Formatted, in.Group, in.Decimal)
	if in.Pasted {
		return after.Length
	}
	if after.Length == 0 {
		return 0
	}

	before := Boundaries(in.Raw, in.Group, in.Decimal)
	caret := clamp(in.Caret, 0, before.Length)

	var pos int
	if before.Decimal >= 0 && caret > before.Decimal {
		fraction := caret - before.Decimal - 1
		if after.Decimal < 0 {
			pos = after.Length
		} else {
			pos = after.Decimal + 1 + fraction
		}
	} else {
		pos = after.PositionWithDigitsRight(before.DigitsRightOf(caret))
	}

	if in.Reference >= 0 && in.Reference > pos && after.Length >= before.Length {
		pos++
	}
	return clamp(pos, 0, after.Length)
}

// Rejected returns the caret for an edit that was rolled back. hostCaret is
// the host caret after the discarded edit was applied.
func Rejected(hostCaret, restoredLength int) int {
	return clamp(hostCaret-1, 0, restoredLength)
}

// Shift reports how many grouping separators appeared (positive) or
// vanished (negative) to the left of the caret between raw and formatted.
func Shift(in Input) int {
	before := Boundaries(in.Raw, in.Group, in.Decimal)
	after := Boundaries(in.Formatted, in.Group, in.Decimal)
	pos := Reconcile(in)
	return after.GroupsLeftOf(pos) - before.GroupsLeftOf(clamp(in.Caret, 0, before.Length))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
