package caret

// Table records where the structural runes of a number string sit. Offsets
// are rune indexes.
type Table struct {
	// Groups holds the offsets of grouping separators in the integer part.
	Groups []int
	// Integer holds the offsets of integer digits, in order.
	Integer []int
	// Decimal is the offset of the first decimal separator, -1 when absent.
	Decimal int
	// Length is the rune length of the text.
	Length int
}

// Boundaries builds the table for text. Runes that are neither digits nor
// separators (signs, symbols, stray input) are ignored.
func Boundaries(text string, group, decimal rune) Table {
	t := Table{Decimal: -1}
	for i, r := range []rune(text) {
		t.Length++
		if t.Decimal >= 0 {
			continue
		}
		switch {
		case r == decimal:
			t.Decimal = i
		case r == group:
			t.Groups = append(t.Groups, i)
		case isDigit(r):
			t.Integer = append(t.Integer, i)
		}
	}
	return t
}

// IntegerEnd is the offset just past the integer part.
func (t Table) IntegerEnd() int {
	if t.Decimal >= 0 {
		return t.Decimal
	}
	return t.Length
}

// DigitsRightOf counts integer digits at or after pos.
func (t Table) DigitsRightOf(pos int) int {
	n := 0
	for _, at := range t.Integer {
		if at >= pos {
			n++
		}
	}
	return n
}

// GroupsLeftOf counts grouping separators before pos.
func (t Table) GroupsLeftOf(pos int) int {
	n := 0
	for _, at := range t.Groups {
		if at < pos {
			n++
		}
	}
	return n
}

// PositionWithDigitsRight returns the leftmost offset in the integer part
// that has exactly n integer digits at or after it. When n exceeds the digit
// count the start of the first digit is returned.
func (t Table) PositionWithDigitsRight(n int) int {
	total := len(t.Integer)
	if n <= 0 {
		if total == 0 {
			return t.IntegerEnd()
		}
		return t.Integer[total-1] + 1
	}
	if n >= total {
		if total == 0 {
			return t.IntegerEnd()
		}
		return t.Integer[0]
	}
	// the digit that will sit just right of the caret
	return t.Integer[total-n-1] + 1
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
