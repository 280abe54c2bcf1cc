package field

import "github.com/goliatone/go-currencyfield/pkg/edit"

// Surface is the host text control the controller drives. Offsets are rune
// indexes. Caret reports the start of the selection when one exists.
type Surface interface {
	Text() string
	SetText(text string)
	Caret() int
	SetCaret(pos int)
	SetSelection(start, end int)
}

// Editor is a Surface that applies keys itself, the way a native input does
// between keydown and the text change notification.
type Editor interface {
	Surface
	Apply(key edit.Key) bool
	Insert(text string) bool
}

// Buffer is an in-memory Editor backed by a rune slice. It is not safe for
// concurrent use.
type Buffer struct {
	content []rune
	cursor  int
	anchor  int
}

var _ Editor = (*Buffer)(nil)

// NewBuffer creates a buffer holding text with the caret at the end.
func NewBuffer(text string) *Buffer {
	b := &Buffer{content: []rune(text)}
	b.cursor = len(b.content)
	b.anchor = b.cursor
	return b
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return string(b.content)
}

// SetText replaces the content and clamps the caret.
func (b *Buffer) SetText(text string) {
	b.content = []rune(text)
	b.cursor = b.clamp(b.cursor)
	b.anchor = b.clamp(b.anchor)
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Caret returns the selection start, or the cursor when nothing is selected.
func (b *Buffer) Caret() int {
	start, _ := b.Selection()
	return start
}

// Cursor returns the moving end of the selection.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCaret moves the caret and clears the selection.
func (b *Buffer) SetCaret(pos int) {
	b.cursor = b.clamp(pos)
	b.anchor = b.cursor
}

// SetSelection selects [start, end).
func (b *Buffer) SetSelection(start, end int) {
	b.anchor = b.clamp(start)
	b.cursor = b.clamp(end)
}

// Selection returns the ordered selection bounds.
func (b *Buffer) Selection() (int, int) {
	if b.anchor < b.cursor {
		return b.anchor, b.cursor
	}
	return b.cursor, b.anchor
}

// HasSelection reports whether a range is selected.
func (b *Buffer) HasSelection() bool {
	return b.anchor != b.cursor
}

// SelectAll selects the whole content.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.cursor = len(b.content)
}

// Apply performs the edit a native input would perform for key and reports
// whether the content changed.
func (b *Buffer) Apply(key edit.Key) bool {
	switch key.Kind {
	case edit.KeyRune:
		return b.Insert(string(key.Rune))
	case edit.KeyBackspace:
		return b.delete(-1)
	case edit.KeyDelete:
		return b.delete(1)
	default:
		return false
	}
}

// Insert replaces the selection with text.
func (b *Buffer) Insert(text string) bool {
	runes := []rune(text)
	start, end := b.Selection()
	if len(runes) == 0 && start == end {
		return false
	}

	next := make([]rune, 0, len(b.content)-(end-start)+len(runes))
	next = append(next, b.content[:start]...)
	next = append(next, runes...)
	next = append(next, b.content[end:]...)
	b.content = next

	b.cursor = start + len(runes)
	b.anchor = b.cursor
	return true
}

// Move shifts the caret by delta, collapsing any selection first.
func (b *Buffer) Move(delta int) {
	if b.HasSelection() {
		start, end := b.Selection()
		if delta < 0 {
			b.SetCaret(start)
		} else {
			b.SetCaret(end)
		}
		return
	}
	b.SetCaret(b.cursor + delta)
}

// Home moves the caret to the start.
func (b *Buffer) Home() { b.SetCaret(0) }

// End moves the caret to the end.
func (b *Buffer) End() { b.SetCaret(len(b.content)) }

func (b *Buffer) delete(direction int) bool {
	start, end := b.Selection()
	if start == end {
		if direction < 0 {
			start--
		} else {
			end++
		}
	}
	start = b.clamp(start)
	end = b.clamp(end)
	if start >= end {
		return false
	}
	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	b.anchor = start
	return true
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}
