// Package field wires the locale formatter, the cleaner, the edit decision
// engine, the bounds guard and the caret reconciler into one controller per
// text field.
//
// The controller never owns a widget. A host reports keydown, text change,
// paste, focus and blur events and exposes its text and caret through
// Surface; the controller rewrites both and fires the configured callbacks
// before the event handler returns. Every event runs to completion before
// the next one is handled, so a Controller must only be used from the
// goroutine that delivers the host's events.
package field

import (
	"log/slog"
	"math"
	"strings"

	"github.com/goliatone/go-currencyfield/pkg/bounds"
	"github.com/goliatone/go-currencyfield/pkg/caret"
	"github.com/goliatone/go-currencyfield/pkg/cleaner"
	"github.com/goliatone/go-currencyfield/pkg/edit"
	"github.com/goliatone/go-currencyfield/pkg/locale"
)

// Controller keeps a field's text, numeric value and caret consistent.
type Controller struct {
	cfg     config
	format  *locale.Format
	guard   bounds.Guard
	surface Surface
	logger  *slog.Logger

	text  string
	flags bounds.Result
	state EditState
}

// New builds a controller bound to surface and mounts it: an initial value,
// when configured, is clamped to min, formatted, written to the surface and
// announced through the callbacks.
func New(surface Surface, options ...Option) (*Controller, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}

	cfg := defaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.decimals < 0 {
		return nil, ErrInvalidDecimals
	}
	if cfg.allowNegative && !cfg.minSet {
		cfg.min = math.Inf(-1)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		cfg:     cfg,
		format:  locale.New(cfg.locale),
		guard:   bounds.New(cfg.max, cfg.min),
		surface: surface,
		logger:  logger,
		state:   freshState(),
		flags:   bounds.Result{Accepted: true},
	}

	if !c.guard.Valid() {
		c.logger.Warn("currency field bounds disabled: max must be greater than min",
			slog.Float64("max", cfg.max),
			slog.Float64("min", cfg.min),
			slog.String("field", cfg.name),
		)
	}

	c.mount()
	return c, nil
}

func (c *Controller) mount() {
	var (
		value float64
		given bool
	)
	switch {
	case c.cfg.value != nil:
		value = c.clean(*c.cfg.value)
		given = true
	case c.cfg.numerical != nil:
		value = *c.cfg.numerical
		given = true
	}

	if !given {
		c.surface.SetText("")
		c.surface.SetCaret(0)
		return
	}

	value = c.guard.Clamp(value)
	c.sync(c.format.Format(value, c.cfg.decimals))
}

// Locale returns the formatter used by the field.
func (c *Controller) Locale() *locale.Format {
	return c.format
}

// Guard returns the field's range.
func (c *Controller) Guard() bounds.Guard {
	return c.guard
}

// Decimals returns the configured precision.
func (c *Controller) Decimals() int {
	return c.cfg.decimals
}

// Text returns the current display text.
func (c *Controller) Text() string {
	return c.text
}

// Value returns the numeric value of the display text.
func (c *Controller) Value() float64 {
	return c.clean(c.text)
}

// MaxFlag reports whether the last edit tried to exceed max.
func (c *Controller) MaxFlag() bool {
	return c.flags.MaxFlag
}

// MinFlag reports whether the value is below min.
func (c *Controller) MinFlag() bool {
	return c.flags.MinFlag
}

// Snapshot returns the current state of the field.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Text:    c.text,
		Value:   c.Value(),
		Caret:   c.surface.Caret(),
		MaxFlag: c.flags.MaxFlag,
		MinFlag: c.flags.MinFlag,
	}
}

// KeyDown records the state for the edit key is about to make and reports
// whether the host must drop the keystroke.
func (c *Controller) KeyDown(key edit.Key) (cancel bool) {
	pos := c.surface.Caret()
	decision := edit.Decide(edit.Input{
		Text:     c.surface.Text(),
		Caret:    pos,
		Key:      key,
		Decimals: c.cfg.decimals,
		Decimal:  c.format.Decimal(),
	})

	c.state = EditState{
		Suppress:    decision.Suppressed(),
		CaretBefore: pos,
		Reference:   -1,
		Key:         key,
	}
	if !decision.Suppressed() && key.Kind == edit.KeyRune {
		c.state.Reference = pos + 1
	}
	return decision.Cancel
}

// Paste marks the next text change as a paste. Pasted text is always
// reformatted and the caret lands at the end.
func (c *Controller) Paste() {
	c.state = EditState{Pasted: true, Reference: -1}
	if c.cfg.onPaste != nil {
		c.cfg.onPaste()
	}
}

// TextChanged handles the host's text change notification. The edit is
// either accepted, and possibly reformatted, or rolled back.
func (c *Controller) TextChanged() {
	st := c.state
	c.state = freshState()

	raw := c.surface.Text()
	hostCaret := c.surface.Caret()

	if c.cfg.allowNegative && strings.TrimSpace(raw) == "-" {
		c.commit(raw, hostCaret, c.guard.Check(0))
		return
	}

	value := c.clean(raw)
	result := c.guard.Check(value)
	if !result.Accepted {
		c.reject(hostCaret, result)
		return
	}

	if st.Suppress && !st.Pasted {
		c.commit(raw, hostCaret, result)
		return
	}

	text := c.render(raw, value)
	in := caret.Input{
		Raw:       raw,
		Caret:     hostCaret,
		Formatted: text,
		Group:     c.format.Group(),
		Decimal:   c.format.Decimal(),
		Reference: st.Reference,
		Pasted:    st.Pasted,
	}
	pos := caret.Reconcile(in)
	if shift := caret.Shift(in); shift != 0 && !st.Pasted {
		c.logger.Debug("currency field separators moved",
			slog.String("field", c.cfg.name),
			slog.String("key", st.Key.String()),
			slog.Int("caret_before", st.CaretBefore),
			slog.Int("caret", pos),
			slog.Int("shift", shift),
		)
	}
	c.commit(text, pos, result)
}

// Blur reformats the text, pads a fractional part to the full precision,
// replaces an empty field with zero and re-runs the max check.
func (c *Controller) Blur() {
	c.state = freshState()

	value := c.clean(c.text)
	text := c.format.Format(value, c.cfg.decimals)

	hadFraction := strings.ContainsRune(c.text, c.format.Decimal())
	if hadFraction || c.cfg.padDecimals {
		text = c.format.Pad(text, c.cfg.decimals, true)
	}

	c.flags = c.guard.CheckBlur(value, c.flags)
	c.write(text, len([]rune(text)))
	c.notify()

	if c.cfg.onBlur != nil {
		c.cfg.onBlur()
	}
}

// Focus selects the whole text when it is a single character, so the next
// keystroke replaces it.
func (c *Controller) Focus() {
	if len([]rune(c.text)) == 1 {
		c.surface.SetSelection(0, 1)
	}
}

// SetValue replaces the value from outside the field. External values are
// never rolled back; the flags report them as they are.
func (c *Controller) SetValue(value float64) {
	c.state = freshState()
	c.sync(c.format.Format(value, c.cfg.decimals))
}

// SetText replaces the value with display text from outside the field.
func (c *Controller) SetText(text string) {
	c.state = freshState()
	if text == "" {
		c.sync("")
		return
	}
	c.sync(c.render(text, c.clean(text)))
}

// Press runs keydown, the host edit and the text change for one key on an
// Editor surface.
func (c *Controller) Press(key edit.Key) error {
	editor, ok := c.surface.(Editor)
	if !ok {
		return ErrNotEditor
	}
	if c.KeyDown(key) {
		return nil
	}
	if !editor.Apply(key) {
		c.state = freshState()
		return nil
	}
	c.TextChanged()
	return nil
}

// Type presses one key per rune of text.
func (c *Controller) Type(text string) error {
	for _, r := range text {
		if err := c.Press(edit.Rune(r)); err != nil {
			return err
		}
	}
	return nil
}

// PasteText pastes text over the current selection of an Editor surface.
func (c *Controller) PasteText(text string) error {
	editor, ok := c.surface.(Editor)
	if !ok {
		return ErrNotEditor
	}
	c.Paste()
	if !editor.Insert(text) {
		c.state = freshState()
		return nil
	}
	c.TextChanged()
	return nil
}

func (c *Controller) sync(text string) {
	value := c.clean(text)
	result := c.guard.Check(value)
	result.Accepted = true
	c.commit(text, len([]rune(text)), result)
}

func (c *Controller) reject(hostCaret int, result bounds.Result) {
	c.logger.Debug("currency field edit rejected",
		slog.String("field", c.cfg.name),
		slog.String("text", c.surface.Text()),
		slog.Float64("max", c.guard.Max()),
	)

	c.flags.MaxFlag = result.MaxFlag
	c.write(c.text, caret.Rejected(hostCaret, len([]rune(c.text))))
	if c.cfg.onMaxFails != nil {
		c.cfg.onMaxFails(c.flags.MaxFlag)
	}
}

func (c *Controller) commit(text string, pos int, result bounds.Result) {
	c.flags = bounds.Result{Accepted: true, MaxFlag: result.MaxFlag, MinFlag: result.MinFlag}
	c.write(text, pos)
	c.notify()
}

func (c *Controller) write(text string, pos int) {
	c.text = text
	c.surface.SetText(text)
	c.surface.SetCaret(pos)
}

func (c *Controller) notify() {
	if c.cfg.onChange != nil {
		c.cfg.onChange(c.text)
	}
	if c.cfg.onNumericalChange != nil {
		c.cfg.onNumericalChange(c.Value())
	}
	if c.cfg.onMaxFails != nil {
		c.cfg.onMaxFails(c.flags.MaxFlag)
	}
	if c.cfg.onMinFails != nil {
		c.cfg.onMinFails(c.flags.MinFlag)
	}
}

// render formats value, keeping empty text empty.
func (c *Controller) render(raw string, value float64) string {
	if raw == "" {
		return ""
	}
	return c.format.Format(value, c.cfg.decimals)
}

func (c *Controller) clean(text string) float64 {
	return cleaner.CleanSigned(text, c.format.Decimal(), c.cfg.allowNegative)
}
