// Package bubble renders a currency field as a Bubble Tea component. Every
// keystroke goes through the same field controller a browser input would
// use, so typing, deleting and pasting behave identically in the terminal.
package bubble

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/edit"
	"github.com/goliatone/go-currencyfield/pkg/field"
)

// SetValueMsg replaces the field value from outside, as a parent form would.
type SetValueMsg struct {
	Value float64
}

// ReloadMsg swaps the field configuration. The current numeric value is
// carried over to the new field.
type ReloadMsg struct {
	Field config.Field
}

// Model is the Bubble Tea model of one currency field.
type Model struct {
	cfg    config.Field
	buf    *field.Buffer
	ctrl   *field.Controller
	keys   KeyMap
	styles Styles
	logger *slog.Logger
	extra  []field.Option

	focused   bool
	showInfo  bool
	submitted bool
	aborted   bool
	err       error
}

// New builds a focused model for f.
func New(f config.Field, opts ...Option) (*Model, error) {
	m := &Model{
		cfg:     f,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		logger:  slog.Default(),
		focused: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if err := m.mount(f); err != nil {
		return nil, err
	}
	m.ctrl.Focus()
	return m, nil
}

func (m *Model) mount(f config.Field) error {
	buf := field.NewBuffer("")
	opts := f.Options(field.WithLogger(m.logger))
	ctrl, err := field.New(buf, append(opts, m.extra...)...)
	if err != nil {
		return fmt.Errorf("bubble: field %q: %w", f.Name, err)
	}
	m.cfg = f
	m.buf = buf
	m.ctrl = ctrl
	return nil
}

// Controller exposes the field controller.
func (m *Model) Controller() *field.Controller {
	return m.ctrl
}

// Focused reports whether the field has focus.
func (m *Model) Focused() bool {
	return m.focused
}

// Submitted reports whether the user confirmed the value with Enter.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user quit without submitting.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Err returns the last reload error, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.FocusMsg:
		m.focus()
	case tea.BlurMsg:
		m.blur()
	case SetValueMsg:
		m.ctrl.SetValue(msg.Value)
	case ReloadMsg:
		m.reload(msg.Field)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Paste {
		if m.focused {
			m.do(m.ctrl.PasteText(string(msg.Runes)))
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.Blur()
		m.submitted = true
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.focused {
			m.blur()
		} else {
			m.focus()
		}
		return nil
	case key.Matches(msg, m.keys.Info):
		m.showInfo = !m.showInfo
		return nil
	}

	if !m.focused {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.navigate(func() { m.buf.Move(-1) })
	case key.Matches(msg, m.keys.Right):
		m.navigate(func() { m.buf.Move(1) })
	case key.Matches(msg, m.keys.Home):
		m.navigate(m.buf.Home)
	case key.Matches(msg, m.keys.End):
		m.navigate(m.buf.End)
	case key.Matches(msg, m.keys.Backspace):
		m.do(m.ctrl.Press(edit.Backspace()))
	case key.Matches(msg, m.keys.Delete):
		m.do(m.ctrl.Press(edit.Delete()))
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, r := range msg.Runes {
			m.do(m.ctrl.Press(edit.Rune(r)))
		}
	}
	return nil
}

func (m *Model) focus() {
	if m.focused {
		return
	}
	m.focused = true
	m.buf.End()
	m.ctrl.Focus()
}

func (m *Model) blur() {
	if !m.focused {
		return
	}
	m.focused = false
	m.ctrl.Blur()
}

func (m *Model) navigate(move func()) {
	m.ctrl.KeyDown(edit.Other())
	move()
}

func (m *Model) reload(f config.Field) {
	current := m.ctrl.Value()
	keep := m.ctrl.Text() != ""
	if keep {
		f.Value = ""
		f.NumericalValue = &current
	}
	if err := m.mount(f); err != nil {
		m.err = err
		m.logger.Error("currency field reload failed", slog.String("field", f.Name), slog.Any("error", err))
		return
	}
	m.err = nil
	if m.focused {
		m.buf.End()
	}
}

// do logs controller errors; a Buffer always satisfies field.Editor so
// these never happen in practice.
func (m *Model) do(err error) {
	if err != nil {
		m.logger.Error("currency field edit failed", slog.Any("error", err))
	}
}

func (m *Model) View() string {
	var b strings.Builder

	label := m.cfg.Placeholder
	if m.cfg.Name != "" {
		label = m.cfg.Name
	}
	if label != "" {
		b.WriteString(m.styles.Label.Render(label))
		b.WriteString("\n")
	}

	input := m.renderInput()
	symbol := m.styles.Symbol.Render(m.cfg.DisplaySymbol())
	var line string
	switch {
	case m.cfg.DisplaySymbol() == "":
		line = input
	case m.cfg.Position() == config.SymbolEnd:
		line = lipgloss.JoinHorizontal(lipgloss.Top, input, " ", symbol)
	default:
		line = lipgloss.JoinHorizontal(lipgloss.Top, symbol, input)
	}

	box := m.styles.Box
	if m.focused {
		box = m.styles.FocusedBox
	}
	b.WriteString(box.Render(line))
	b.WriteString("\n")

	if m.ctrl.MaxFlag() {
		b.WriteString(m.styles.Warning.Render("maximum exceeded: " + m.ctrl.Locale().Format(m.ctrl.Guard().Max(), m.ctrl.Decimals())))
		b.WriteString("\n")
	}
	if m.ctrl.MinFlag() {
		b.WriteString(m.styles.Warning.Render("minimum not reached: " + m.ctrl.Locale().Format(m.ctrl.Guard().Min(), m.ctrl.Decimals())))
		b.WriteString("\n")
	}

	if m.showInfo {
		b.WriteString(m.styles.Info.Render(m.info()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m *Model) renderInput() string {
	text := []rune(m.buf.Text())
	if len(text) == 0 && !m.focused && m.cfg.Placeholder != "" {
		return m.styles.Placeholder.Render(m.cfg.Placeholder)
	}
	if !m.focused {
		return m.styles.Text.Render(string(text))
	}

	start, end := m.buf.Selection()
	if start == end {
		end = start + 1
	}
	if end > len(text) {
		// caret past the last rune
		return m.styles.Text.Render(string(text)) + m.styles.Caret.Render(" ")
	}
	return m.styles.Text.Render(string(text[:start])) +
		m.styles.Caret.Render(string(text[start:end])) +
		m.styles.Text.Render(string(text[end:]))
}

func (m *Model) info() string {
	snap := m.ctrl.Snapshot()
	return fmt.Sprintf("String value: %s\nNumerical value: %v\nMax exceeded: %t\nMin not reached: %t",
		snap.Text, snap.Value, snap.MaxFlag, snap.MinFlag)
}

func (m *Model) help() string {
	parts := make([]string, 0, 4)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
