package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/edit"
	"github.com/goliatone/go-currencyfield/pkg/field"
)

// KeyReader delivers raw keys. terminal.RuneReader satisfies it once the
// terminal is in raw mode.
type KeyReader interface {
	ReadRune() (rune, int, error)
}

// Session edits a field in place on a single terminal line, reformatting on
// every keystroke the way a browser input backed by the same controller
// would.
type Session struct {
	cfg    config.Field
	buf    *field.Buffer
	ctrl   *field.Controller
	out    terminal.FileWriter
	cursor *terminal.Cursor
	label  string
}

// NewSession mounts a controller for f that draws to out.
func NewSession(f config.Field, out terminal.FileWriter, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	buf := field.NewBuffer("")
	ctrl, err := field.New(buf, f.Options(field.WithLogger(logger))...)
	if err != nil {
		return nil, fmt.Errorf("tui: field %q: %w", f.Name, err)
	}
	return &Session{
		cfg:    f,
		buf:    buf,
		ctrl:   ctrl,
		out:    out,
		cursor: &terminal.Cursor{Out: out},
		label:  displayLabel(f) + ": ",
	}, nil
}

// Controller exposes the session's field controller.
func (s *Session) Controller() *field.Controller {
	return s.ctrl
}

// Run switches the terminal to raw mode and edits until the user submits.
func (s *Session) Run(ctx context.Context, stdio terminal.Stdio) (Result, error) {
	rr := terminal.NewRuneReader(stdio)
	if err := rr.SetTermMode(); err != nil {
		return Result{}, err
	}
	defer rr.RestoreTermMode()
	return s.Loop(ctx, rr)
}

// Loop consumes keys until Enter, Ctrl+D or the end of input. Ctrl+C aborts.
func (s *Session) Loop(ctx context.Context, keys KeyReader) (Result, error) {
	s.ctrl.Focus()
	if err := s.draw(); err != nil {
		return Result{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		r, _, err := keys.ReadRune()
		if errors.Is(err, io.EOF) {
			return s.submit()
		}
		if err != nil {
			return Result{}, err
		}

		switch r {
		case terminal.KeyEnter, '\n', terminal.KeyEndTransmission:
			return s.submit()
		case terminal.KeyInterrupt:
			fmt.Fprint(s.out, "\r\n")
			return Result{}, ErrAborted
		default:
			if err := s.handle(r); err != nil {
				return Result{}, err
			}
		}

		if err := s.draw(); err != nil {
			return Result{}, err
		}
	}
}

func (s *Session) handle(r rune) error {
	switch r {
	case terminal.KeyBackspace, terminal.KeyDelete:
		return s.ctrl.Press(edit.Backspace())
	case terminal.SpecialKeyDelete:
		return s.ctrl.Press(edit.Delete())
	case terminal.KeyArrowLeft:
		s.navigate(func() { s.buf.Move(-1) })
	case terminal.KeyArrowRight:
		s.navigate(func() { s.buf.Move(1) })
	case terminal.SpecialKeyHome:
		s.navigate(s.buf.Home)
	case terminal.SpecialKeyEnd:
		s.navigate(s.buf.End)
	default:
		if unicode.IsPrint(r) {
			return s.ctrl.Press(edit.Rune(r))
		}
	}
	return nil
}

// navigate clears any pending suppression before moving the caret.
func (s *Session) navigate(move func()) {
	s.ctrl.KeyDown(edit.Other())
	move()
}

func (s *Session) submit() (Result, error) {
	s.ctrl.Blur()
	if err := s.draw(); err != nil {
		return Result{}, err
	}
	if _, err := fmt.Fprint(s.out, "\r\n"); err != nil {
		return Result{}, err
	}
	return resultOf(s.cfg, s.ctrl), nil
}

// draw repaints the line and parks the terminal cursor on the field caret.
func (s *Session) draw() error {
	if err := s.cursor.HorizontalAbsolute(int(terminal.COORDINATE_SYSTEM_BEGIN)); err != nil {
		return err
	}
	if err := terminal.EraseLine(s.out, terminal.ERASE_LINE_ALL); err != nil {
		return err
	}

	text := s.buf.Text()
	prefix := s.label
	suffix := ""
	if symbol := s.cfg.DisplaySymbol(); symbol != "" {
		if s.cfg.Position() == config.SymbolEnd {
			suffix = " " + symbol
		} else {
			prefix += symbol
		}
	}
	if _, err := fmt.Fprint(s.out, prefix+text+suffix); err != nil {
		return err
	}

	head := string([]rune(text)[:s.buf.Cursor()])
	column := terminal.StringWidth(prefix) + terminal.StringWidth(head)
	return s.cursor.HorizontalAbsolute(int(terminal.COORDINATE_SYSTEM_BEGIN) + column)
}
