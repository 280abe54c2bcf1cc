package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-currencyfield/pkg/config"
)

type scriptedKeys struct {
	runes []rune
	pos   int
}

func keys(parts ...any) *scriptedKeys {
	s := &scriptedKeys{}
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			s.runes = append(s.runes, []rune(v)...)
		case rune:
			s.runes = append(s.runes, v)
		}
	}
	return s
}

func (s *scriptedKeys) ReadRune() (rune, int, error) {
	if s.pos >= len(s.runes) {
		return 0, 0, io.EOF
	}
	r := s.runes[s.pos]
	s.pos++
	return r, 1, nil
}

type screen struct {
	bytes.Buffer
}

func (s *screen) Fd() uintptr { return 0 }

func runSession(t *testing.T, f config.Field, input *scriptedKeys) (Result, string, error) {
	t.Helper()
	out := &screen{}
	s, err := NewSession(f, out, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	res, err := s.Loop(context.Background(), input)
	return res, out.String(), err
}

var _ terminal.FileWriter = (*screen)(nil)

func TestSessionTypingAndSubmit(t *testing.T) {
	f := config.Field{Locale: "en-US", Name: "amount", Symbol: "$"}
	res, out, err := runSession(t, f, keys("1234.5", terminal.KeyEnter))
	if err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if res.Text != "1,234.50" || res.Value != 1234.5 {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.Contains(out, "amount ($): $1,234.50") {
		t.Fatalf("final line not drawn: %q", out)
	}
	if !strings.Contains(out, "\x1b[2K") {
		t.Fatalf("expected line erase sequences in %q", out)
	}
}

func TestSessionBackspace(t *testing.T) {
	res, _, err := runSession(t, config.Field{Locale: "en-US"}, keys("12", terminal.KeyDelete, "3", terminal.KeyEnter))
	if err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if res.Text != "13" {
		t.Fatalf("expected 13, got %q", res.Text)
	}
}

func TestSessionNavigationAndForwardDelete(t *testing.T) {
	input := keys("1234", terminal.SpecialKeyHome, terminal.SpecialKeyDelete, terminal.KeyEnter)
	res, _, err := runSession(t, config.Field{Locale: "en-US"}, input)
	if err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if res.Text != "234" {
		t.Fatalf("expected 234, got %q", res.Text)
	}
}

func TestSessionArrowInsertKeepsCaret(t *testing.T) {
	input := keys("1000", terminal.KeyArrowLeft, terminal.KeyArrowLeft, terminal.KeyArrowLeft, "5")
	out := &screen{}
	s, err := NewSession(config.Field{Locale: "en-US"}, out, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.Loop(context.Background(), input); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if got := s.Controller().Text(); got != "15,000" {
		t.Fatalf("expected 15,000, got %q", got)
	}
}

func TestSessionInterrupt(t *testing.T) {
	_, _, err := runSession(t, config.Field{Locale: "en-US"}, keys("12", terminal.KeyInterrupt))
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSessionSymbolAtEnd(t *testing.T) {
	f := config.Field{Locale: "de-DE", Symbol: "€", SymbolPosition: config.SymbolEnd}
	res, out, err := runSession(t, f, keys("99,5"))
	if err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if res.Text != "99,50" {
		t.Fatalf("expected 99,50, got %q", res.Text)
	}
	if !strings.Contains(out, "Amount (€): 99,50 €") {
		t.Fatalf("unexpected screen %q", out)
	}
}
