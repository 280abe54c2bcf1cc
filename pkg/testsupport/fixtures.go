// Package testsupport holds helpers shared by the field and renderer tests:
// golden files, config fixtures and scripted key replays.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/edit"
	"github.com/goliatone/go-currencyfield/pkg/field"
)

// MustLoadField reads a config fixture and returns the named field.
func MustLoadField(t *testing.T, path, name string) config.Field {
	t.Helper()

	store, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	f, err := store.Field(name)
	if err != nil {
		t.Fatalf("fixture field %q: %v", name, err)
	}
	return f
}

// Step is the state of a field after one scripted key.
type Step struct {
	Key     string `json:"key"`
	Text    string `json:"text"`
	Caret   int    `json:"caret"`
	MaxFlag bool   `json:"maxFlag,omitempty"`
	MinFlag bool   `json:"minFlag,omitempty"`
}

// Replay presses every key of script on a controller bound to buf and
// records the result of each. Keys are single runes or one of <bs>, <del>,
// <left>, <right>, <home>, <end> and <blur>.
func Replay(t *testing.T, ctrl *field.Controller, buf *field.Buffer, script []string) []Step {
	t.Helper()

	steps := make([]Step, 0, len(script))
	for _, token := range script {
		if err := press(ctrl, buf, token); err != nil {
			t.Fatalf("replay %q: %v", token, err)
		}
		steps = append(steps, Step{
			Key:     token,
			Text:    buf.Text(),
			Caret:   buf.Caret(),
			MaxFlag: ctrl.MaxFlag(),
			MinFlag: ctrl.MinFlag(),
		})
	}
	return steps
}

// Keys splits a plain string into single-rune tokens.
func Keys(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

func press(ctrl *field.Controller, buf *field.Buffer, token string) error {
	switch token {
	case "<bs>":
		return ctrl.Press(edit.Backspace())
	case "<del>":
		return ctrl.Press(edit.Delete())
	case "<left>", "<right>", "<home>", "<end>":
		ctrl.KeyDown(edit.Other())
		switch token {
		case "<left>":
			buf.Move(-1)
		case "<right>":
			buf.Move(1)
		case "<home>":
			buf.Home()
		default:
			buf.End()
		}
		return nil
	case "<blur>":
		ctrl.Blur()
		return nil
	}
	runes := []rune(token)
	if len(runes) != 1 {
		return fmt.Errorf("testsupport: unknown key %q", token)
	}
	return ctrl.Press(edit.Rune(runes[0]))
}

// WriteMaybeGolden writes value as indented JSON when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, value any) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden decodes a JSON golden file into out.
func MustReadGolden(t *testing.T, path string, out any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal golden %s: %v", path, err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
