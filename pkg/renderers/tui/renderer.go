package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/field"
)

// Renderer collects a currency value through line-oriented prompts. Each
// answer is pasted into a field controller, so the value the user confirms is
// exactly what the interactive field would have produced.
type Renderer struct {
	driver       PromptDriver
	stdio        *terminal.Stdio
	outputFormat OutputFormat
	theme        Theme
	retries      int
	logger       *slog.Logger
}

// Result is the state of a field once the user confirmed a value.
type Result struct {
	Name          string  `json:"name,omitempty"`
	Text          string  `json:"text"`
	Value         float64 `json:"value"`
	MaxExceeded   bool    `json:"maxExceeded"`
	MinNotReached bool    `json:"minNotReached"`
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		retries:      3,
		logger:       slog.Default(),
	}

	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	if r.driver == nil {
		r.driver = newSurveyDriver(r.stdio)
	}
	return r, nil
}

// Name identifies the renderer in a registry.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the media type of the serialized result.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts for f and serializes the result.
func (r *Renderer) Render(ctx context.Context, f config.Field) ([]byte, error) {
	res, err := r.Prompt(ctx, f)
	if err != nil {
		return nil, err
	}
	return r.serialize(res)
}

// Prompt asks for a value until it is within range, or the user accepts a
// value below the minimum.
func (r *Renderer) Prompt(ctx context.Context, f config.Field) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if r.driver == nil {
		return Result{}, errors.New("tui: prompt driver is nil")
	}

	buf := field.NewBuffer("")
	ctrl, err := field.New(buf, f.Options(field.WithLogger(r.logger))...)
	if err != nil {
		return Result{}, fmt.Errorf("tui: field %q: %w", f.Name, err)
	}

	for attempt := 0; ; attempt++ {
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   r.theme.PromptPrefix + displayLabel(f),
			Default:   ctrl.Text(),
			Help:      displayHelp(ctrl),
			Validator: r.validator(f),
		})
		if err != nil {
			return Result{}, err
		}

		buf.SelectAll()
		if err := ctrl.PasteText(answer); err != nil {
			return Result{}, err
		}
		ctrl.Blur()

		if !ctrl.MinFlag() {
			break
		}

		keep, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s is below the minimum of %s. Keep it?",
				withSymbol(f, ctrl.Text()), withSymbol(f, formatBound(ctrl, ctrl.Guard().Min()))),
		})
		if err != nil {
			return Result{}, err
		}
		if keep {
			break
		}
		if attempt >= r.retries {
			return Result{}, ErrBelowMin
		}
	}

	if err := r.driver.Info(ctx, r.theme.InfoPrefix+withSymbol(f, ctrl.Text())); err != nil {
		return Result{}, err
	}
	return resultOf(f, ctrl), nil
}

// validator rejects answers the field would roll back. It runs a throwaway
// controller so the real one only sees accepted answers.
func (r *Renderer) validator(f config.Field) func(string) error {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return func(answer string) error {
		scratch := field.NewBuffer("")
		ctrl, err := field.New(scratch, f.Options(field.WithLogger(quiet))...)
		if err != nil {
			return err
		}
		scratch.SelectAll()
		if err := ctrl.PasteText(answer); err != nil {
			return err
		}
		if ctrl.MaxFlag() {
			return fmt.Errorf("%s%w (%s)", r.theme.ErrorPrefix, ErrAboveMax,
				withSymbol(f, formatBound(ctrl, ctrl.Guard().Max())))
		}
		return nil
	}
}

func (r *Renderer) serialize(res Result) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatPrettyText:
		return []byte(prettyPrint(res)), nil
	default:
		return json.Marshal(res)
	}
}

func resultOf(f config.Field, ctrl *field.Controller) Result {
	return Result{
		Name:          f.Name,
		Text:          ctrl.Text(),
		Value:         ctrl.Value(),
		MaxExceeded:   ctrl.MaxFlag(),
		MinNotReached: ctrl.MinFlag(),
	}
}

func displayLabel(f config.Field) string {
	label := f.Placeholder
	if label == "" {
		label = f.Name
	}
	if label == "" {
		label = "Amount"
	}
	if symbol := f.DisplaySymbol(); symbol != "" {
		return fmt.Sprintf("%s (%s)", label, symbol)
	}
	return label
}

func displayHelp(ctrl *field.Controller) string {
	g := ctrl.Guard()
	if !g.Valid() {
		return ""
	}
	var parts []string
	if !math.IsInf(g.Min(), -1) {
		parts = append(parts, "min "+formatBound(ctrl, g.Min()))
	}
	if !math.IsInf(g.Max(), 1) {
		parts = append(parts, "max "+formatBound(ctrl, g.Max()))
	}
	return strings.Join(parts, ", ")
}

func formatBound(ctrl *field.Controller, v float64) string {
	return ctrl.Locale().Format(v, ctrl.Decimals())
}

func withSymbol(f config.Field, text string) string {
	symbol := f.DisplaySymbol()
	if symbol == "" {
		return text
	}
	if f.Position() == config.SymbolEnd {
		return text + " " + symbol
	}
	return symbol + text
}

func prettyPrint(res Result) string {
	var b strings.Builder
	if res.Name != "" {
		fmt.Fprintf(&b, "name=%s\n", res.Name)
	}
	fmt.Fprintf(&b, "text=%s\n", res.Text)
	fmt.Fprintf(&b, "value=%v\n", res.Value)
	fmt.Fprintf(&b, "maxExceeded=%t\n", res.MaxExceeded)
	fmt.Fprintf(&b, "minNotReached=%t\n", res.MinNotReached)
	return b.String()
}
