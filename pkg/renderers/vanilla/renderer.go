// Package vanilla renders currency fields as server-side HTML. The markup
// carries the formatted initial value plus data attributes describing the
// locale and bounds, so a client script can attach its own controller.
package vanilla

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/google/uuid"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/field"
)

const (
	fieldTemplate = "templates/field.tmpl"
	pageTemplate  = "templates/page.tmpl"
)

// Option configures the renderer.
type Option func(*options)

type options struct {
	templateFS fs.FS
	newID      func() string
	logger     *slog.Logger
	stylesheet bool
	href       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(o *options) {
		o.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(o *options) {
		if path == "" {
			return
		}
		o.templateFS = os.DirFS(path)
	}
}

// WithIDGenerator overrides how ids are minted for fields without one.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithLogger sets the logger handed to the field controllers.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStylesheetHref links pages to a stylesheet served elsewhere, usually
// AssetsFS mounted by the host.
func WithStylesheetHref(href string) Option {
	return func(o *options) {
		o.href = href
	}
}

// WithInlineStylesheet embeds the bundled stylesheet in rendered pages.
func WithInlineStylesheet(inline bool) Option {
	return func(o *options) {
		o.stylesheet = inline
	}
}

// Renderer turns field configurations into HTML.
type Renderer struct {
	engine *engine
	opts   options
}

// New constructs the vanilla renderer applying any provided options.
func New(opts ...Option) (*Renderer, error) {
	o := options{
		templateFS: TemplatesFS(),
		newID:      defaultID,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	eng, err := newEngine(o.templateFS)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: configure templates: %w", err)
	}
	return &Renderer{engine: eng, opts: o}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render returns the markup of a single field.
func (r *Renderer) Render(ctx context.Context, f config.Field) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.fieldContext(f)
	if err != nil {
		return nil, err
	}
	out, err := r.engine.render(fieldTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render field %q: %w", f.Name, err)
	}
	return []byte(out), nil
}

// Page renders a standalone document holding every field, in order.
func (r *Renderer) Page(ctx context.Context, title string, fields []config.Field, w io.Writer) error {
	markup := make([]string, 0, len(fields))
	lang := ""
	for _, f := range fields {
		out, err := r.Render(ctx, f)
		if err != nil {
			return err
		}
		markup = append(markup, string(out))
		if lang == "" && f.Locale != "" {
			lang = f.Locale
		}
	}
	if lang == "" {
		lang = "en"
	}

	data := pongo2.Context{
		"title":  title,
		"lang":   lang,
		"fields": markup,
	}
	if r.opts.stylesheet {
		data["stylesheet"] = defaultStylesheet()
	}
	if r.opts.href != "" {
		data["stylesheet_href"] = r.opts.href
	}

	out, err := r.engine.render(pageTemplate, data)
	if err != nil {
		return fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// fieldContext mounts a controller for f so the markup carries exactly the
// text the interactive field would show.
func (r *Renderer) fieldContext(f config.Field) (pongo2.Context, error) {
	buf := field.NewBuffer("")
	ctrl, err := field.New(buf, f.Options(field.WithLogger(r.opts.logger))...)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: field %q: %w", f.Name, err)
	}
	format := ctrl.Locale()
	guard := ctrl.Guard()

	id := f.ID
	if id == "" {
		id = r.opts.newID()
	}

	wrapper := []string{"currency-field", "currency-field--symbol-" + string(f.Position())}
	if ctrl.MaxFlag() {
		wrapper = append(wrapper, "currency-field--max-exceeded")
	}
	if ctrl.MinFlag() {
		wrapper = append(wrapper, "currency-field--min-not-reached")
	}
	if f.ClassName != "" {
		wrapper = append(wrapper, f.ClassName)
	}

	value := ""
	if ctrl.Text() != "" {
		value = number(ctrl.Value())
	}

	return pongo2.Context{
		"wrapper_class":  strings.Join(wrapper, " "),
		"input_class":    "currency-field__input",
		"locale":         format.Locale().String(),
		"decimals":       ctrl.Decimals(),
		"group":          string(format.Group()),
		"decimal":        string(format.Decimal()),
		"max":            number(guard.Max()),
		"min":            number(guard.Min()),
		"pad_decimals":   f.PadDecimals,
		"allow_negative": f.AllowNegative,
		"auto_position":  f.AutoPosition(),
		"symbol":         sanitizeSymbol(f.DisplaySymbol()),
		"position":       string(f.Position()),
		"id":             id,
		"name":           f.Name,
		"placeholder":    f.Placeholder,
		"text":           ctrl.Text(),
		"value":          value,
		"max_flag":       ctrl.MaxFlag(),
	}, nil
}

// number renders a bound for a data attribute; infinite bounds render empty.
func number(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func defaultID() string {
	return "currency-field-" + uuid.NewString()
}
