package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel   string
	logFormat  string
	configPath string
	fieldName  string
	openapi    string
	noEnv      bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "currencyfield",
		Short:         "Locale-aware currency input fields",
		Long:          `Edit, prompt for and render currency fields that format as you type, keep the caret in place and enforce a value range.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json, logfmt)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "field configuration file (JSON or YAML)")
	flags.StringVarP(&opts.fieldName, "field", "f", "", "field name; defaults to the only or first configured field")
	flags.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL to derive fields from")
	flags.BoolVar(&opts.noEnv, "no-env", false, "ignore CURRENCYFIELD_* environment overrides")

	cmd.AddCommand(
		newRunCmd(opts),
		newEditCmd(opts),
		newPromptCmd(opts),
		newHTMLCmd(opts),
		newRenderCmd(opts),
		newFieldsCmd(opts),
		newLintCmd(opts),
		newSchemaCmd(),
	)
	return cmd
}

// newLogger builds a charmbracelet/log handler behind slog.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	formatter := charmlog.TextFormatter
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
	case "json":
		formatter = charmlog.JSONFormatter
	case "logfmt":
		formatter = charmlog.LogfmtFormatter
	default:
		return nil, fmt.Errorf("invalid --log-format %q (text, json, logfmt)", format)
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "currencyfield",
	})
	return slog.New(handler), nil
}
