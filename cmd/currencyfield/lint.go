package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-currencyfield/pkg/openapi"
)

var errLintViolations = errors.New("x-currency-field violations found")

func newLintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint OpenAPI documents for invalid x-currency-field extensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loader := openapi.NewLoader()

			total := 0
			for _, path := range args {
				data, err := loader.Load(ctx, openapi.FileSource(path))
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				violations, err := openapi.Lint(ctx, data)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				for _, v := range violations {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, v)
				}
				total += len(violations)
				opts.logger.Debug("document linted", "path", path, "violations", len(violations))
			}
			if total > 0 {
				return fmt.Errorf("%w: %d", errLintViolations, total)
			}
			return nil
		},
	}
}
