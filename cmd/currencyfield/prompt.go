package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-currencyfield/pkg/renderers/tui"
)

func newPromptCmd(opts *rootOptions) *cobra.Command {
	var (
		output  string
		retries int
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a value with a one-line prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := opts.resolve(cmd.Context())
			if err != nil {
				return err
			}

			r, err := tui.New(
				tui.WithOutputFormat(tui.OutputFormat(output)),
				tui.WithRetries(retries),
				tui.WithLogger(opts.logger),
				tui.WithTheme(tui.Theme{InfoPrefix: "→ ", ErrorPrefix: "✗ "}),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(cmd.Context(), f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "result format (json, pretty)")
	cmd.Flags().IntVar(&retries, "retries", 3, "times a value below the minimum is asked again")
	return cmd
}
