package main

import (
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-currencyfield/pkg/renderers/tui"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a field inline on the current terminal line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := opts.resolve(cmd.Context())
			if err != nil {
				return err
			}

			session, err := tui.NewSession(f, os.Stderr, opts.logger)
			if err != nil {
				return err
			}
			res, err := session.Run(cmd.Context(), terminal.Stdio{In: os.Stdin, Out: os.Stderr, Err: os.Stderr})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), output, res)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "result format (json, pretty)")
	return cmd
}
