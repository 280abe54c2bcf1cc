package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/renderers/vanilla"
)

func newHTMLCmd(opts *rootOptions) *cobra.Command {
	var (
		page      bool
		title     string
		output    string
		templates string
	)

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Render field markup",
		Long:  `Render the selected field as HTML. With --page every configured field is rendered into a standalone document.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			r, err := vanilla.New(
				vanilla.WithTemplatesDir(templates),
				vanilla.WithInlineStylesheet(true),
				vanilla.WithLogger(opts.logger),
			)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			if !page {
				f, err := opts.resolve(ctx)
				if err != nil {
					return err
				}
				out, err := r.Render(ctx, f)
				if err != nil {
					return err
				}
				_, err = w.Write(out)
				return err
			}

			store, err := opts.store(ctx)
			if err != nil {
				return err
			}
			fields := make([]config.Field, 0, len(store.Names()))
			for _, name := range store.Names() {
				f, err := store.Field(name)
				if err != nil {
					return err
				}
				if !opts.noEnv {
					if f, err = config.FromEnv(f); err != nil {
						return err
					}
				}
				fields = append(fields, f)
			}
			if err := r.Page(ctx, title, fields, w); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Page written to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&page, "page", false, "render every field into a standalone page")
	cmd.Flags().StringVar(&title, "title", "Currency fields", "page title")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&templates, "templates", "", "directory overriding the bundled templates")
	return cmd
}
