package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-currencyfield/pkg/render"
	"github.com/goliatone/go-currencyfield/pkg/renderers/tui"
	"github.com/goliatone/go-currencyfield/pkg/renderers/vanilla"
)

func newRegistry(opts *rootOptions) (*render.Registry, error) {
	html, err := vanilla.New(vanilla.WithLogger(opts.logger))
	if err != nil {
		return nil, err
	}
	prompt, err := tui.New(tui.WithLogger(opts.logger))
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, prompt)
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		renderer string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the selected field with a named renderer",
		Long:  `Render the selected field with one of the registered renderers. vanilla prints markup, tui prompts on the terminal and prints the result as JSON.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := newRegistry(opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if list {
				for _, name := range registry.Names() {
					r, _ := registry.Get(name)
					if _, err := w.Write([]byte(name + "\t" + r.ContentType() + "\n")); err != nil {
						return err
					}
				}
				return nil
			}

			f, err := opts.resolve(cmd.Context())
			if err != nil {
				return err
			}
			out, err := registry.Render(cmd.Context(), renderer, f)
			if err != nil {
				return err
			}
			_, err = w.Write(append(out, '\n'))
			return err
		},
	}

	cmd.Flags().StringVarP(&renderer, "renderer", "r", "vanilla", "renderer name")
	cmd.Flags().BoolVar(&list, "list", false, "list the registered renderers")
	return cmd
}
