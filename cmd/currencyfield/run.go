package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-currencyfield/pkg/renderers/bubble"
	"github.com/goliatone/go-currencyfield/pkg/renderers/tui"
	"github.com/goliatone/go-currencyfield/pkg/watch"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		watchConfig bool
		info        bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Edit a field in a full-screen terminal UI",
		Long:  `Run the interactive field. With --info the string value, numerical value and range flags are shown live. With --watch the field is rebuilt whenever the config file changes, keeping the current value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if watchConfig && opts.configPath == "" {
				return errors.New("--watch requires --config")
			}

			f, err := opts.resolve(ctx)
			if err != nil {
				return err
			}

			model, err := bubble.New(f, bubble.WithInfo(info), bubble.WithLogger(opts.logger))
			if err != nil {
				return err
			}

			program := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
				tea.WithReportFocus(),
			)

			if watchConfig {
				stop, err := opts.watchConfig(ctx, program)
				if err != nil {
					return err
				}
				defer stop()
			}

			final, err := program.Run()
			if err != nil {
				return err
			}
			m, ok := final.(*bubble.Model)
			if !ok {
				return fmt.Errorf("unexpected model %T", final)
			}
			if m.Aborted() {
				return tui.ErrAborted
			}

			ctrl := m.Controller()
			return writeResult(cmd.OutOrStdout(), output, tui.Result{
				Name:          f.Name,
				Text:          ctrl.Text(),
				Value:         ctrl.Value(),
				MaxExceeded:   ctrl.MaxFlag(),
				MinNotReached: ctrl.MinFlag(),
			})
		},
	}

	cmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "rebuild the field when the config file changes")
	cmd.Flags().BoolVar(&info, "info", false, "show the field state panel")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "result format (json, pretty)")
	return cmd
}

// watchConfig sends a ReloadMsg to program after every settled config edit.
// A config that fails to load keeps the current field.
func (o *rootOptions) watchConfig(ctx context.Context, program *tea.Program) (func(), error) {
	w, err := watch.New(watch.Config{Path: o.configPath, Logger: o.logger})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		_ = w.Run(ctx)
	}()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.Changes():
				next, err := o.resolve(ctx)
				if err != nil {
					o.logger.Warn("config reload failed", "path", o.configPath, "error", err)
					continue
				}
				o.logger.Info("config reloaded", "path", o.configPath, "field", next.Name)
				program.Send(bubble.ReloadMsg{Field: next})
			}
		}
	}()

	return func() {
		cancel()
		_ = w.Stop()
	}, nil
}
