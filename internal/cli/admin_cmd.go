package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/contentplan/internal/cli/formatter"
	"github.com/alexanderramin/contentplan/internal/config"
	"github.com/alexanderramin/contentplan/internal/llm"
)

const availabilityTimeout = 5 * time.Second

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every generated file under the output directory, keeping the folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := app.Layout.Root()
			if !yes {
				if !app.interactive() {
					return errors.New("refusing to clear without --yes")
				}
				ok, err := app.Confirm(fmt.Sprintf("Delete all files under %s?", root))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing deleted."))
					return nil
				}
			}

			n, err := app.Layout.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s under %s\n", formatter.Plural(n, "file"), root)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.SaveExampleConfig(app.ConfigPath)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example config to %s\n", path)
			return nil
		},
	})
	return cmd
}

func newProvidersCmd(app *App) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List LLM providers, their models and pipeline roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := providerRows(app)
			if check {
				checkAvailability(cmd.Context(), app, rows)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProviders(rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Probe each configured provider's endpoint")
	return cmd
}

func providerRows(app *App) []formatter.ProviderRow {
	rows := make([]formatter.ProviderRow, 0, len(llm.AllProviders))
	for _, p := range llm.AllProviders {
		row := formatter.ProviderRow{
			Provider:   p,
			Model:      app.LLM.Provider(p).Model,
			Configured: app.LLM.Configured(p),
			Status:     formatter.StatusUnknown,
		}
		if slices.Contains(app.Settings.Generators, p) {
			row.Roles = append(row.Roles, "generator")
		}
		if app.Settings.Consolidator == p {
			row.Roles = append(row.Roles, "consolidator")
		}
		rows = append(rows, row)
	}
	return rows
}

// checkAvailability probes configured providers concurrently; unconfigured
// ones are marked skipped.
func checkAvailability(ctx context.Context, app *App, rows []formatter.ProviderRow) {
	var wg sync.WaitGroup
	for i := range rows {
		if !rows[i].Configured || app.Clients == nil {
			rows[i].Status = formatter.StatusSkipped
			continue
		}
		wg.Add(1)
		go func(row *formatter.ProviderRow) {
			defer wg.Done()
			client, err := app.Clients(row.Provider)
			if err != nil {
				row.Status = formatter.StatusFailed
				return
			}
			probeCtx, cancel := context.WithTimeout(ctx, availabilityTimeout)
			defer cancel()
			if client.Available(probeCtx) {
				row.Status = formatter.StatusOK
			} else {
				row.Status = formatter.StatusFailed
			}
		}(&rows[i])
	}
	wg.Wait()
}
