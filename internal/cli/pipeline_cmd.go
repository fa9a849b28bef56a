package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/contentplan/internal/cli/formatter"
	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/service"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate with every configured provider, summarize, consolidate and render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var res *service.PipelineResult
			err := withSpinner(app, cmd, "Running pipeline...", func() error {
				var runErr error
				res, runErr = app.Pipeline.Run(cmd.Context())
				return runErr
			})
			// A failed run still reports which providers got through.
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPipeline(res))
			return err
		},
	}
}

func newGenerateCmd(app *App) *cobra.Command {
	var provider llm.Provider

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ask one provider for a week of posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateWith(app, cmd, provider, false)
		},
	}
	addProviderFlag(cmd.Flags(), &provider, "Provider name or initial (gemini, cohere, mistral, openai, anthropic, ollama)")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}

// generateWith runs generate and, when extract is set, pulls the posts out
// of the fresh response.
func generateWith(app *App, cmd *cobra.Command, provider llm.Provider, extract bool) error {
	var res *service.GenerateResult
	err := withSpinner(app, cmd, fmt.Sprintf("Generating with %s...", provider.DisplayName()), func() error {
		var genErr error
		res, genErr = app.Generate.Generate(cmd.Context(), provider)
		return genErr
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGenerate(res))
	if !extract {
		return nil
	}

	ext, err := app.Extract.Extract(cmd.Context(), provider)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExtract(ext))
	return nil
}

func newExtractCmd(app *App) *cobra.Command {
	var provider llm.Provider

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Copy the posts out of a provider's newest response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Extract.Extract(cmd.Context(), provider)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExtract(res))
			return nil
		},
	}
	addProviderFlag(cmd.Flags(), &provider, "Provider whose response to extract")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}

func newSummarizeCmd(app *App) *cobra.Command {
	var providerNames []string
	var useLLM bool

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Condense each provider's posts and combine them for consolidation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			providers := app.Settings.Generators
			if len(providerNames) > 0 {
				providers = nil
				for _, name := range providerNames {
					p, err := llm.ParseProvider(name)
					if err != nil {
						return err
					}
					providers = append(providers, p)
				}
			}
			if len(providers) == 0 {
				return errors.New("no providers to summarize; pass --provider or configure pipeline.generators")
			}

			var res *service.SummaryResult
			err := withSpinner(app, cmd, "Summarizing...", func() error {
				var sumErr error
				res, sumErr = app.Summary.Summarize(cmd.Context(), providers, useLLM)
				return sumErr
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(res))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&providerNames, "provider", "p", nil, "Providers to include (repeatable, default: configured generators)")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "Let each provider condense its own posts instead of filtering fields")
	return cmd
}

func newConsolidateCmd(app *App) *cobra.Command {
	var chosen llm.Provider

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge the combined summary into the final plan and render the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := consolidator(app, chosen)
			if err != nil {
				return err
			}

			var res *service.ConsolidateResult
			err = withSpinner(app, cmd, fmt.Sprintf("Consolidating with %s...", provider.DisplayName()), func() error {
				var conErr error
				res, conErr = app.Consolidate.Consolidate(cmd.Context(), provider)
				return conErr
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConsolidate(res))
			return nil
		},
	}
	addProviderFlag(cmd.Flags(), &chosen, "Consolidating provider (default: pipeline.consolidator)")
	return cmd
}

func consolidator(app *App, chosen llm.Provider) (llm.Provider, error) {
	if chosen != "" {
		return chosen, nil
	}
	if app.Settings.Consolidator != "" {
		return app.Settings.Consolidator, nil
	}
	if len(app.Settings.Generators) > 0 {
		return app.Settings.Generators[0], nil
	}
	return "", errors.New("no consolidator configured; pass --provider")
}

func newPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a provider interactively, then generate and extract with it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("pick needs an interactive terminal; use 'contentplan generate --provider NAME'")
			}
			var choices []llm.Provider
			for _, p := range llm.AllProviders {
				if app.LLM.Configured(p) {
					choices = append(choices, p)
				}
			}
			if len(choices) == 0 {
				return errors.New("no provider is configured; see 'contentplan providers'")
			}

			provider, err := app.Choose("Generate with which provider?", choices)
			if err != nil {
				return err
			}
			return generateWith(app, cmd, provider, true)
		},
	}
}
