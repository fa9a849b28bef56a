package cli

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/service"
	"github.com/alexanderramin/contentplan/internal/store"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Layout     *store.Layout
	Settings   service.Settings
	LLM        llm.LLMConfig
	Clients    service.ClientFactory
	Clock      scheduler.Clock
	ConfigPath string
	LogLevel   *slog.LevelVar

	Generate    service.GenerateService
	Extract     service.ExtractService
	Summary     service.SummaryService
	Consolidate service.ConsolidateService
	Render      service.RenderService
	Pipeline    service.PipelineService

	// Terminal hooks, replaced in tests.
	IsInteractive func() bool
	Choose        func(title string, providers []llm.Provider) (llm.Provider, error)
	Confirm       func(question string) (bool, error)
	Clipboard     func(text string) error
}

// NewApp wires every pipeline stage over deps. Terminal hooks default to
// a non-interactive session with the system clipboard.
func NewApp(deps service.Deps, llmCfg llm.LLMConfig, observers ...service.UseCaseObserver) *App {
	if deps.Clock == nil {
		deps.Clock = scheduler.SystemClock{}
	}
	render := service.NewRenderService(deps, observers...)
	return &App{
		Layout:   deps.Layout,
		Settings: deps.Settings,
		LLM:      llmCfg,
		Clients:  deps.Clients,
		Clock:    deps.Clock,

		Generate:    service.NewGenerateService(deps, observers...),
		Extract:     service.NewExtractService(deps, observers...),
		Summary:     service.NewSummaryService(deps, observers...),
		Consolidate: service.NewConsolidateService(deps, render, observers...),
		Render:      render,
		Pipeline:    service.NewPipelineService(deps, observers...),

		IsInteractive: func() bool { return false },
		Choose:        chooseProvider,
		Confirm:       confirm,
		Clipboard:     clipboard.WriteAll,
	}
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "contentplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "contentplan",
		Short:         "Weekly social media content planner backed by LLM providers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && app.LogLevel != nil {
				app.LogLevel.Set(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		newRunCmd(app),
		newGenerateCmd(app),
		newExtractCmd(app),
		newSummarizeCmd(app),
		newConsolidateCmd(app),
		newPickCmd(app),
		newRenderCmd(app),
		newCalendarCmd(app),
		newCaptionCmd(app),
		newClearCmd(app),
		newConfigCmd(app),
		newProvidersCmd(app),
	)

	return root
}
