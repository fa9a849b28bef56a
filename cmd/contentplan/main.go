package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/contentplan/internal/cli"
	"github.com/alexanderramin/contentplan/internal/config"
	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/service"
	"github.com/alexanderramin/contentplan/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env, then the YAML file, then environment overrides.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	layout, err := store.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("resolving output dir: %w", err)
	}
	settings, err := cfg.ServiceSettings()
	if err != nil {
		return err
	}

	llmCfg := cfg.LLMSettings()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}

	deps := service.Deps{
		Layout:   layout,
		Settings: settings,
		Clients: func(p llm.Provider) (llm.LLMClient, error) {
			return llm.NewClient(llmCfg, p, observer)
		},
		Clock:  scheduler.SystemClock{},
		Logger: logger,
	}

	app := cli.NewApp(deps, llmCfg, service.NewSlogUseCaseObserver(logger))
	app.ConfigPath = cfg.File()
	app.LogLevel = level

	// Detect interactive terminal for pick, clear and spinners.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
