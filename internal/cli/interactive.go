package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/contentplan/internal/cli/formatter"
	"github.com/alexanderramin/contentplan/internal/llm"
)

func chooseProvider(title string, providers []llm.Provider) (llm.Provider, error) {
	options := make([]huh.Option[llm.Provider], 0, len(providers))
	for _, p := range providers {
		options = append(options, huh.NewOption(p.DisplayName(), p))
	}

	var choice llm.Provider
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[llm.Provider]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func confirm(question string) (bool, error) {
	ok := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// withSpinner runs fn, animating message on stderr when attached to a terminal.
func withSpinner(app *App, cmd *cobra.Command, message string, fn func() error) error {
	if app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), message)
		defer stop()
	}
	return fn()
}
