package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/contentplan/internal/cli/formatter"
	"github.com/alexanderramin/contentplan/internal/importer"
	"github.com/alexanderramin/contentplan/internal/report"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/service"
)

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(scheduler.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

func newRenderCmd(app *App) *cobra.Command {
	var clientName, startDate, outDir string

	cmd := &cobra.Command{
		Use:   "render CONTENT.json",
		Short: "Render the HTML and PDF report for a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate(startDate)
			if err != nil {
				return err
			}
			res, err := app.Render.Render(cmd.Context(), service.RenderRequest{
				ContentPath: args[0],
				ClientName:  clientName,
				StartDate:   start,
				OutDir:      outDir,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRender(res))
			return nil
		},
	}
	cmd.Flags().StringVar(&clientName, "client", "", "Client name for the cover and file name")
	cmd.Flags().StringVar(&startDate, "start", "", "First publication day (YYYY-MM-DD, default: the plan's start_date or today)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: briefings/Consolidado under the output dir)")
	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	var startDate, slots string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calendar CONTENT.json",
		Short: "Show the publication calendar and checklist for a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := importer.LoadContent(args[0])
			if err != nil {
				return err
			}

			start, err := parseDate(startDate)
			if err != nil {
				return err
			}
			if start.IsZero() {
				start = scheduler.ResolveStartDate(content.StartDate, app.Clock)
			}

			settings := app.Settings
			if slots != "" {
				if settings.Slots, err = scheduler.ParseSlotTable(slots); err != nil {
					return err
				}
			}

			calendar, checklist := service.Schedule(content, start, settings)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"calendar": calendar, "checklist": checklist})
			}
			fmt.Fprintln(out, formatter.FormatCalendar(calendar))
			fmt.Fprint(out, formatter.FormatChecklist(checklist, settings.Locale))
			return nil
		},
	}
	cmd.Flags().StringVar(&startDate, "start", "", "First publication day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&slots, "slots", "", "Slot table override, e.g. mon@10:00,wed@18:30")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print calendar and checklist as JSON")
	return cmd
}

func newCaptionCmd(app *App) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "caption CONTENT.json N",
		Short: "Copy post N's ready-to-publish caption and hashtags to the clipboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := importer.LoadContent(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 || n > len(content.Posts) {
				return fmt.Errorf("post number must be between 1 and %d", len(content.Posts))
			}

			cards := report.BuildQuickView([]report.PostSection{{Number: n, Post: content.Posts[n-1]}})
			text := captionText(cards[0])

			out := cmd.OutOrStdout()
			if printOnly {
				fmt.Fprintln(out, text)
				return nil
			}
			if app.Clipboard == nil {
				return errors.New("no clipboard available; use --print")
			}
			if err := app.Clipboard(text); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Fprintf(out, "%s caption for post %d copied %s\n",
				formatter.StatusIndicator(formatter.StatusOK), n,
				formatter.Dim(fmt.Sprintf("(%d chars)", len([]rune(text)))))
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the caption instead of copying it")
	return cmd
}

func captionText(card report.QuickCard) string {
	parts := make([]string, 0, 2)
	if card.Caption != "" {
		parts = append(parts, card.Caption)
	}
	if card.Hashtags != "" {
		parts = append(parts, card.Hashtags)
	}
	return strings.Join(parts, "\n\n")
}
