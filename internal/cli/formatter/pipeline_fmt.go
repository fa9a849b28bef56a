package formatter

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/service"
)

const errorColumnWidth = 60

// FormatPipeline renders a full run: one row per generator, then the
// summary, consolidation and report files.
func FormatPipeline(res *service.PipelineResult) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Pipeline run"))
	b.WriteString("\n")
	b.WriteString(KeyValue("run", Dim(res.RunID)))
	b.WriteString("\n\n")

	var rows [][]string
	seen := map[llm.Provider]bool{}
	for _, g := range res.Generated {
		seen[g.Provider] = true
		if err, failed := res.Failed[g.Provider]; failed {
			rows = append(rows, []string{g.Provider.DisplayName(), StatusIndicator(StatusFailed), strconv.Itoa(g.PostCount), Truncate(err.Error(), errorColumnWidth)})
			continue
		}
		rows = append(rows, []string{g.Provider.DisplayName(), StatusIndicator(StatusOK), strconv.Itoa(g.PostCount), g.Path})
	}
	for _, p := range slices.Sorted(maps.Keys(res.Failed)) {
		if seen[p] {
			continue
		}
		rows = append(rows, []string{p.DisplayName(), StatusIndicator(StatusFailed), "-", Truncate(res.Failed[p].Error(), errorColumnWidth)})
	}
	b.WriteString(RenderTable([]string{"PROVIDER", "STATUS", "POSTS", "FILE"}, rows))

	if res.Summary != nil {
		b.WriteString("\n")
		b.WriteString(FormatSummary(res.Summary))
	}
	if res.Consolidated != nil {
		b.WriteString("\n")
		b.WriteString(FormatConsolidate(res.Consolidated))
	}
	return b.String()
}

func FormatGenerate(res *service.GenerateResult) string {
	return fmt.Sprintf("%s %s generated %s\n  %s\n",
		StatusIndicator(StatusOK), Bold(res.Provider.DisplayName()), Plural(res.PostCount, "post"), Dim(res.Path))
}

func FormatExtract(res *service.ExtractResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s extracted %s\n  %s\n",
		StatusIndicator(StatusOK), Bold(res.Provider.DisplayName()), Plural(res.PostCount, "post"), Dim(res.Path))
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("!"), w)
	}
	return b.String()
}

// FormatSummary lists the per-provider summaries in provider order.
func FormatSummary(res *service.SummaryResult) string {
	var b strings.Builder
	for _, p := range slices.Sorted(maps.Keys(res.Paths)) {
		fmt.Fprintf(&b, "%s %s summary\n  %s\n", StatusIndicator(StatusOK), Bold(p.DisplayName()), Dim(res.Paths[p]))
	}
	for _, p := range res.Skipped {
		fmt.Fprintf(&b, "%s %s %s\n", StatusIndicator(StatusSkipped), Bold(p.DisplayName()), Dim("no posts file"))
	}
	b.WriteString(KeyValue("combined", res.CombinedPath))
	b.WriteString("\n")
	return b.String()
}

func FormatConsolidate(res *service.ConsolidateResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s consolidated by %s\n  %s\n", StatusIndicator(StatusOK), Bold(res.Provider.DisplayName()), Dim(res.Path))
	if res.Render != nil {
		b.WriteString(FormatRender(res.Render))
	}
	return b.String()
}

func FormatRender(res *service.RenderResult) string {
	return fmt.Sprintf("%s\n%s\n",
		KeyValue("html", res.HTMLPath),
		KeyValue("pdf", res.PDFPath))
}
