package formatter

import (
	"strings"

	"github.com/alexanderramin/contentplan/internal/llm"
)

// ProviderRow is one line of the providers listing.
type ProviderRow struct {
	Provider   llm.Provider
	Model      string
	Configured bool
	Roles      []string
	Status     Status
}

func FormatProviders(rows []ProviderRow) string {
	var b strings.Builder
	b.WriteString(Header("Providers"))
	b.WriteString("\n")

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		configured := StyleRed.Render("no key")
		if r.Configured {
			configured = StyleGreen.Render("yes")
		}
		model := r.Model
		if model == "" {
			model = Dim("-")
		}
		roles := strings.Join(r.Roles, ", ")
		if roles == "" {
			roles = Dim("-")
		}
		table = append(table, []string{r.Provider.DisplayName(), model, configured, roles, StatusIndicator(r.Status)})
	}
	b.WriteString(RenderTable([]string{"PROVIDER", "MODEL", "CONFIGURED", "ROLE", "STATUS"}, table))
	return b.String()
}
