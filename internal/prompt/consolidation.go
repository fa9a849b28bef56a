package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/contentplan/internal/domain"
)

// ConsolidationInput is everything the consolidator sees.
type ConsolidationInput struct {
	Briefing        domain.ClientBriefing
	Strategy        StrategicAnalysis
	CombinedSummary json.RawMessage
	StartDate       time.Time
	PostCount       int
}

const consolidationSystemPrompt = `You are the lead strategist merging post ideas from several models into one final weekly plan.
You will receive the client briefing, a strategic analysis and the condensed ideas grouped by model under "resumos".

Pick the strongest ideas, remove duplicates and rewrite them in the client's voice.
Output ONE JSON object with the same keys as a generation result:
weekly_strategy_summary, future_strategy, market_references, metricas_de_sucesso_sugeridas and posts.
Every post must carry titulo, tema, legenda_principal, variacoes_legenda, hashtags, post_strategy_rationale,
sugestao_formato, micro_briefing or carrossel_slides, micro_roteiro for videos, cta_individual, interacao,
response_script, visual_description_portuguese, text_in_image, visual_prompt_suggestion, indicador_principal,
ab_test_suggestions and optimization_triggers.

RULES:
1. Write all content in Brazilian Portuguese; keep the keys exactly as listed
2. Respect the funnel stage and the tone guidance of the strategic analysis
3. Use 8 to 15 hashtags per post
4. Use strict JSON: double quotes, no comments, no trailing commas
5. Output ONLY the JSON object, no markdown, no explanation`

// Consolidation builds the request that merges combined summaries into the
// final plan.
func Consolidation(in ConsolidationInput) Prompt {
	count := in.PostCount
	if count <= 0 {
		count = len(in.Briefing.WeeklyThemes())
	}
	if count <= 0 {
		count = DefaultPostCount
	}

	var user strings.Builder
	fmt.Fprintf(&user, "Client briefing:\n%s\n\n", indentJSON(in.Briefing))
	fmt.Fprintf(&user, "Strategic analysis:\n%s\n\n", indentJSON(in.Strategy))
	fmt.Fprintf(&user, "Recommendations:\n%s\n", bulletList(in.Strategy.Recommendations))
	summary := strings.TrimSpace(string(in.CombinedSummary))
	if summary == "" {
		summary = "{}"
	}
	fmt.Fprintf(&user, "Condensed ideas:\n%s\n\n", summary)
	if !in.StartDate.IsZero() {
		fmt.Fprintf(&user, "The week starts on %s.\n", in.StartDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&user, "Produce exactly %d posts.\n", count)
	return Prompt{System: consolidationSystemPrompt, User: user.String()}
}
