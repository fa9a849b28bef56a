package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/contentplan/internal/domain"
)

// DefaultPostCount is used when the briefing lists no weekly contents.
const DefaultPostCount = 5

// generationSystemPrompt fixes the output contract for the generator models.
const generationSystemPrompt = `You are a senior social media strategist writing a weekly Instagram content plan.
You will receive a client briefing in JSON. Produce ONE JSON object with these exact keys:
- weekly_strategy_summary: string, the plan for the week in one paragraph
- future_strategy: string, what to do in the following weeks
- market_references: array of {"Nome/Handle", "Diferenciais", "Oportunidades", "Posicionamento do Cliente"}
- metricas_de_sucesso_sugeridas: {"objetivo_principal": string, "indicadores_chave": string[], "metricas_secundarias": string[]}
- posts: array with exactly the requested number of posts, each with:
  - titulo, tema, legenda_principal (up to 2200 characters), variacoes_legenda (string[])
  - hashtags (string[], 8 to 15 items, each starting with #)
  - post_strategy_rationale, sugestao_formato ("Carrossel", "Reels" or "Imagem estática")
  - micro_briefing (string) or carrossel_slides ([{"titulo_slide", "texto_slide", "sugestao_visual_slide"}])
  - micro_roteiro ([{"cena", "descricao", "fala"}]) for video formats
  - cta_individual, interacao
  - response_script ([{"comentario_generico", "resposta_sugerida", "comentario_negativo", "resposta_negativo"}])
  - visual_description_portuguese, text_in_image, visual_prompt_suggestion
  - indicador_principal, ab_test_suggestions, optimization_triggers

RULES:
1. Write all content in Brazilian Portuguese; keep the keys exactly as listed
2. Follow the client's tone of voice and brand vocabulary
3. Each post must serve the matching weekly objective when one is given
4. Use strict JSON: double quotes, no comments, no trailing commas, numbers like 0.8 never .8
5. Output ONLY the JSON object, no markdown, no explanation`

// Generation builds the weekly generation request for one provider. The
// post count follows the briefing's weekly contents.
func Generation(b domain.ClientBriefing, start time.Time) Prompt {
	themes := b.WeeklyThemes()
	count := len(themes)
	if count == 0 {
		count = DefaultPostCount
	}

	var user strings.Builder
	fmt.Fprintf(&user, "Client briefing:\n%s\n\n", indentJSON(b))
	if !start.IsZero() {
		fmt.Fprintf(&user, "The week starts on %s.\n", start.Format("2006-01-02"))
	}
	fmt.Fprintf(&user, "Generate exactly %d posts.\n", count)
	if len(themes) > 0 {
		user.WriteString("\nWeekly objectives, one per post in order:\n")
		for i, theme := range themes {
			fmt.Fprintf(&user, "%d. %s\n", i+1, theme)
		}
	}
	return Prompt{System: generationSystemPrompt, User: user.String()}
}
