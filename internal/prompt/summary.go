package prompt

import (
	"fmt"

	"github.com/alexanderramin/contentplan/internal/domain"
)

const summarySystemPrompt = `You condense social media post plans for a consolidation step.
You will receive a JSON array of posts produced by one model. Rewrite them as a shorter list keeping the ideas intact.

Output ONLY a JSON object in this exact format:
{"resumos": [{"titulo": string, "tema": string, "legenda_principal": string, "hashtags": string[], "post_strategy_rationale": string, "cta_individual": string}]}

RULES:
1. The whole output must be between 4000 and 5000 characters
2. Each legenda_principal must be between 100 and 150 characters
3. Keep only the 1 or 2 most relevant hashtags per post
4. Keep one entry per input post, in the same order
5. Write in Brazilian Portuguese
6. Output ONLY the JSON object, no markdown, no explanation`

// Summary builds the condensation request for the posts one provider
// generated.
func Summary(posts []domain.Post, provider string) Prompt {
	summaries := make([]domain.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summarize())
	}
	user := fmt.Sprintf("Posts generated by %s (%d):\n%s\n", provider, len(posts), indentJSON(summaries))
	return Prompt{System: summarySystemPrompt, User: user}
}
