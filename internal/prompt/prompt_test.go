package prompt

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/contentplan/internal/domain"
)

func bakeryBriefing() domain.ClientBriefing {
	return domain.ClientBriefing{
		ClientName:          "Padaria Aurora",
		TargetAudience:      "moradores do bairro",
		ToneOfVoice:         "acolhedor",
		CommunicationStyle:  "informal",
		BrandVocabulary:     []string{"fornada", "afeto"},
		NicheExamples:       []string{"@padocadoze"},
		MarketingObjectives: "aumentar o reconhecimento da marca",
		CampaignType:        "Lançamento do pão de fermentação natural",
		WeeklyContents: []domain.WeeklyContent{
			{Objective: "apresentar o fermento"},
			{Objective: ""},
			{Objective: "bastidores da fornada"},
		},
	}
}

func TestGeneration_UsesWeeklyObjectives(t *testing.T) {
	p := Generation(bakeryBriefing(), time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, p.System, "Output ONLY the JSON object")
	assert.Contains(t, p.User, `"nome_do_cliente": "Padaria Aurora"`)
	assert.Contains(t, p.User, "The week starts on 2024-07-15.")
	assert.Contains(t, p.User, "Generate exactly 2 posts.")
	assert.Contains(t, p.User, "1. apresentar o fermento\n2. bastidores da fornada\n")
}

func TestGeneration_DefaultPostCount(t *testing.T) {
	p := Generation(domain.ClientBriefing{ClientName: "X"}, time.Time{})

	assert.Contains(t, p.User, "Generate exactly 5 posts.")
	assert.NotContains(t, p.User, "The week starts")
	assert.NotContains(t, p.User, "Weekly objectives")
}

func TestSummary_SendsCondensedPosts(t *testing.T) {
	posts := []domain.Post{
		{Title: "Fermento", Hashtags: []string{"#a", "#b", "#c"}, VisualPrompt: "should not appear"},
		{Title: "Fornada"},
	}
	p := Summary(posts, "Gemini")

	assert.Contains(t, p.System, "between 4000 and 5000 characters")
	assert.Contains(t, p.System, "between 100 and 150 characters")
	assert.Contains(t, p.User, "Posts generated by Gemini (2)")
	assert.Contains(t, p.User, `"#b"`)
	assert.NotContains(t, p.User, `"#c"`)
	assert.NotContains(t, p.User, "should not appear")
}

func TestConsolidation_IncludesAllInputs(t *testing.T) {
	b := bakeryBriefing()
	in := ConsolidationInput{
		Briefing:        b,
		Strategy:        AnalyzeStrategy(b),
		CombinedSummary: json.RawMessage(`{"resumos":{"gemini":[{"titulo":"Fermento"}]}}`),
		StartDate:       time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
	}
	p := Consolidation(in)

	assert.Contains(t, p.User, `"funnel_stage": "conversion"`)
	assert.Contains(t, p.User, `{"resumos":{"gemini":[{"titulo":"Fermento"}]}}`)
	assert.Contains(t, p.User, "Produce exactly 2 posts.")
	assert.Contains(t, p.User, "- Keep one call to action per post")
}

func TestConsolidation_EmptySummaryAndExplicitCount(t *testing.T) {
	p := Consolidation(ConsolidationInput{PostCount: 7})
	assert.Contains(t, p.User, "Condensed ideas:\n{}\n")
	assert.Contains(t, p.User, "Produce exactly 7 posts.")
	assert.Contains(t, p.User, "Recommendations:\n- (none)\n")
}

func TestPromptText(t *testing.T) {
	text := Prompt{System: "sys", User: "usr"}.Text()
	assert.True(t, strings.HasPrefix(text, "### SYSTEM\nsys\n\n### USER\nusr"))

	assert.Equal(t, "### USER\nonly\n", Prompt{User: "only"}.Text())
}

func TestAnalyzeStrategy(t *testing.T) {
	tests := []struct {
		name     string
		briefing domain.ClientBriefing
		want     domain.FunnelStage
	}{
		{"campaign type wins", bakeryBriefing(), domain.FunnelConversion},
		{"objectives fallback", domain.ClientBriefing{MarketingObjectives: "Gerar engajamento"}, domain.FunnelConsideration},
		{"retention", domain.ClientBriefing{CampaignType: "Fidelização de clientes"}, domain.FunnelRetention},
		{"no signal", domain.ClientBriefing{}, domain.FunnelAwareness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeStrategy(tt.briefing).FunnelStage)
		})
	}
}

func TestAnalyzeStrategy_Details(t *testing.T) {
	a := AnalyzeStrategy(bakeryBriefing())

	assert.Equal(t, "Tone: acolhedor. Style: informal", a.ToneGuidance)
	assert.Equal(t, []string{"fornada", "afeto"}, a.Vocabulary)
	assert.Equal(t, []string{"@padocadoze"}, a.NicheReferences)
	require.Len(t, a.Recommendations, 4)
	assert.Equal(t, "Write every caption for: moradores do bairro", a.Recommendations[0])
	assert.NotEmpty(t, a.ContentMix)

	assert.Equal(t, "Tone: friendly and clear", AnalyzeStrategy(domain.ClientBriefing{}).ToneGuidance)
	assert.Empty(t, AnalyzeStrategy(domain.ClientBriefing{}).Recommendations)
}
