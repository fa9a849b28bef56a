package prompt

import (
	"strings"

	"github.com/alexanderramin/contentplan/internal/domain"
)

// StrategicAnalysis is the deterministic reading of a briefing that is
// handed to the consolidator alongside the generated ideas.
type StrategicAnalysis struct {
	FunnelStage     domain.FunnelStage `json:"funnel_stage"`
	ContentMix      []string           `json:"content_mix"`
	ToneGuidance    string             `json:"tone_guidance"`
	Vocabulary      []string           `json:"vocabulary"`
	NicheReferences []string           `json:"niche_references"`
	Recommendations []string           `json:"recommendations"`
}

var funnelKeywords = []struct {
	stage    domain.FunnelStage
	keywords []string
}{
	{domain.FunnelConversion, []string{"venda", "vendas", "conversão", "conversao", "promo", "oferta", "lançamento", "lancamento", "sales", "launch", "conversion"}},
	{domain.FunnelRetention, []string{"fideliza", "retenção", "retencao", "comunidade", "clientes atuais", "loyalty", "retention", "community"}},
	{domain.FunnelConsideration, []string{"engajamento", "educa", "autoridade", "consideração", "consideracao", "engagement", "education", "authority"}},
	{domain.FunnelAwareness, []string{"alcance", "reconhecimento", "visibilidade", "awareness", "reach", "branding"}},
}

var contentMixByStage = map[domain.FunnelStage][]string{
	domain.FunnelAwareness:     {"reels with a strong hook", "shareable carousels", "trend-based posts"},
	domain.FunnelConsideration: {"educational carousels", "behind-the-scenes videos", "testimonials"},
	domain.FunnelConversion:    {"offer posts with a single clear CTA", "product demonstrations", "social proof"},
	domain.FunnelRetention:     {"community questions", "user-generated content", "exclusive tips for followers"},
}

// AnalyzeStrategy derives funnel stage, content mix and tone guidance from
// the briefing. Campaign type wins over marketing objectives when both
// point to a stage; with no signal the stage is awareness.
func AnalyzeStrategy(b domain.ClientBriefing) StrategicAnalysis {
	stage := detectFunnelStage(b.CampaignType)
	if stage == "" {
		stage = detectFunnelStage(b.MarketingObjectives)
	}
	if stage == "" {
		stage = domain.FunnelAwareness
	}

	analysis := StrategicAnalysis{
		FunnelStage:     stage,
		ContentMix:      append([]string(nil), contentMixByStage[stage]...),
		ToneGuidance:    toneGuidance(b),
		Vocabulary:      append([]string(nil), b.BrandVocabulary...),
		NicheReferences: append([]string(nil), b.NicheExamples...),
	}

	if b.TargetAudience != "" {
		analysis.Recommendations = append(analysis.Recommendations,
			"Write every caption for: "+b.TargetAudience)
	}
	if len(b.BrandVocabulary) > 0 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Use the brand vocabulary naturally in captions and on-screen text")
	}
	if len(b.NicheExamples) > 0 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Differentiate from the niche references instead of copying their formats")
	}
	if stage == domain.FunnelConversion {
		analysis.Recommendations = append(analysis.Recommendations,
			"Keep one call to action per post and make the offer explicit")
	}
	return analysis
}

func detectFunnelStage(text string) domain.FunnelStage {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return ""
	}
	for _, candidate := range funnelKeywords {
		for _, kw := range candidate.keywords {
			if strings.Contains(lower, kw) {
				return candidate.stage
			}
		}
	}
	return ""
}

func toneGuidance(b domain.ClientBriefing) string {
	parts := make([]string, 0, 2)
	if b.ToneOfVoice != "" {
		parts = append(parts, "Tone: "+b.ToneOfVoice)
	}
	if b.CommunicationStyle != "" {
		parts = append(parts, "Style: "+b.CommunicationStyle)
	}
	if len(parts) == 0 {
		return "Tone: friendly and clear"
	}
	return strings.Join(parts, ". ")
}
