package domain

// Content is a generated (or consolidated) weekly plan.
type Content struct {
	ClientName            string            `json:"nome_do_cliente,omitempty"`
	GenerationDate        string            `json:"generation_date,omitempty"`
	StartDate             string            `json:"start_date,omitempty"`
	EndDate               string            `json:"end_date,omitempty"`
	WeeklyStrategySummary string            `json:"weekly_strategy_summary,omitempty"`
	FutureStrategy        string            `json:"future_strategy,omitempty"`
	MarketReferences      []MarketReference `json:"market_references,omitempty"`
	Metrics               SuccessMetrics    `json:"metricas_de_sucesso_sugeridas"`
	Posts                 []Post            `json:"posts"`
}

type MarketReference struct {
	Name              string `json:"Nome/Handle"`
	Differentials     string `json:"Diferenciais"`
	Opportunities     string `json:"Oportunidades"`
	ClientPositioning string `json:"Posicionamento do Cliente"`
}

type SuccessMetrics struct {
	MainObjective    string   `json:"objetivo_principal,omitempty"`
	KeyIndicators    []string `json:"indicadores_chave,omitempty"`
	SecondaryMetrics []string `json:"metricas_secundarias,omitempty"`
}

// IsZero reports whether no metric was suggested.
func (m SuccessMetrics) IsZero() bool {
	return m.MainObjective == "" && len(m.KeyIndicators) == 0 && len(m.SecondaryMetrics) == 0
}

// Post is one generated social-media post briefing.
type Post struct {
	Title                string           `json:"titulo"`
	Theme                string           `json:"tema,omitempty"`
	MainCaption          string           `json:"legenda_principal,omitempty"`
	CaptionVariations    []string         `json:"variacoes_legenda,omitempty"`
	Hashtags             []string         `json:"hashtags,omitempty"`
	StrategyRationale    string           `json:"post_strategy_rationale,omitempty"`
	MicroBriefing        string           `json:"micro_briefing,omitempty"`
	CarouselSlides       []CarouselSlide  `json:"carrossel_slides,omitempty"`
	MicroScript          []Scene          `json:"micro_roteiro,omitempty"`
	CTA                  string           `json:"cta_individual,omitempty"`
	Interaction          string           `json:"interacao,omitempty"`
	ResponseScript       []ResponseScript `json:"response_script,omitempty"`
	VisualDescription    string           `json:"visual_description_portuguese,omitempty"`
	TextInImage          string           `json:"text_in_image,omitempty"`
	FormatSuggestion     string           `json:"sugestao_formato,omitempty"`
	VisualPrompt         string           `json:"visual_prompt_suggestion,omitempty"`
	MainIndicator        string           `json:"indicador_principal,omitempty"`
	ABTestSuggestions    string           `json:"ab_test_suggestions,omitempty"`
	OptimizationTriggers string           `json:"optimization_triggers,omitempty"`
	PostingTime          string           `json:"horario_de_postagem,omitempty"`
}

type CarouselSlide struct {
	Title            string `json:"titulo_slide"`
	Text             string `json:"texto_slide"`
	VisualSuggestion string `json:"sugestao_visual_slide,omitempty"`
}

type Scene struct {
	Scene       string `json:"cena"`
	Description string `json:"descricao"`
	Speech      string `json:"fala,omitempty"`
}

type ResponseScript struct {
	GenericComment  string `json:"comentario_generico,omitempty"`
	SuggestedReply  string `json:"resposta_sugerida,omitempty"`
	NegativeComment string `json:"comentario_negativo,omitempty"`
	NegativeReply   string `json:"resposta_negativo,omitempty"`
}

// Label is the post's display title, Placeholder when blank.
func (p Post) Label() string {
	return OrPlaceholder(p.Title)
}

// Format normalizes the suggested format, inferring carousel or reel from
// the presence of slides or a script when no suggestion was given.
func (p Post) Format() PostFormat {
	if f := ParsePostFormat(p.FormatSuggestion); f != FormatUnknown {
		return f
	}
	switch {
	case len(p.CarouselSlides) > 0:
		return FormatCarousel
	case len(p.MicroScript) > 0:
		return FormatReel
	}
	return FormatUnknown
}

// PostSummary is the condensed form of a post sent to the consolidator.
type PostSummary struct {
	Title             string          `json:"titulo"`
	Theme             string          `json:"tema,omitempty"`
	MainCaption       string          `json:"legenda_principal,omitempty"`
	Hashtags          []string        `json:"hashtags,omitempty"`
	StrategyRationale string          `json:"post_strategy_rationale,omitempty"`
	MicroBriefing     string          `json:"micro_briefing,omitempty"`
	CarouselSlides    []CarouselSlide `json:"carrossel_slides,omitempty"`
	CTA               string          `json:"cta_individual,omitempty"`
	Interaction       string          `json:"interacao,omitempty"`
}

// Summarize keeps the fields the consolidator needs: the first two hashtags,
// and the micro briefing or, failing that, the carousel slides.
func (p Post) Summarize() PostSummary {
	s := PostSummary{
		Title:             p.Title,
		Theme:             p.Theme,
		MainCaption:       p.MainCaption,
		StrategyRationale: p.StrategyRationale,
		MicroBriefing:     p.MicroBriefing,
		CTA:               p.CTA,
		Interaction:       p.Interaction,
	}
	if len(p.Hashtags) > 0 {
		s.Hashtags = append([]string(nil), p.Hashtags[:min(2, len(p.Hashtags))]...)
	}
	if s.MicroBriefing == "" && len(p.CarouselSlides) > 0 {
		s.CarouselSlides = append([]CarouselSlide(nil), p.CarouselSlides...)
	}
	return s
}
