package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/contentplan/internal/domain"
)

var testPostCounter atomic.Int64

// Briefing options
type BriefingOption func(*domain.ClientBriefing)

func WithClientName(name string) BriefingOption {
	return func(b *domain.ClientBriefing) {
		b.ClientName = name
	}
}

func WithCampaignType(t string) BriefingOption {
	return func(b *domain.ClientBriefing) {
		b.CampaignType = t
	}
}

func WithWeeklyObjectives(objectives ...string) BriefingOption {
	return func(b *domain.ClientBriefing) {
		b.WeeklyContents = b.WeeklyContents[:0]
		for _, o := range objectives {
			b.WeeklyContents = append(b.WeeklyContents, domain.WeeklyContent{Objective: o})
		}
	}
}

func NewTestBriefing(opts ...BriefingOption) *domain.ClientBriefing {
	b := &domain.ClientBriefing{
		ClientName:          "Padaria Aurora",
		Subniche:            "panificação artesanal",
		TargetAudience:      "moradores do bairro",
		ToneOfVoice:         "acolhedor",
		CommunicationStyle:  "informal",
		BrandVocabulary:     []string{"fornada", "afeto"},
		NicheExamples:       []string{"@padocadoze"},
		MarketingObjectives: "aumentar o reconhecimento da marca",
		CampaignType:        "awareness",
		WeeklyContents: []domain.WeeklyContent{
			{Objective: "apresentar o fermento natural"},
			{Objective: "bastidores da fornada"},
			{Objective: "promoção de sexta"},
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Post options
type PostOption func(*domain.Post)

func WithCaption(caption string, variations ...string) PostOption {
	return func(p *domain.Post) {
		p.MainCaption = caption
		p.CaptionVariations = variations
	}
}

func WithHashtags(tags ...string) PostOption {
	return func(p *domain.Post) {
		p.Hashtags = tags
	}
}

func WithFormat(format string) PostOption {
	return func(p *domain.Post) {
		p.FormatSuggestion = format
	}
}

func WithSlides(titles ...string) PostOption {
	return func(p *domain.Post) {
		for i, t := range titles {
			p.CarouselSlides = append(p.CarouselSlides, domain.CarouselSlide{
				Title: t,
				Text:  fmt.Sprintf("texto do slide %d", i+1),
			})
		}
	}
}

func NewTestPost(title string, opts ...PostOption) domain.Post {
	n := testPostCounter.Add(1)
	p := domain.Post{
		Title:             title,
		Theme:             "tema " + strings.ToLower(title),
		MainCaption:       fmt.Sprintf("Legenda do post %d: %s", n, title),
		Hashtags:          []string{"#padaria", "#fermentacaonatural", "#pao"},
		StrategyRationale: "aproxima a marca do público",
		MicroBriefing:     "foto do balcão pela manhã",
		CTA:               "Comente sua fornada favorita",
		Interaction:       "enquete nos stories",
		FormatSuggestion:  "Imagem estática",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestContent builds a plan with one post per title.
func NewTestContent(titles ...string) *domain.Content {
	c := &domain.Content{
		ClientName:            "Padaria Aurora",
		WeeklyStrategySummary: "Semana dedicada ao fermento natural.",
		FutureStrategy:        "Série de bastidores.",
		Metrics: domain.SuccessMetrics{
			MainObjective: "Alcance",
			KeyIndicators: []string{"salvamentos", "compartilhamentos"},
		},
		Posts: []domain.Post{},
	}
	for _, t := range titles {
		c.Posts = append(c.Posts, NewTestPost(t))
	}
	return c
}
