package report

import "github.com/alexanderramin/contentplan/internal/scheduler"

// Labels holds the fixed report wording for one locale.
type Labels struct {
	CoverTitle       string
	For              string
	PeriodPrefix     string
	PeriodSeparator  string
	GeneratedOn      string
	ExecutiveSummary string
	FutureStrategy   string
	MarketReferences string
	ReferenceName    string
	Differentials    string
	Opportunities    string
	Positioning      string
	Calendar         string
	Day              string
	Time             string
	Post             string
	Content          string
	PostsPerDay      string
	Posts            string
	Theme            string
	Caption          string
	Variations       string
	Hashtags         string
	Rationale        string
	Format           string
	MicroBriefing    string
	Slides           string
	Script           string
	CTA              string
	Interaction      string
	Responses        string
	Visual           string
	TextInImage      string
	VisualPrompt     string
	MainIndicator    string
	ABTests          string
	Triggers         string
	Metrics          string
	MainObjective    string
	KeyIndicators    string
	SecondaryMetrics string
	Checklist        string
	Task             string
	Done             string
	QuickView        string
	QuickViewIntro   string
	SeeDetails       string
	ToBeDefined      string
	NoCalendar       string
	NoChecklist      string
	Page             string
}

var labelsEN = Labels{
	CoverTitle:       "Weekly Content Calendar",
	For:              "for",
	PeriodPrefix:     "Period",
	PeriodSeparator:  "to",
	GeneratedOn:      "Generated on",
	ExecutiveSummary: "Executive Summary",
	FutureStrategy:   "Future Strategy",
	MarketReferences: "Market References",
	ReferenceName:    "Name/Handle",
	Differentials:    "Differentials",
	Opportunities:    "Opportunities",
	Positioning:      "Client Positioning",
	Calendar:         "Publication Calendar",
	Day:              "Day",
	Time:             "Time",
	Post:             "Post",
	Content:          "Content",
	PostsPerDay:      "Posts per day",
	Posts:            "Posts",
	Theme:            "Theme",
	Caption:          "Caption",
	Variations:       "Caption variations",
	Hashtags:         "Hashtags",
	Rationale:        "Strategy rationale",
	Format:           "Format",
	MicroBriefing:    "Micro briefing",
	Slides:           "Carousel slides",
	Script:           "Script",
	CTA:              "Call to action",
	Interaction:      "Interaction",
	Responses:        "Response script",
	Visual:           "Visual description",
	TextInImage:      "Text in image",
	VisualPrompt:     "Visual prompt",
	MainIndicator:    "Main indicator",
	ABTests:          "A/B tests",
	Triggers:         "Optimization triggers",
	Metrics:          "Suggested Success Metrics",
	MainObjective:    "Main objective",
	KeyIndicators:    "Key indicators",
	SecondaryMetrics: "Secondary metrics",
	Checklist:        "Publication Checklist",
	Task:             "Task",
	Done:             "Done",
	QuickView:        "Quick View",
	QuickViewIntro:   "A summary of this week's posts. Scroll down for the full strategy.",
	SeeDetails:       "See full details",
	ToBeDefined:      "To be defined",
	NoCalendar:       "No publication calendar available.",
	NoChecklist:      "No publication checklist available.",
	Page:             "Page",
}

var labelsPTBR = Labels{
	CoverTitle:       "Calendário Semanal de Conteúdo",
	For:              "para",
	PeriodPrefix:     "Período",
	PeriodSeparator:  "a",
	GeneratedOn:      "Gerado em",
	ExecutiveSummary: "Resumo Executivo",
	FutureStrategy:   "Estratégia Futura",
	MarketReferences: "Referências de Mercado",
	ReferenceName:    "Nome/Handle",
	Differentials:    "Diferenciais",
	Opportunities:    "Oportunidades",
	Positioning:      "Posicionamento do Cliente",
	Calendar:         "Calendário de Publicação",
	Day:              "Dia",
	Time:             "Horário",
	Post:             "Post",
	Content:          "Conteúdo",
	PostsPerDay:      "Posts por dia",
	Posts:            "Posts",
	Theme:            "Tema",
	Caption:          "Legenda",
	Variations:       "Variações de legenda",
	Hashtags:         "Hashtags",
	Rationale:        "Racional estratégico",
	Format:           "Formato",
	MicroBriefing:    "Micro briefing",
	Slides:           "Slides do carrossel",
	Script:           "Micro roteiro",
	CTA:              "Chamada para ação",
	Interaction:      "Interação",
	Responses:        "Roteiro de respostas",
	Visual:           "Descrição visual",
	TextInImage:      "Texto na imagem",
	VisualPrompt:     "Prompt visual",
	MainIndicator:    "Indicador principal",
	ABTests:          "Testes A/B",
	Triggers:         "Gatilhos de otimização",
	Metrics:          "Métricas de Sucesso Sugeridas",
	MainObjective:    "Objetivo principal",
	KeyIndicators:    "Indicadores-chave",
	SecondaryMetrics: "Métricas secundárias",
	Checklist:        "Checklist de Publicação",
	Task:             "Tarefa",
	Done:             "Feito",
	QuickView:        "Quick View - Versão Rápida",
	QuickViewIntro:   "Um resumo dos posts dessa semana. Role para baixo para ver a estratégia completa.",
	SeeDetails:       "Ver detalhes completos",
	ToBeDefined:      "Definir",
	NoCalendar:       "Nenhum calendário de publicação disponível.",
	NoChecklist:      "Nenhum checklist de publicação disponível.",
	Page:             "Página",
}

// LabelsFor returns the wording matching a scheduler locale.
func LabelsFor(l scheduler.Locale) Labels {
	if l.Name == scheduler.LocalePTBR.Name {
		return labelsPTBR
	}
	return labelsEN
}
