package importer

import (
	"encoding/json"

	"github.com/alexanderramin/contentplan/internal/domain"
)

// Convert turns a content schema into a domain.Content. It never fails:
// elements that cannot be read become empty posts so post numbering stays
// aligned with the source list. Run ValidateContentSchema to learn what was
// defaulted.
func Convert(schema ContentSchema) *domain.Content {
	content := &domain.Content{
		ClientName:            textOf(schema["nome_do_cliente"]),
		GenerationDate:        textOf(schema["generation_date"]),
		StartDate:             textOf(schema["start_date"]),
		EndDate:               textOf(schema["end_date"]),
		WeeklyStrategySummary: strategySummary(schema["weekly_strategy_summary"]),
		FutureStrategy:        textOf(schema["future_strategy"]),
		Metrics:               convertMetrics(objectOf(schema["metricas_de_sucesso_sugeridas"])),
		Posts:                 []domain.Post{},
	}

	for _, ref := range objectsOf(schema["market_references"]) {
		content.MarketReferences = append(content.MarketReferences, domain.MarketReference{
			Name:              textOf(ref["Nome/Handle"]),
			Differentials:     textOf(ref["Diferenciais"]),
			Opportunities:     textOf(ref["Oportunidades"]),
			ClientPositioning: textOf(ref["Posicionamento do Cliente"]),
		})
	}

	list, _ := elementsOf(schema["posts"])
	for _, item := range list {
		content.Posts = append(content.Posts, ConvertPost(objectOf(item)))
	}
	return content
}

// ConvertPost reads a single post object. A nil object yields an empty post.
func ConvertPost(obj map[string]json.RawMessage) domain.Post {
	if obj == nil {
		return domain.Post{}
	}
	p := domain.Post{
		Title:                textOf(obj["titulo"]),
		Theme:                textOf(obj["tema"]),
		MainCaption:          textOf(obj["legenda_principal"]),
		CaptionVariations:    listOf(obj["variacoes_legenda"], splitNone),
		Hashtags:             listOf(obj["hashtags"], splitFields),
		StrategyRationale:    textOf(obj["post_strategy_rationale"]),
		CTA:                  textOf(obj["cta_individual"]),
		Interaction:          textOf(obj["interacao"]),
		VisualDescription:    textOf(obj["visual_description_portuguese"]),
		TextInImage:          textOf(obj["text_in_image"]),
		FormatSuggestion:     textOf(obj["sugestao_formato"]),
		VisualPrompt:         textOf(obj["visual_prompt_suggestion"]),
		MainIndicator:        textOf(obj["indicador_principal"]),
		ABTestSuggestions:    textOf(obj["ab_test_suggestions"]),
		OptimizationTriggers: textOf(obj["optimization_triggers"]),
		PostingTime:          textOf(obj["horario_de_postagem"]),
		CarouselSlides:       convertSlides(obj["carrossel_slides"]),
	}

	// Some models put the carousel straight into micro_briefing.
	if slides := convertSlides(obj["micro_briefing"]); len(slides) > 0 {
		if len(p.CarouselSlides) == 0 {
			p.CarouselSlides = slides
		}
	} else {
		p.MicroBriefing = textOf(obj["micro_briefing"])
	}

	for _, scene := range objectsOf(obj["micro_roteiro"]) {
		p.MicroScript = append(p.MicroScript, domain.Scene{
			Scene:       textOf(scene["cena"]),
			Description: textOf(scene["descricao"]),
			Speech:      domain.CoalesceStr(textOf(scene["fala"]), textOf(scene["texto_tela"])),
		})
	}
	for _, rs := range objectsOf(obj["response_script"]) {
		p.ResponseScript = append(p.ResponseScript, domain.ResponseScript{
			GenericComment:  textOf(rs["comentario_generico"]),
			SuggestedReply:  textOf(rs["resposta_sugerida"]),
			NegativeComment: textOf(rs["comentario_negativo"]),
			NegativeReply:   textOf(rs["resposta_negativo"]),
		})
	}
	return p
}

func convertSlides(raw json.RawMessage) []domain.CarouselSlide {
	var slides []domain.CarouselSlide
	for _, s := range objectsOf(raw) {
		slide := domain.CarouselSlide{
			Title:            textOf(s["titulo_slide"]),
			Text:             textOf(s["texto_slide"]),
			VisualSuggestion: textOf(s["sugestao_visual_slide"]),
		}
		if slide.Title == "" && slide.Text == "" {
			continue
		}
		slides = append(slides, slide)
	}
	return slides
}

// strategySummary accepts a plain string, an object with "summary", or a
// string holding such an object.
func strategySummary(raw json.RawMessage) string {
	if obj := objectOf(raw); obj != nil {
		return textOf(obj["summary"])
	}
	return textOf(raw)
}

func convertMetrics(obj map[string]json.RawMessage) domain.SuccessMetrics {
	if obj == nil {
		return domain.SuccessMetrics{}
	}
	return domain.SuccessMetrics{
		MainObjective:    textOf(obj["objetivo_principal"]),
		KeyIndicators:    listOf(obj["indicadores_chave"], splitNone),
		SecondaryMetrics: listOf(obj["metricas_secundarias"], splitNone),
	}
}
