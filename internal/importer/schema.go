package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/contentplan/internal/domain"
)

// ErrMissingPosts is reported when a content file has no "posts" key.
var ErrMissingPosts = errors.New("content has no posts")

// ContentSchema is the loosely-typed top level of a model response. Values
// stay raw until Convert decides how to read them, since models return the
// same field as a string, a list, an object or a JSON-encoded string.
type ContentSchema map[string]json.RawMessage

// ParseContentSchema decodes a content document. A document that wraps
// everything in "generated_content" is unwrapped.
func ParseContentSchema(data []byte) (ContentSchema, error) {
	var schema ContentSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if schema == nil {
		return nil, fmt.Errorf("parsing content: document is not an object")
	}
	if _, ok := schema["posts"]; !ok {
		if inner := objectOf(schema["generated_content"]); inner != nil {
			if _, hasPosts := inner["posts"]; hasPosts {
				return ContentSchema(inner), nil
			}
		}
	}
	return schema, nil
}

// LoadContentSchema reads and parses a content JSON file.
func LoadContentSchema(path string) (ContentSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContentSchema(data)
}

// ParseContent decodes, validates and converts a content document. The
// returned warnings describe fields that were dropped or defaulted; only an
// undecodable document is an error.
func ParseContent(data []byte) (*domain.Content, []error, error) {
	schema, err := ParseContentSchema(data)
	if err != nil {
		return nil, nil, err
	}
	warnings := ValidateContentSchema(schema)
	return Convert(schema), warnings, nil
}

// LoadContent reads a content file and converts it, see ParseContent.
func LoadContent(path string) (*domain.Content, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseContent(data)
}

// LoadBriefing reads a client briefing file.
func LoadBriefing(path string) (*domain.ClientBriefing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBriefing(data)
}

// ParseBriefing decodes a client briefing, accepting lists where text is
// expected and comma-separated text where lists are expected.
func ParseBriefing(data []byte) (*domain.ClientBriefing, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing briefing: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing briefing: document is not an object")
	}
	b := &domain.ClientBriefing{
		ClientName:          textOf(raw["nome_do_cliente"]),
		Subniche:            textOf(raw["subnicho"]),
		ContactInfo:         textOf(raw["informacoes_de_contato"]),
		TargetAudience:      textOf(raw["publico_alvo"]),
		ToneOfVoice:         textOf(raw["tom_de_voz"]),
		CommunicationStyle:  textOf(raw["estilo_de_comunicacao"]),
		BrandVocabulary:     listOf(raw["vocabulario_da_marca"], splitCommas),
		NicheExamples:       listOf(raw["exemplos_de_nicho"], splitCommas),
		AdditionalInfo:      textOf(raw["informacoes_adicionais"]),
		ContentType:         textOf(raw["tipo_de_conteudo"]),
		MarketingObjectives: textOf(raw["objetivos_de_marketing"]),
		CampaignType:        textOf(raw["tipo_de_campanha"]),
	}
	for _, item := range objectsOf(raw["conteudos_semanais"]) {
		b.WeeklyContents = append(b.WeeklyContents, domain.WeeklyContent{
			Objective: textOf(item["objetivo_do_conteudo_individual"]),
		})
	}
	return b, nil
}
