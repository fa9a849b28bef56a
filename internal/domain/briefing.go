package domain

// ClientBriefing is the client profile that drives generation and consolidation.
type ClientBriefing struct {
	ClientName          string          `json:"nome_do_cliente"`
	Subniche            string          `json:"subnicho"`
	ContactInfo         string          `json:"informacoes_de_contato"`
	TargetAudience      string          `json:"publico_alvo"`
	ToneOfVoice         string          `json:"tom_de_voz"`
	CommunicationStyle  string          `json:"estilo_de_comunicacao"`
	BrandVocabulary     []string        `json:"vocabulario_da_marca"`
	NicheExamples       []string        `json:"exemplos_de_nicho"`
	AdditionalInfo      string          `json:"informacoes_adicionais"`
	ContentType         string          `json:"tipo_de_conteudo"`
	WeeklyContents      []WeeklyContent `json:"conteudos_semanais"`
	MarketingObjectives string          `json:"objetivos_de_marketing"`
	CampaignType        string          `json:"tipo_de_campanha"`
}

type WeeklyContent struct {
	Objective string `json:"objetivo_do_conteudo_individual"`
}

// WeeklyThemes lists the non-empty per-post objectives in order.
func (b ClientBriefing) WeeklyThemes() []string {
	themes := make([]string, 0, len(b.WeeklyContents))
	for _, wc := range b.WeeklyContents {
		if wc.Objective != "" {
			themes = append(themes, wc.Objective)
		}
	}
	return themes
}

// DisplayName returns the client name, or fallback when unnamed.
func (b ClientBriefing) DisplayName(fallback string) string {
	return CoalesceStr(b.ClientName, fallback)
}
