package domain

// Plataformas conhecidas pelas fontes de anúncios.
const (
	PlatformGoogle    = "google"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformMulti     = "multi-platform"
	PlatformAll       = "all"
)

// AdExample é um anúncio descoberto (ou sintetizado) por uma fonte.
// Construído a cada agregação; apenas o RelevanceScore é sobrescrito
// depois da construção. Campos numéricos recebem jitter aleatório quando
// não há API real por trás do registro, então chamadas repetidas com os
// mesmos parâmetros produzem valores diferentes.
type AdExample struct {
	Title                string   `json:"title"`
	Snippet              string   `json:"snippet"`
	SuccessFactors       []string `json:"successFactors"`
	Copy                 string   `json:"copy"`
	VisualElements       string   `json:"visualElements"`
	TargetAudience       string   `json:"targetAudience"`
	Results              string   `json:"results"`
	Platform             string   `json:"platform"`
	Industry             string   `json:"industry"`
	ProductCategory      string   `json:"productCategory"`
	CTR                  float64  `json:"ctr"`
	ConversionRate       float64  `json:"conversionRate"`
	CostPerClick         float64  `json:"costPerClick"`
	ActualResults        string   `json:"actualResults"`
	WhySuccessful        string   `json:"whySuccessful"`
	PlatformSpecificTips []string `json:"platformSpecificTips"`
	RelevanceScore       float64  `json:"relevanceScore,omitempty"`
	SemanticTags         []string `json:"semanticTags,omitempty"`
	RealLink             string   `json:"realLink,omitempty"`
	AdID                 string   `json:"adId,omitempty"`
	Advertiser           string   `json:"advertiser,omitempty"`
	Spend                float64  `json:"spend,omitempty"`
	Impressions          float64  `json:"impressions,omitempty"`
	Clicks               float64  `json:"clicks,omitempty"`
	Conversions          float64  `json:"conversions,omitempty"`
}

// DiscoveryRequest são os parâmetros de uma busca de inspiração.
type DiscoveryRequest struct {
	Product  string `json:"product" validate:"required"`
	Platform string `json:"platform"`
	Industry string `json:"industry"`
}

// AdAnalysisInput carrega os dados de um anúncio escolhido pelo usuário
// junto com as métricas informadas para gerar a análise textual.
type AdAnalysisInput struct {
	AdTitle        string   `json:"adTitle" validate:"required"`
	AdCopy         string   `json:"adCopy" validate:"required"`
	AdSnippet      string   `json:"adSnippet"`
	Platform       string   `json:"platform"`
	Industry       string   `json:"industry"`
	SuccessFactors []string `json:"successFactors"`
	WhySuccessful  string   `json:"whySuccessful"`
	CTR            float64  `json:"ctr"`
	ConversionRate float64  `json:"conversionRate"`
	CostPerClick   float64  `json:"costPerClick"`
}
