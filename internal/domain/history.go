package domain

import "time"

// Tipos de atividade exibidos no histórico do usuário.
const (
	ActivityAdInspiration    = "ad-inspiration"
	ActivityAdAnalysis       = "ad-analysis"
	ActivityCampaignAnalysis = "campaign-analysis"
	ActivityLinkAnalysis     = "link-analysis"
)

// Inspiration é o resultado persistido de uma busca de inspiração.
// Results guarda a lista de AdExample serializada como JSON; o núcleo
// trata o armazenamento como um blob opaco de gravação e releitura.
type Inspiration struct {
	ID        string    `json:"id"`
	UserID    int       `json:"-"`
	Platform  string    `json:"platform"`
	Industry  string    `json:"industry"`
	Product   string    `json:"product"`
	Results   []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdAnalysis é a narrativa gerada para um anúncio específico.
type AdAnalysis struct {
	ID        string    `json:"id"`
	UserID    int       `json:"-"`
	Title     string    `json:"title"`
	Snippet   string    `json:"snippet"`
	Analysis  string    `json:"analysis"`
	CreatedAt time.Time `json:"createdAt"`
}

// CampaignAnalysis é a análise de campanha retornada pela IA.
type CampaignAnalysis struct {
	ID              string    `json:"id"`
	UserID          int       `json:"-"`
	CampaignDetails string    `json:"campaignDetails"`
	Analysis        string    `json:"analysis"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LinkAnalysis é a análise do texto extraído de uma página de anúncio.
type LinkAnalysis struct {
	ID        string    `json:"id"`
	UserID    int       `json:"-"`
	LinkURL   string    `json:"linkUrl"`
	Analysis  string    `json:"analysis"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryItem é um item unificado do histórico, produzido a partir de
// qualquer uma das atividades acima e ordenado por data decrescente.
type HistoryItem struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Data        map[string]any `json:"data"`
}

// HistoryFilters restringe o período consultado no histórico.
type HistoryFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
