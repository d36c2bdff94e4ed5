package discovering

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/adgenius/adgenius-api/infrastructure/integrator/adsource"
	"github.com/adgenius/adgenius-api/infrastructure/repository"
	"github.com/adgenius/adgenius-api/internal/domain"
	"github.com/adgenius/adgenius-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Valores assumidos quando a requisição não informa plataforma ou indústria.
const (
	DefaultPlatform = domain.PlatformFacebook
	DefaultIndustry = "ecommerce"
)

var (
	ErrMissingProduct        = errors.New("o produto é obrigatório")
	ErrInspirationNotFound   = errors.New("inspiração não encontrada")
	ErrInspirationUnreadable = errors.New("não foi possível ler os resultados da inspiração")
)

type Discoverer interface {
	Discover(ctx context.Context, userID int, req domain.DiscoveryRequest) (*DiscoveryResult, error)
	GetInspiration(userID int, id string) (*DiscoveryResult, error)
}

// DiscoveryResult é a resposta de uma busca de inspiração. InspirationID
// só é preenchido quando a busca foi persistida para um usuário autenticado.
type DiscoveryResult struct {
	InspirationID string             `json:"inspirationId,omitempty"`
	Product       string             `json:"product"`
	Platform      string             `json:"platform"`
	Industry      string             `json:"industry"`
	Examples      []domain.AdExample `json:"examples"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type Service struct {
	sources         []adsource.Source
	catalog         *adsource.Catalog
	inspirationRepo repository.InspirationRepository
}

func NewService(
	sources []adsource.Source,
	catalog *adsource.Catalog,
	inspirationRepo repository.InspirationRepository,
) Discoverer {
	return &Service{
		sources:         sources,
		catalog:         catalog,
		inspirationRepo: inspirationRepo,
	}
}

// Discover agrega anúncios de todas as fontes aplicáveis, pontua cada um
// por relevância e devolve a lista ordenada da maior para a menor pontuação.
// Fontes sem credencial degradam para conteúdo de fallback em vez de falhar,
// então a busca sempre devolve resultados. Para usuários autenticados o
// resultado é persistido; falhas de escrita não derrubam a resposta.
func (s *Service) Discover(ctx context.Context, userID int, req domain.DiscoveryRequest) (*DiscoveryResult, error) {
	if err := utils.Validate(req); err != nil || strings.TrimSpace(req.Product) == "" {
		return nil, ErrMissingProduct
	}

	if req.Platform == "" {
		req.Platform = DefaultPlatform
	}

	if req.Industry == "" {
		req.Industry = DefaultIndustry
	}

	// Vídeos promocionais não dependem de API e entram sempre na agregação.
	videos := s.catalog.PromotionalVideos(req.Product, req.Industry)

	examples := make([]domain.AdExample, 0, len(videos)+len(s.sources)*3)
	examples = append(examples, videos...)

	for _, src := range s.sources {
		examples = append(examples, s.collectFromSource(ctx, src, videos, req)...)
	}

	for i := range examples {
		examples[i].RelevanceScore = relevanceScore(&examples[i], req.Product, req.Industry, req.Platform)
	}

	sort.SliceStable(examples, func(i, j int) bool {
		return examples[i].RelevanceScore > examples[j].RelevanceScore
	})

	result := &DiscoveryResult{
		Product:   req.Product,
		Platform:  req.Platform,
		Industry:  req.Industry,
		Examples:  examples,
		CreatedAt: time.Now().UTC(),
	}

	if userID > 0 {
		result.InspirationID = s.persistInspiration(userID, req, result)
	}

	return result, nil
}

// collectFromSource decide como uma fonte participa da agregação. Fontes
// de inteligência de mercado (AlwaysOn) participam de qualquer busca, mas
// só quando têm credencial e sem fallback. As demais são filtradas pela
// plataforma pedida e degradam para fallback quando não há credencial ou
// quando a consulta externa falha.
func (s *Service) collectFromSource(
	ctx context.Context,
	src adsource.Source,
	videos []domain.AdExample,
	req domain.DiscoveryRequest,
) []domain.AdExample {
	if src.AlwaysOn() {
		if !src.HasCredential() {
			return nil
		}

		fetched, err := src.Fetch(ctx, req.Product, req.Industry)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"source":  src.Platform(),
				"product": req.Product,
			}).Warn("Erro ao consultar fonte de inteligência de mercado")
			return nil
		}

		return fetched
	}

	if req.Platform != src.Platform() && req.Platform != domain.PlatformAll {
		return nil
	}

	if !src.HasCredential() {
		switch src.Platform() {
		case domain.PlatformTikTok, domain.PlatformInstagram, domain.PlatformYouTube:
			// Plataformas de vídeo reutilizam os vídeos promocionais da
			// própria plataforma em vez de gerar um segundo fallback.
			var matched []domain.AdExample
			for _, video := range videos {
				if video.Platform == src.Platform() {
					matched = append(matched, video)
				}
			}
			return matched
		default:
			return src.Fallback(req.Product, req.Industry)
		}
	}

	fetched, err := src.Fetch(ctx, req.Product, req.Industry)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"source":  src.Platform(),
			"product": req.Product,
		}).Warn("Erro ao consultar fonte de anúncios, usando conteúdo de fallback")
		return src.Fallback(req.Product, req.Industry)
	}

	return fetched
}

func (s *Service) persistInspiration(userID int, req domain.DiscoveryRequest, result *DiscoveryResult) string {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da inspiração")
		return ""
	}

	payload, err := json.Marshal(result.Examples)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao serializar resultados da inspiração")
		return ""
	}

	inspiration := &domain.Inspiration{
		ID:        id,
		UserID:    userID,
		Platform:  req.Platform,
		Industry:  req.Industry,
		Product:   req.Product,
		Results:   payload,
		CreatedAt: result.CreatedAt,
	}

	if err := s.inspirationRepo.SaveInspiration(inspiration); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"product": req.Product,
		}).Warn("Erro ao salvar inspiração no histórico")
		return ""
	}

	return id
}

// GetInspiration relê uma inspiração persistida do usuário.
func (s *Service) GetInspiration(userID int, id string) (*DiscoveryResult, error) {
	inspiration, err := s.inspirationRepo.GetInspirationByID(userID, id)
	if err != nil {
		return nil, err
	}

	if inspiration == nil {
		return nil, ErrInspirationNotFound
	}

	var examples []domain.AdExample
	if err := json.Unmarshal(inspiration.Results, &examples); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"inspiration_id": id,
		}).Error("Erro ao desserializar resultados da inspiração")
		return nil, ErrInspirationUnreadable
	}

	return &DiscoveryResult{
		InspirationID: inspiration.ID,
		Product:       inspiration.Product,
		Platform:      inspiration.Platform,
		Industry:      inspiration.Industry,
		Examples:      examples,
		CreatedAt:     inspiration.CreatedAt,
	}, nil
}

// relevanceScore replica os pesos usados na montagem do ranking: plataforma
// compatível vale 30, indústria idêntica vale 25, menção ao produto no
// título, resumo ou copy vale 40 e as métricas de desempenho entram como
// bônus proporcional. O resultado é limitado a 100.
func relevanceScore(ad *domain.AdExample, product, industry, platform string) float64 {
	var score float64

	if ad.Platform == platform || platform == domain.PlatformAll {
		score += 30
	}

	// Comparação exata: os valores de indústria vêm de um vocabulário
	// fixo em minúsculas.
	if ad.Industry == industry {
		score += 25
	}

	productLower := strings.ToLower(product)
	if strings.Contains(strings.ToLower(ad.Title), productLower) ||
		strings.Contains(strings.ToLower(ad.Snippet), productLower) ||
		strings.Contains(strings.ToLower(ad.Copy), productLower) {
		score += 40
	}

	score += ad.CTR * 0.5
	score += ad.ConversionRate * 0.3

	return math.Min(score, 100)
}
