package activity

import (
	"fmt"
	"sort"

	"github.com/adgenius/adgenius-api/infrastructure/repository"
	"github.com/adgenius/adgenius-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Historian monta o histórico unificado de atividades do usuário.
type Historian interface {
	GetHistory(userID int, filters domain.HistoryFilters) ([]*domain.HistoryItem, error)
}

type Service struct {
	inspirationRepo repository.InspirationRepository
	adAnalysisRepo  repository.AdAnalysisRepository
	campaignRepo    repository.CampaignAnalysisRepository
	linkRepo        repository.LinkAnalysisRepository
}

func NewService(
	inspirationRepo repository.InspirationRepository,
	adAnalysisRepo repository.AdAnalysisRepository,
	campaignRepo repository.CampaignAnalysisRepository,
	linkRepo repository.LinkAnalysisRepository,
) Historian {
	return &Service{
		inspirationRepo: inspirationRepo,
		adAnalysisRepo:  adAnalysisRepo,
		campaignRepo:    campaignRepo,
		linkRepo:        linkRepo,
	}
}

// GetHistory reúne inspirações e os três tipos de análise em uma linha do
// tempo única, ordenada da atividade mais recente para a mais antiga.
func (s *Service) GetHistory(userID int, filters domain.HistoryFilters) ([]*domain.HistoryItem, error) {
	inspirations, err := s.inspirationRepo.ListInspirations(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar inspirações: %w", err)
	}

	adAnalyses, err := s.adAnalysisRepo.ListAdAnalyses(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar análises de anúncio: %w", err)
	}

	campaignAnalyses, err := s.campaignRepo.ListCampaignAnalyses(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar análises de campanha: %w", err)
	}

	linkAnalyses, err := s.linkRepo.ListLinkAnalyses(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar análises de link: %w", err)
	}

	history := make([]*domain.HistoryItem, 0,
		len(inspirations)+len(adAnalyses)+len(campaignAnalyses)+len(linkAnalyses))

	for _, item := range inspirations {
		history = append(history, inspirationItem(item))
	}
	for _, item := range adAnalyses {
		history = append(history, adAnalysisItem(item))
	}
	for _, item := range campaignAnalyses {
		history = append(history, campaignItem(item))
	}
	for _, item := range linkAnalyses {
		history = append(history, linkItem(item))
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return history, nil
}

func inspirationItem(item *domain.Inspiration) *domain.HistoryItem {
	// O blob de resultados é reexposto como JSON estruturado; se estiver
	// corrompido a inspiração continua aparecendo, sem os exemplos.
	var results []domain.AdExample
	if err := json.Unmarshal(item.Results, &results); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"inspiration_id": item.ID,
		}).Warn("Erro ao desserializar resultados da inspiração no histórico")
	}

	return &domain.HistoryItem{
		ID:    item.ID,
		Type:  domain.ActivityAdInspiration,
		Title: fmt.Sprintf("Ad Inspiration for %s", item.Product),
		Description: fmt.Sprintf("Generated inspiration for %s in %s industry on %s",
			item.Product, item.Industry, item.Platform),
		Date: item.CreatedAt,
		Data: map[string]any{
			"platform": item.Platform,
			"industry": item.Industry,
			"product":  item.Product,
			"results":  results,
		},
	}
}

func adAnalysisItem(item *domain.AdAnalysis) *domain.HistoryItem {
	return &domain.HistoryItem{
		ID:          item.ID,
		Type:        domain.ActivityAdAnalysis,
		Title:       fmt.Sprintf("Ad Analysis: %s", item.Title),
		Description: fmt.Sprintf("Analyzed ad with title: %s", item.Title),
		Date:        item.CreatedAt,
		Data: map[string]any{
			"title":    item.Title,
			"snippet":  item.Snippet,
			"analysis": item.Analysis,
		},
	}
}

func campaignItem(item *domain.CampaignAnalysis) *domain.HistoryItem {
	return &domain.HistoryItem{
		ID:          item.ID,
		Type:        domain.ActivityCampaignAnalysis,
		Title:       "Campaign Analysis",
		Description: fmt.Sprintf("Analyzed campaign: %s", item.CampaignDetails),
		Date:        item.CreatedAt,
		Data: map[string]any{
			"campaignDetails": item.CampaignDetails,
			"analysis":        item.Analysis,
		},
	}
}

func linkItem(item *domain.LinkAnalysis) *domain.HistoryItem {
	return &domain.HistoryItem{
		ID:          item.ID,
		Type:        domain.ActivityLinkAnalysis,
		Title:       "Link Analysis",
		Description: fmt.Sprintf("Analyzed link at %s", item.LinkURL),
		Date:        item.CreatedAt,
		Data: map[string]any{
			"linkUrl":  item.LinkURL,
			"analysis": item.Analysis,
		},
	}
}
