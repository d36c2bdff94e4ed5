package campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adgenius/adgenius-api/infrastructure/integrator/linkfetch"
	"github.com/adgenius/adgenius-api/infrastructure/integrator/openai"
	"github.com/adgenius/adgenius-api/infrastructure/repository"
	"github.com/adgenius/adgenius-api/internal/domain"
	"github.com/adgenius/adgenius-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingCampaign = errors.New("os detalhes da campanha são obrigatórios")
	ErrMissingAdText   = errors.New("o texto do anúncio ou a URL são obrigatórios")
	ErrMissingProduct  = errors.New("o produto é obrigatório")
)

const (
	analystSystemPrompt    = "You are an expert ad analyst."
	copywriterSystemPrompt = "You are an expert ad copywriter and analyst."

	campaignMaxTokens = 300
	linkMaxTokens     = 350
	generateMaxTokens = 350
)

// CampaignRequest descreve a campanha a ser analisada pela IA.
type CampaignRequest struct {
	Product  string `json:"product"`
	Platform string `json:"platform"`
	Campaign string `json:"campaign" validate:"required"`
}

// LinkRequest aceita o texto do anúncio diretamente ou uma URL de onde
// o texto será extraído.
type LinkRequest struct {
	AdText string `json:"adText"`
	URL    string `json:"url"`
}

// GenerateAdRequest descreve o anúncio a ser redigido pela IA.
type GenerateAdRequest struct {
	Platform string `json:"platform"`
	Product  string `json:"product" validate:"required"`
	Category string `json:"category"`
}

// GeneratedAd é a resposta da geração: o texto do anúncio e a análise
// de por que ele funcionaria.
type GeneratedAd struct {
	Ad       string `json:"ad"`
	Analysis string `json:"analysis"`
}

type Analyzer interface {
	AnalyzeCampaign(ctx context.Context, userID int, req CampaignRequest) (*domain.CampaignAnalysis, error)
	AnalyzeLink(ctx context.Context, userID int, req LinkRequest) (*domain.LinkAnalysis, error)
	GenerateAd(ctx context.Context, req GenerateAdRequest) (*GeneratedAd, error)
}

type Service struct {
	openaiClient openai.Client
	linkFetcher  linkfetch.Fetcher
	campaignRepo repository.CampaignAnalysisRepository
	linkRepo     repository.LinkAnalysisRepository
}

func NewService(
	openaiClient openai.Client,
	linkFetcher linkfetch.Fetcher,
	campaignRepo repository.CampaignAnalysisRepository,
	linkRepo repository.LinkAnalysisRepository,
) Analyzer {
	return &Service{
		openaiClient: openaiClient,
		linkFetcher:  linkFetcher,
		campaignRepo: campaignRepo,
		linkRepo:     linkRepo,
	}
}

// AnalyzeCampaign envia os detalhes da campanha para a IA e persiste o
// resultado no histórico do usuário.
func (s *Service) AnalyzeCampaign(ctx context.Context, userID int, req CampaignRequest) (*domain.CampaignAnalysis, error) {
	if err := utils.Validate(req); err != nil || strings.TrimSpace(req.Campaign) == "" {
		return nil, ErrMissingCampaign
	}

	prompt := fmt.Sprintf(
		"You are an expert ad analyst. Analyze the following ad campaign for a product and provide suggestions for improvement.\n\nProduct: %s\nPlatform: %s\nCampaign Details: %s\n\nAnalysis:",
		req.Product, req.Platform, req.Campaign,
	)

	content, err := s.openaiClient.ChatCompletion(ctx, analystSystemPrompt, prompt, campaignMaxTokens)
	if err != nil {
		return nil, err
	}

	analysis := &domain.CampaignAnalysis{
		UserID:          userID,
		CampaignDetails: req.Campaign,
		Analysis:        content,
		CreatedAt:       time.Now().UTC(),
	}

	s.persistCampaign(userID, analysis)

	return analysis, nil
}

// AnalyzeLink analisa o texto de um anúncio. Quando só a URL é informada,
// o texto é extraído da própria página antes da análise.
func (s *Service) AnalyzeLink(ctx context.Context, userID int, req LinkRequest) (*domain.LinkAnalysis, error) {
	adText := strings.TrimSpace(req.AdText)

	if adText == "" {
		if strings.TrimSpace(req.URL) == "" {
			return nil, ErrMissingAdText
		}

		extracted, err := s.linkFetcher.ExtractText(ctx, req.URL)
		if err != nil {
			return nil, fmt.Errorf("erro ao extrair texto do anúncio: %w", err)
		}
		adText = extracted
	}

	prompt := fmt.Sprintf(
		"You are an expert ad analyst. Here is the text content of an advertisement. Analyze what works well in this ad, why it is effective, and provide specific insights for marketers. Be detailed and actionable.\n\nAd Text:\n%s\n\nAnalysis:",
		adText,
	)

	content, err := s.openaiClient.ChatCompletion(ctx, analystSystemPrompt, prompt, linkMaxTokens)
	if err != nil {
		return nil, err
	}

	analysis := &domain.LinkAnalysis{
		UserID:    userID,
		LinkURL:   req.URL,
		Analysis:  content,
		CreatedAt: time.Now().UTC(),
	}

	s.persistLink(userID, analysis)

	return analysis, nil
}

// GenerateAd pede à IA um anúncio para o produto e a análise de por que
// ele funcionaria, e separa as duas partes da resposta.
func (s *Service) GenerateAd(ctx context.Context, req GenerateAdRequest) (*GeneratedAd, error) {
	if err := utils.Validate(req); err != nil || strings.TrimSpace(req.Product) == "" {
		return nil, ErrMissingProduct
	}

	prompt := fmt.Sprintf(
		"\nWrite a %s ad for a product called %q in the category %q.\nThen, analyze why this ad would be effective for its target audience.\nFormat your response as:\nAd: [ad text]\nAnalysis: [analysis]\n",
		req.Platform, req.Product, req.Category,
	)

	content, err := s.openaiClient.ChatCompletion(ctx, copywriterSystemPrompt, prompt, generateMaxTokens)
	if err != nil {
		return nil, err
	}

	adPart, analysisPart, _ := strings.Cut(content, "Analysis:")

	return &GeneratedAd{
		Ad:       strings.TrimSpace(strings.Replace(adPart, "Ad:", "", 1)),
		Analysis: strings.TrimSpace(analysisPart),
	}, nil
}

func (s *Service) persistCampaign(userID int, analysis *domain.CampaignAnalysis) {
	if userID <= 0 {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da análise de campanha")
		return
	}
	analysis.ID = id

	if err := s.campaignRepo.SaveCampaignAnalysis(analysis); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
		}).Warn("Erro ao salvar análise de campanha no histórico")
	}
}

func (s *Service) persistLink(userID int, analysis *domain.LinkAnalysis) {
	if userID <= 0 {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da análise de link")
		return
	}
	analysis.ID = id

	if err := s.linkRepo.SaveLinkAnalysis(analysis); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
		}).Warn("Erro ao salvar análise de link no histórico")
	}
}
