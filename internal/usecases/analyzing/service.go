package analyzing

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/adgenius/adgenius-api/infrastructure/repository"
	"github.com/adgenius/adgenius-api/internal/domain"
	"github.com/adgenius/adgenius-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingAdData       = errors.New("título e copy do anúncio são obrigatórios")
	ErrInsufficientCredits = errors.New("créditos de análise esgotados")
)

type Analyzer interface {
	AnalyzeAd(userID int, input domain.AdAnalysisInput) (*domain.AdAnalysis, error)
}

type Service struct {
	userRepo     repository.UserRepository
	analysisRepo repository.AdAnalysisRepository
}

func NewService(
	userRepo repository.UserRepository,
	analysisRepo repository.AdAnalysisRepository,
) Analyzer {
	return &Service{
		userRepo:     userRepo,
		analysisRepo: analysisRepo,
	}
}

// AnalyzeAd consome um crédito do usuário e gera a narrativa de análise
// do anúncio informado. A análise é determinística, montada a partir das
// métricas e do conteúdo do anúncio, sem chamada a serviço externo.
func (s *Service) AnalyzeAd(userID int, input domain.AdAnalysisInput) (*domain.AdAnalysis, error) {
	if err := utils.Validate(input); err != nil || strings.TrimSpace(input.AdTitle) == "" || strings.TrimSpace(input.AdCopy) == "" {
		return nil, ErrMissingAdData
	}

	if err := s.userRepo.ConsumeCredit(userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientCredits
		}
		return nil, err
	}

	narrative := buildNarrative(input)

	analysis := &domain.AdAnalysis{
		Title:     input.AdTitle,
		Snippet:   input.AdSnippet,
		UserID:    userID,
		Analysis:  narrative,
		CreatedAt: time.Now().UTC(),
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da análise de anúncio")
		return analysis, nil
	}
	analysis.ID = id

	// A falha de persistência não invalida a análise já gerada.
	if err := s.analysisRepo.SaveAdAnalysis(analysis); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
		}).Warn("Erro ao salvar análise de anúncio no histórico")
	}

	return analysis, nil
}
