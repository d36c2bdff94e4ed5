package analyzing

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adgenius/adgenius-api/infrastructure/repository/mocks"
	"github.com/adgenius/adgenius-api/internal/domain"
)

func TestAnalyzeAd(t *testing.T) {
	input := domain.AdAnalysisInput{
		AdTitle:        "Buy Now",
		AdCopy:         "Save big today, shop now!",
		AdSnippet:      "Limited time offer",
		Platform:       domain.PlatformFacebook,
		Industry:       "ecommerce",
		SuccessFactors: []string{"Strong call-to-action", "Visual appeal"},
		WhySuccessful:  "Combines urgency with a clear benefit",
		CTR:            6.0,
		ConversionRate: 1.5,
		CostPerClick:   0.5,
	}

	tests := []struct {
		name     string
		input    domain.AdAnalysisInput
		setup    func(userRepo *mocks.MockUserRepository, analysisRepo *mocks.MockAdAnalysisRepository)
		validate func(t *testing.T, analysis *domain.AdAnalysis, err error)
	}{
		{
			name:  "Análise completa com métricas classificadas por faixa",
			input: input,
			setup: func(userRepo *mocks.MockUserRepository, analysisRepo *mocks.MockAdAnalysisRepository) {
				userRepo.EXPECT().ConsumeCredit(7).Return(nil)
				analysisRepo.EXPECT().SaveAdAnalysis(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, analysis *domain.AdAnalysis, err error) {
				require.NoError(t, err)
				require.NotNil(t, analysis)

				// CTR 6.0 está na faixa mais alta, conversão 1.5 na mediana
				// e CPC 0.5 na mais eficiente.
				assert.Contains(t, analysis.Analysis, "Excellent")
				assert.Contains(t, analysis.Analysis, "Average - Typical performance")
				assert.Contains(t, analysis.Analysis, "Very efficient")

				assert.Contains(t, analysis.Analysis, "Clear call-to-action present.")
				assert.Contains(t, analysis.Analysis, "Urgency creates action motivation.")
				assert.Contains(t, analysis.Analysis, "Facebook Platform Insights")
				assert.Contains(t, analysis.Analysis, "Drives immediate user action")
				assert.Contains(t, analysis.Analysis, "Combines urgency with a clear benefit")

				assert.Equal(t, "Buy Now", analysis.Title)
				assert.NotEmpty(t, analysis.ID)
			},
		},
		{
			name:  "Sem créditos retorna erro de cobrança",
			input: input,
			setup: func(userRepo *mocks.MockUserRepository, analysisRepo *mocks.MockAdAnalysisRepository) {
				userRepo.EXPECT().ConsumeCredit(7).Return(sql.ErrNoRows)
			},
			validate: func(t *testing.T, analysis *domain.AdAnalysis, err error) {
				assert.Nil(t, analysis)
				assert.ErrorIs(t, err, ErrInsufficientCredits)
			},
		},
		{
			name:  "Título ausente retorna erro de validação sem consumir crédito",
			input: domain.AdAnalysisInput{AdCopy: "copy"},
			setup: func(userRepo *mocks.MockUserRepository, analysisRepo *mocks.MockAdAnalysisRepository) {},
			validate: func(t *testing.T, analysis *domain.AdAnalysis, err error) {
				assert.Nil(t, analysis)
				assert.ErrorIs(t, err, ErrMissingAdData)
			},
		},
		{
			name:  "Copy ausente retorna erro de validação sem consumir crédito",
			input: domain.AdAnalysisInput{AdTitle: "title"},
			setup: func(userRepo *mocks.MockUserRepository, analysisRepo *mocks.MockAdAnalysisRepository) {},
			validate: func(t *testing.T, analysis *domain.AdAnalysis, err error) {
				assert.Nil(t, analysis)
				assert.ErrorIs(t, err, ErrMissingAdData)
			},
		},
		{
			name:  "Falha de persistência não invalida a análise",
			input: input,
			setup: func(userRepo *mocks.MockUserRepository, analysisRepo *mocks.MockAdAnalysisRepository) {
				userRepo.EXPECT().ConsumeCredit(7).Return(nil)
				analysisRepo.EXPECT().SaveAdAnalysis(gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, analysis *domain.AdAnalysis, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, analysis.Analysis)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			analysisRepo := mocks.NewMockAdAnalysisRepository(ctrl)
			tt.setup(userRepo, analysisRepo)

			service := NewService(userRepo, analysisRepo)
			analysis, err := service.AnalyzeAd(7, tt.input)
			tt.validate(t, analysis, err)
		})
	}
}

func TestCtrAssessment(t *testing.T) {
	tests := []struct {
		name     string
		ctr      float64
		expected string
	}{
		{name: "CTR alto", ctr: 5, expected: "Excellent - Above industry average"},
		{name: "CTR competitivo", ctr: 3.5, expected: "Good - Competitive performance"},
		{name: "CTR mediano", ctr: 1, expected: "Average - Room for improvement"},
		{name: "CTR baixo", ctr: 0.4, expected: "Below average - Needs optimization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ctrAssessment(tt.ctr))
		})
	}
}

func TestAnalyzeHeadline(t *testing.T) {
	tests := []struct {
		name     string
		headline string
		contains []string
	}{
		{
			name:     "Título curto com urgência",
			headline: "Buy Now",
			contains: []string{"Concise and impactful.", "Urgency creates action motivation."},
		},
		{
			name:     "Título com número e pergunta",
			headline: "Want 50% off your next order today?",
			contains: []string{"Numbers add credibility.", "Question format increases engagement."},
		},
		{
			name:     "Título longo",
			headline: "The absolute best place to find every single thing you ever wanted",
			contains: []string{"Consider shortening for better impact."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeHeadline(tt.headline)
			for _, fragment := range tt.contains {
				assert.Contains(t, result, fragment)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	lowPerformance := recommendations(domain.AdAnalysisInput{CTR: 1, ConversionRate: 1})
	assert.Contains(t, lowPerformance, "Test different headlines")
	assert.Contains(t, lowPerformance, "Optimize landing page experience")

	highPerformance := recommendations(domain.AdAnalysisInput{CTR: 8, ConversionRate: 6})
	assert.NotContains(t, highPerformance, "Test different headlines")
	assert.NotContains(t, highPerformance, "Optimize landing page experience")
	assert.Contains(t, highPerformance, "A/B test different ad formats")
}

func TestCompetitiveLevel(t *testing.T) {
	tests := []struct {
		name           string
		ctr            float64
		conversionRate float64
		expected       string
	}{
		{name: "Elite", ctr: 6, conversionRate: 5, expected: "top-tier"},
		{name: "Acima da média", ctr: 4, conversionRate: 3, expected: "above-average"},
		{name: "Mediano", ctr: 2, conversionRate: 1.5, expected: "average"},
		{name: "Abaixo da média", ctr: 0.5, conversionRate: 0.5, expected: "below-average"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, competitiveLevel(tt.ctr, tt.conversionRate))
		})
	}
}
