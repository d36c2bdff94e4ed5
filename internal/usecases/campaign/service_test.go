package campaign

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	linkfetchmocks "github.com/adgenius/adgenius-api/infrastructure/integrator/linkfetch/mocks"
	openaimocks "github.com/adgenius/adgenius-api/infrastructure/integrator/openai/mocks"
	"github.com/adgenius/adgenius-api/infrastructure/repository/mocks"
	"github.com/adgenius/adgenius-api/internal/domain"
)

type testMocks struct {
	openaiClient *openaimocks.MockClient
	linkFetcher  *linkfetchmocks.MockFetcher
	campaignRepo *mocks.MockCampaignAnalysisRepository
	linkRepo     *mocks.MockLinkAnalysisRepository
}

func newTestService(t *testing.T) (Analyzer, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testMocks{
		openaiClient: openaimocks.NewMockClient(ctrl),
		linkFetcher:  linkfetchmocks.NewMockFetcher(ctrl),
		campaignRepo: mocks.NewMockCampaignAnalysisRepository(ctrl),
		linkRepo:     mocks.NewMockLinkAnalysisRepository(ctrl),
	}

	return NewService(m.openaiClient, m.linkFetcher, m.campaignRepo, m.linkRepo), m
}

func TestAnalyzeCampaign(t *testing.T) {
	t.Run("Campanha válida é analisada e persistida", func(t *testing.T) {
		service, m := newTestService(t)

		m.openaiClient.EXPECT().
			ChatCompletion(gomock.Any(), "You are an expert ad analyst.", gomock.Any(), 300).
			DoAndReturn(func(_ context.Context, _, prompt string, _ int) (string, error) {
				assert.Contains(t, prompt, "Product: sneakers")
				assert.Contains(t, prompt, "Platform: facebook")
				assert.Contains(t, prompt, "Campaign Details: carousel with discount")
				return "Strong campaign with clear offer.", nil
			})

		var saved *domain.CampaignAnalysis
		m.campaignRepo.EXPECT().
			SaveCampaignAnalysis(gomock.Any()).
			DoAndReturn(func(analysis *domain.CampaignAnalysis) error {
				saved = analysis
				return nil
			})

		analysis, err := service.AnalyzeCampaign(context.Background(), 7, CampaignRequest{
			Product:  "sneakers",
			Platform: "facebook",
			Campaign: "carousel with discount",
		})

		require.NoError(t, err)
		assert.Equal(t, "Strong campaign with clear offer.", analysis.Analysis)
		require.NotNil(t, saved)
		assert.Equal(t, 7, saved.UserID)
		assert.NotEmpty(t, saved.ID)
	})

	t.Run("Campanha vazia retorna erro de validação", func(t *testing.T) {
		service, _ := newTestService(t)

		analysis, err := service.AnalyzeCampaign(context.Background(), 7, CampaignRequest{
			Product: "sneakers",
		})

		assert.Nil(t, analysis)
		assert.ErrorIs(t, err, ErrMissingCampaign)
	})

	t.Run("Erro da IA é propagado", func(t *testing.T) {
		service, m := newTestService(t)

		m.openaiClient.EXPECT().
			ChatCompletion(gomock.Any(), gomock.Any(), gomock.Any(), 300).
			Return("", errors.New("api indisponível"))

		analysis, err := service.AnalyzeCampaign(context.Background(), 7, CampaignRequest{
			Campaign: "carousel with discount",
		})

		assert.Nil(t, analysis)
		assert.Error(t, err)
	})

	t.Run("Falha de persistência não invalida a análise", func(t *testing.T) {
		service, m := newTestService(t)

		m.openaiClient.EXPECT().
			ChatCompletion(gomock.Any(), gomock.Any(), gomock.Any(), 300).
			Return("ok", nil)
		m.campaignRepo.EXPECT().
			SaveCampaignAnalysis(gomock.Any()).
			Return(errors.New("conexão recusada"))

		analysis, err := service.AnalyzeCampaign(context.Background(), 7, CampaignRequest{
			Campaign: "carousel with discount",
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", analysis.Analysis)
	})
}

func TestAnalyzeLink(t *testing.T) {
	t.Run("Texto direto dispensa a extração", func(t *testing.T) {
		service, m := newTestService(t)

		m.openaiClient.EXPECT().
			ChatCompletion(gomock.Any(), "You are an expert ad analyst.", gomock.Any(), 350).
			DoAndReturn(func(_ context.Context, _, prompt string, _ int) (string, error) {
				assert.Contains(t, prompt, "Shop the new collection today")
				return "Effective urgency framing.", nil
			})
		m.linkRepo.EXPECT().SaveLinkAnalysis(gomock.Any()).Return(nil)

		analysis, err := service.AnalyzeLink(context.Background(), 7, LinkRequest{
			AdText: "Shop the new collection today",
		})

		require.NoError(t, err)
		assert.Equal(t, "Effective urgency framing.", analysis.Analysis)
	})

	t.Run("URL sem texto passa pela extração", func(t *testing.T) {
		service, m := newTestService(t)

		m.linkFetcher.EXPECT().
			ExtractText(gomock.Any(), "https://example.com/ad").
			Return("Extracted ad body", nil)
		m.openaiClient.EXPECT().
			ChatCompletion(gomock.Any(), gomock.Any(), gomock.Any(), 350).
			DoAndReturn(func(_ context.Context, _, prompt string, _ int) (string, error) {
				assert.Contains(t, prompt, "Extracted ad body")
				return "Solid structure.", nil
			})

		var saved *domain.LinkAnalysis
		m.linkRepo.EXPECT().
			SaveLinkAnalysis(gomock.Any()).
			DoAndReturn(func(analysis *domain.LinkAnalysis) error {
				saved = analysis
				return nil
			})

		analysis, err := service.AnalyzeLink(context.Background(), 7, LinkRequest{
			URL: "https://example.com/ad",
		})

		require.NoError(t, err)
		assert.Equal(t, "Solid structure.", analysis.Analysis)
		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com/ad", saved.LinkURL)
	})

	t.Run("Sem texto e sem URL retorna erro de validação", func(t *testing.T) {
		service, _ := newTestService(t)

		analysis, err := service.AnalyzeLink(context.Background(), 7, LinkRequest{})

		assert.Nil(t, analysis)
		assert.ErrorIs(t, err, ErrMissingAdText)
	})

	t.Run("Falha de extração é propagada", func(t *testing.T) {
		service, m := newTestService(t)

		m.linkFetcher.EXPECT().
			ExtractText(gomock.Any(), "https://example.com/ad").
			Return("", errors.New("página inacessível"))

		analysis, err := service.AnalyzeLink(context.Background(), 7, LinkRequest{
			URL: "https://example.com/ad",
		})

		assert.Nil(t, analysis)
		assert.Error(t, err)
	})
}

func TestGenerateAd(t *testing.T) {
	t.Run("Resposta é separada em anúncio e análise", func(t *testing.T) {
		service, m := newTestService(t)

		m.openaiClient.EXPECT().
			ChatCompletion(gomock.Any(), "You are an expert ad copywriter and analyst.", gomock.Any(), 350).
			Return("Ad: Step into comfort with AirFlex.\nAnalysis: Short benefit-led copy works on feeds.", nil)

		generated, err := service.GenerateAd(context.Background(), GenerateAdRequest{
			Platform: "facebook",
			Product:  "AirFlex",
			Category: "sneakers",
		})

		require.NoError(t, err)
		assert.Equal(t, "Step into comfort with AirFlex.", generated.Ad)
		assert.Equal(t, "Short benefit-led copy works on feeds.", generated.Analysis)
	})

	t.Run("Resposta sem o marcador de análise mantém só o anúncio", func(t *testing.T) {
		service, m := newTestService(t)

		m.openaiClient.EXPECT().
			ChatCompletion(gomock.Any(), gomock.Any(), gomock.Any(), 350).
			Return("Ad: Step into comfort.", nil)

		generated, err := service.GenerateAd(context.Background(), GenerateAdRequest{
			Product: "AirFlex",
		})

		require.NoError(t, err)
		assert.Equal(t, "Step into comfort.", generated.Ad)
		assert.Empty(t, generated.Analysis)
	})

	t.Run("Produto vazio retorna erro de validação", func(t *testing.T) {
		service, _ := newTestService(t)

		generated, err := service.GenerateAd(context.Background(), GenerateAdRequest{})

		assert.Nil(t, generated)
		assert.ErrorIs(t, err, ErrMissingProduct)
	})
}
