package activity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adgenius/adgenius-api/infrastructure/repository/mocks"
	"github.com/adgenius/adgenius-api/internal/domain"
)

type historyMocks struct {
	inspirationRepo *mocks.MockInspirationRepository
	adAnalysisRepo  *mocks.MockAdAnalysisRepository
	campaignRepo    *mocks.MockCampaignAnalysisRepository
	linkRepo        *mocks.MockLinkAnalysisRepository
}

func newHistoryService(t *testing.T) (Historian, *historyMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &historyMocks{
		inspirationRepo: mocks.NewMockInspirationRepository(ctrl),
		adAnalysisRepo:  mocks.NewMockAdAnalysisRepository(ctrl),
		campaignRepo:    mocks.NewMockCampaignAnalysisRepository(ctrl),
		linkRepo:        mocks.NewMockLinkAnalysisRepository(ctrl),
	}

	return NewService(m.inspirationRepo, m.adAnalysisRepo, m.campaignRepo, m.linkRepo), m
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

func TestGetHistory_UnificaEOrdenaPorDataDecrescente(t *testing.T) {
	service, m := newHistoryService(t)
	filters := domain.HistoryFilters{}

	m.inspirationRepo.EXPECT().
		ListInspirations(7, filters).
		Return([]*domain.Inspiration{
			{
				ID:        "insp1",
				Product:   "sneakers",
				Industry:  "fashion",
				Platform:  domain.PlatformTikTok,
				Results:   []byte(`[{"title":"Ad","snippet":"s","copy":"c"}]`),
				CreatedAt: day(10),
			},
		}, nil)
	m.adAnalysisRepo.EXPECT().
		ListAdAnalyses(7, filters).
		Return([]*domain.AdAnalysis{
			{ID: "ad1", Title: "Buy Now", Analysis: "...", CreatedAt: day(12)},
		}, nil)
	m.campaignRepo.EXPECT().
		ListCampaignAnalyses(7, filters).
		Return([]*domain.CampaignAnalysis{
			{ID: "camp1", CampaignDetails: "carousel", Analysis: "...", CreatedAt: day(8)},
		}, nil)
	m.linkRepo.EXPECT().
		ListLinkAnalyses(7, filters).
		Return([]*domain.LinkAnalysis{
			{ID: "link1", LinkURL: "https://example.com", Analysis: "...", CreatedAt: day(11)},
		}, nil)

	history, err := service.GetHistory(7, filters)

	require.NoError(t, err)
	require.Len(t, history, 4)

	// Mais recente primeiro
	assert.Equal(t, "ad1", history[0].ID)
	assert.Equal(t, "link1", history[1].ID)
	assert.Equal(t, "insp1", history[2].ID)
	assert.Equal(t, "camp1", history[3].ID)

	assert.Equal(t, domain.ActivityAdAnalysis, history[0].Type)
	assert.Equal(t, "Ad Analysis: Buy Now", history[0].Title)

	assert.Equal(t, domain.ActivityAdInspiration, history[2].Type)
	assert.Equal(t, "Ad Inspiration for sneakers", history[2].Title)

	results, ok := history[2].Data["results"].([]domain.AdExample)
	require.True(t, ok)
	require.Len(t, results, 1)
	assert.Equal(t, "Ad", results[0].Title)
}

func TestGetHistory_VazioRetornaListaVazia(t *testing.T) {
	service, m := newHistoryService(t)
	filters := domain.HistoryFilters{}

	m.inspirationRepo.EXPECT().ListInspirations(7, filters).Return(nil, nil)
	m.adAnalysisRepo.EXPECT().ListAdAnalyses(7, filters).Return(nil, nil)
	m.campaignRepo.EXPECT().ListCampaignAnalyses(7, filters).Return(nil, nil)
	m.linkRepo.EXPECT().ListLinkAnalyses(7, filters).Return(nil, nil)

	history, err := service.GetHistory(7, filters)

	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)
}

func TestGetHistory_ErroDeRepositorioEhPropagado(t *testing.T) {
	service, m := newHistoryService(t)
	filters := domain.HistoryFilters{}

	m.inspirationRepo.EXPECT().
		ListInspirations(7, filters).
		Return(nil, errors.New("conexão recusada"))

	history, err := service.GetHistory(7, filters)

	assert.Nil(t, history)
	assert.Error(t, err)
}

func TestGetHistory_InspiracaoComResultadosCorrompidosAindaAparece(t *testing.T) {
	service, m := newHistoryService(t)
	filters := domain.HistoryFilters{}

	m.inspirationRepo.EXPECT().
		ListInspirations(7, filters).
		Return([]*domain.Inspiration{
			{ID: "insp1", Product: "hats", Results: []byte(`{not json`), CreatedAt: day(10)},
		}, nil)
	m.adAnalysisRepo.EXPECT().ListAdAnalyses(7, filters).Return(nil, nil)
	m.campaignRepo.EXPECT().ListCampaignAnalyses(7, filters).Return(nil, nil)
	m.linkRepo.EXPECT().ListLinkAnalyses(7, filters).Return(nil, nil)

	history, err := service.GetHistory(7, filters)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "insp1", history[0].ID)
}
