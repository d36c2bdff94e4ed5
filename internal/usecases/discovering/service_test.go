package discovering

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adgenius/adgenius-api/infrastructure/integrator/adsource"
	sourcemocks "github.com/adgenius/adgenius-api/infrastructure/integrator/adsource/mocks"
	"github.com/adgenius/adgenius-api/infrastructure/repository/mocks"
	"github.com/adgenius/adgenius-api/internal/config"
	"github.com/adgenius/adgenius-api/internal/domain"
)

func newTestService(t *testing.T, repo *mocks.MockInspirationRepository) Discoverer {
	t.Helper()

	catalog := adsource.NewCatalog(rand.New(rand.NewSource(42)))

	// Nenhuma credencial configurada: todas as fontes degradam para fallback.
	cfg := config.Sources{}
	sources := []adsource.Source{
		adsource.NewGoogleSource(cfg, catalog),
		adsource.NewFacebookSource(cfg, catalog),
		adsource.NewTikTokSource(cfg, catalog),
		adsource.NewInstagramSource(cfg, catalog),
		adsource.NewYouTubeSource(cfg, catalog),
		adsource.NewSemrushSource(cfg, catalog),
		adsource.NewSpyFuSource(cfg, catalog),
	}

	return NewService(sources, catalog, repo)
}

func TestDiscover_SemCredenciaisSempreRetornaResultados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, mocks.NewMockInspirationRepository(ctrl))

	result, err := service.Discover(context.Background(), 0, domain.DiscoveryRequest{
		Product:  "sneakers",
		Platform: domain.PlatformAll,
		Industry: "fashion",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Examples)
	assert.Empty(t, result.InspirationID) // Usuário anônimo não persiste

	for _, example := range result.Examples {
		assert.GreaterOrEqual(t, example.RelevanceScore, 0.0)
		assert.LessOrEqual(t, example.RelevanceScore, 100.0)
	}
}

func TestDiscover_ResultadosOrdenadosPorRelevanciaDecrescente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, mocks.NewMockInspirationRepository(ctrl))

	result, err := service.Discover(context.Background(), 0, domain.DiscoveryRequest{
		Product: "pokemon cards",
	})

	require.NoError(t, err)
	for i := 1; i < len(result.Examples); i++ {
		assert.GreaterOrEqual(t,
			result.Examples[i-1].RelevanceScore,
			result.Examples[i].RelevanceScore,
			"posição %d deveria ter pontuação menor ou igual à anterior", i,
		)
	}
}

func TestDiscover_AplicaPadroesDePlataformaEIndustria(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, mocks.NewMockInspirationRepository(ctrl))

	result, err := service.Discover(context.Background(), 0, domain.DiscoveryRequest{
		Product: "hats",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PlatformFacebook, result.Platform)
	assert.Equal(t, "ecommerce", result.Industry)
}

func TestDiscover_ProdutoObrigatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, mocks.NewMockInspirationRepository(ctrl))

	tests := []struct {
		name    string
		product string
	}{
		{name: "Produto vazio", product: ""},
		{name: "Produto só com espaços", product: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Discover(context.Background(), 0, domain.DiscoveryRequest{
				Product: tt.product,
			})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrMissingProduct)
		})
	}
}

func TestDiscover_PersisteInspiracaoParaUsuarioAutenticado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockInspirationRepository(ctrl)
	service := newTestService(t, repo)

	var saved *domain.Inspiration
	repo.EXPECT().
		SaveInspiration(gomock.Any()).
		DoAndReturn(func(inspiration *domain.Inspiration) error {
			saved = inspiration
			return nil
		})

	result, err := service.Discover(context.Background(), 7, domain.DiscoveryRequest{
		Product:  "sneakers",
		Platform: domain.PlatformTikTok,
		Industry: "fashion",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, result.InspirationID, saved.ID)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 7, saved.UserID)
	assert.Equal(t, "sneakers", saved.Product)
	assert.Equal(t, domain.PlatformTikTok, saved.Platform)
	assert.NotEmpty(t, saved.Results)
}

func TestDiscover_FalhaDePersistenciaNaoDerrubaABusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockInspirationRepository(ctrl)
	service := newTestService(t, repo)

	repo.EXPECT().
		SaveInspiration(gomock.Any()).
		Return(errors.New("conexão recusada"))

	result, err := service.Discover(context.Background(), 7, domain.DiscoveryRequest{
		Product: "hats",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Examples)
	assert.Empty(t, result.InspirationID)
}

func TestDiscover_FonteComErroDegradaParaFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := adsource.NewCatalog(rand.New(rand.NewSource(42)))

	src := sourcemocks.NewMockSource(ctrl)
	src.EXPECT().AlwaysOn().Return(false)
	src.EXPECT().Platform().Return(domain.PlatformFacebook).AnyTimes()
	src.EXPECT().HasCredential().Return(true)
	src.EXPECT().
		Fetch(gomock.Any(), "hats", "ecommerce").
		Return(nil, errors.New("api indisponível"))
	src.EXPECT().
		Fallback("hats", "ecommerce").
		Return([]domain.AdExample{{
			Title:    "Fallback Ad",
			Platform: domain.PlatformFacebook,
			Industry: "ecommerce",
		}})

	service := NewService([]adsource.Source{src}, catalog, nil)

	result, err := service.Discover(context.Background(), 0, domain.DiscoveryRequest{
		Product: "hats",
	})

	require.NoError(t, err)

	var found bool
	for _, example := range result.Examples {
		if example.Title == "Fallback Ad" {
			found = true
		}
	}
	assert.True(t, found, "o anúncio de fallback deveria aparecer na agregação")
}

func TestDiscover_FonteSempreAtivaSemCredencialEhIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := adsource.NewCatalog(rand.New(rand.NewSource(42)))

	src := sourcemocks.NewMockSource(ctrl)
	src.EXPECT().AlwaysOn().Return(true)
	src.EXPECT().HasCredential().Return(false)

	service := NewService([]adsource.Source{src}, catalog, nil)

	result, err := service.Discover(context.Background(), 0, domain.DiscoveryRequest{
		Product:  "hats",
		Platform: domain.PlatformGoogle,
	})

	require.NoError(t, err)
	// Sobram apenas os vídeos promocionais da agregação base.
	for _, example := range result.Examples {
		assert.NotEmpty(t, example.Title)
	}
}

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name     string
		ad       domain.AdExample
		product  string
		industry string
		platform string
		expected float64
	}{
		{
			name:     "Plataforma compatível soma 30",
			ad:       domain.AdExample{Platform: domain.PlatformFacebook, Title: "x", Snippet: "y", Copy: "z"},
			product:  "hats",
			industry: "fashion",
			platform: domain.PlatformFacebook,
			expected: 30,
		},
		{
			name:     "Plataforma all pontua qualquer anúncio",
			ad:       domain.AdExample{Platform: domain.PlatformTikTok, Title: "x", Snippet: "y", Copy: "z"},
			product:  "hats",
			industry: "fashion",
			platform: domain.PlatformAll,
			expected: 30,
		},
		{
			name:     "Indústria idêntica soma 25",
			ad:       domain.AdExample{Platform: domain.PlatformGoogle, Industry: "fashion", Title: "x", Snippet: "y", Copy: "z"},
			product:  "hats",
			industry: "fashion",
			platform: domain.PlatformFacebook,
			expected: 25,
		},
		{
			name:     "Indústria com caixa diferente não pontua",
			ad:       domain.AdExample{Platform: domain.PlatformGoogle, Industry: "Fashion", Title: "x", Snippet: "y", Copy: "z"},
			product:  "hats",
			industry: "fashion",
			platform: domain.PlatformFacebook,
			expected: 0,
		},
		{
			name:     "Produto mencionado no título soma 40",
			ad:       domain.AdExample{Platform: domain.PlatformGoogle, Title: "Best Hats 2024", Snippet: "y", Copy: "z"},
			product:  "hats",
			industry: "fashion",
			platform: domain.PlatformFacebook,
			expected: 40,
		},
		{
			name: "Métricas entram como bônus proporcional",
			ad: domain.AdExample{
				Platform: domain.PlatformGoogle,
				Title:    "x", Snippet: "y", Copy: "z",
				CTR:            10,
				ConversionRate: 10,
			},
			product:  "hats",
			industry: "fashion",
			platform: domain.PlatformFacebook,
			expected: 8, // 10*0.5 + 10*0.3
		},
		{
			name: "Pontuação máxima é limitada a 100",
			ad: domain.AdExample{
				Platform: domain.PlatformFacebook,
				Industry: "fashion",
				Title:    "Hats on sale",
				Snippet:  "y", Copy: "z",
				CTR:            80,
				ConversionRate: 50,
			},
			product:  "hats",
			industry: "fashion",
			platform: domain.PlatformFacebook,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := relevanceScore(&tt.ad, tt.product, tt.industry, tt.platform)
			assert.InDelta(t, tt.expected, score, 0.0001)
		})
	}
}

func TestGetInspiration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockInspirationRepository(ctrl)
	service := NewService(nil, nil, repo)

	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result *DiscoveryResult, err error)
	}{
		{
			name: "Inspiração existente é relida com os exemplos",
			setup: func() {
				repo.EXPECT().
					GetInspirationByID(7, "abc123").
					Return(&domain.Inspiration{
						ID:        "abc123",
						UserID:    7,
						Platform:  domain.PlatformFacebook,
						Industry:  "ecommerce",
						Product:   "hats",
						Results:   []byte(`[{"title":"Stored Ad","snippet":"s","copy":"c","platform":"facebook"}]`),
						CreatedAt: createdAt,
					}, nil)
			},
			validate: func(t *testing.T, result *DiscoveryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "abc123", result.InspirationID)
				assert.Equal(t, createdAt, result.CreatedAt)
				require.Len(t, result.Examples, 1)
				assert.Equal(t, "Stored Ad", result.Examples[0].Title)
			},
		},
		{
			name: "Inspiração inexistente retorna erro de não encontrado",
			setup: func() {
				repo.EXPECT().
					GetInspirationByID(7, "missing").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *DiscoveryResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrInspirationNotFound)
			},
		},
		{
			name: "Resultados corrompidos retornam erro de leitura",
			setup: func() {
				repo.EXPECT().
					GetInspirationByID(7, "corrupt").
					Return(&domain.Inspiration{
						ID:      "corrupt",
						UserID:  7,
						Results: []byte(`{not json`),
					}, nil)
			},
			validate: func(t *testing.T, result *DiscoveryResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrInspirationUnreadable)
			},
		},
	}

	ids := []string{"abc123", "missing", "corrupt"}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			result, err := service.GetInspiration(7, ids[i])
			tt.validate(t, result, err)
		})
	}
}
