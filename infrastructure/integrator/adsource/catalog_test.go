package adsource

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/adgenius/adgenius-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(seed int64) *Catalog {
	return NewCatalog(rand.New(rand.NewSource(seed)))
}

func TestProductAds_TemaDeChapeus(t *testing.T) {
	catalog := newTestCatalog(42)

	ads := catalog.ProductAds("hats", "fashion")
	require.Len(t, ads, 3)

	// Todos os registros do tema devem mencionar chapéus ou bonés
	for _, ad := range ads {
		text := strings.ToLower(ad.Title + " " + ad.Snippet + " " + ad.Copy)
		mentions := strings.Contains(text, "hat") || strings.Contains(text, "cap")
		assert.True(t, mentions, "registro do tema não menciona hat/cap: %s", ad.Title)
	}
}

func TestProductAds_PrimeiroTemaQueCasaVence(t *testing.T) {
	catalog := newTestCatalog(42)

	tests := []struct {
		name     string
		product  string
		expected string
	}{
		{
			name:     "produto com cap e card casa com o tema de chapéus",
			product:  "cap card holder",
			expected: "hat",
		},
		{
			name:     "pokemon casa com o tema de cartas",
			product:  "pokemon booster",
			expected: "pokemon",
		},
		{
			name:     "sneaker casa com o tema de tênis",
			product:  "sneakers",
			expected: "sneaker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ads := catalog.ProductAds(tt.product, "ecommerce")
			require.NotEmpty(t, ads)

			found := false
			for _, ad := range ads {
				if strings.Contains(strings.ToLower(ad.Title+ad.Snippet+ad.Copy), tt.expected) {
					found = true
					break
				}
			}
			assert.True(t, found, "tema esperado %q não apareceu", tt.expected)
		})
	}
}

func TestProductAds_ProdutoGenerico(t *testing.T) {
	catalog := newTestCatalog(7)

	ads := catalog.ProductAds("mechanical keyboard", "technology")
	require.Len(t, ads, 3)

	for _, ad := range ads {
		assert.Contains(t, ad.Title, "mechanical keyboard")
	}
}

func TestProductAds_JitterNaoDeterministicoEntreChamadas(t *testing.T) {
	catalog := newTestCatalog(42)

	first := catalog.ProductAds("hats", "fashion")
	second := catalog.ProductAds("hats", "fashion")

	// Mesmos parâmetros, valores numéricos diferentes: o jitter é proposital
	different := false
	for i := range first {
		for j := range second {
			if first[i].Title == second[j].Title && first[i].CTR != second[j].CTR {
				different = true
			}
		}
	}
	assert.True(t, different, "chamadas repetidas deveriam produzir métricas diferentes")
}

func TestProductAds_DeterministicoComMesmaSemente(t *testing.T) {
	first := newTestCatalog(123).ProductAds("hats", "fashion")
	second := newTestCatalog(123).ProductAds("hats", "fashion")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].CTR, second[i].CTR)
		assert.Equal(t, first[i].Spend, second[i].Spend)
	}
}

func TestPromotionalVideos_TemaEDecoracao(t *testing.T) {
	catalog := newTestCatalog(42)

	videos := catalog.PromotionalVideos("pokemon cards", "ecommerce")
	require.Len(t, videos, 3)

	platforms := map[string]bool{}
	for _, video := range videos {
		platforms[video.Platform] = true
		assert.Equal(t, "ecommerce", video.Industry)
		assert.NotEmpty(t, video.SemanticTags)
		assert.NotEmpty(t, video.RealLink)
		assert.Contains(t, strings.ToLower(video.Title+video.Snippet), "pokemon")
	}

	// O conjunto temático cobre youtube, instagram e tiktok
	assert.True(t, platforms[domain.PlatformYouTube])
	assert.True(t, platforms[domain.PlatformInstagram])
	assert.True(t, platforms[domain.PlatformTikTok])
}

func TestPlatformFallback_DecoraMetadados(t *testing.T) {
	catalog := newTestCatalog(42)

	ads := catalog.PlatformFallback("hats", "fashion", FallbackProfile{
		Platform:      domain.PlatformGoogle,
		Advertiser:    "Various advertisers",
		RelevanceBase: 85,
		RelevanceSpan: 15,
	})
	require.Len(t, ads, 3)

	for i, ad := range ads {
		assert.Equal(t, domain.PlatformGoogle, ad.Platform)
		assert.Equal(t, "fashion", ad.Industry)
		assert.NotEmpty(t, ad.Advertiser)
		assert.Equal(t, fmt.Sprintf("google_fallback_%d", i), ad.AdID)
		assert.Contains(t, ad.RealLink, "google.com")
		assert.GreaterOrEqual(t, ad.RelevanceScore, 85.0)
		assert.LessOrEqual(t, ad.RelevanceScore, 100.0)
	}
}

func TestProductCategory(t *testing.T) {
	catalog := newTestCatalog(1)

	assert.Equal(t, "athletic-footwear", catalog.ProductCategory("sneakers"))
	assert.Equal(t, "computer-accessories", catalog.ProductCategory("Keyboard"))
	assert.Equal(t, "general", catalog.ProductCategory("abacaxi"))
}

func TestSemanticTags(t *testing.T) {
	catalog := newTestCatalog(1)

	tags := catalog.SemanticTags("Hats", "fashion")
	assert.Contains(t, tags, "hats")
	assert.Contains(t, tags, "fashion")
	assert.Contains(t, tags, "style")

	// Indústria desconhecida gera apenas as duas tags básicas
	unknown := catalog.SemanticTags("hats", "aviation")
	assert.Len(t, unknown, 2)
}

func TestRealAdLink(t *testing.T) {
	catalog := newTestCatalog(1)

	tests := []struct {
		platform string
		contains string
	}{
		{domain.PlatformFacebook, "facebook.com/ads/library"},
		{domain.PlatformGoogle, "google.com/search"},
		{domain.PlatformInstagram, "instagram.com/explore/tags/hats/"},
		{domain.PlatformTikTok, "tiktok.com/search"},
		{domain.PlatformYouTube, "youtube.com/results"},
		{"desconhecida", "facebook.com/ads/library"},
	}

	for _, tt := range tests {
		link := catalog.RealAdLink("hats", "fashion", tt.platform)
		assert.Contains(t, link, tt.contains, "plataforma %s", tt.platform)
	}
}
