package linkfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Fetcher baixa a página de um anúncio e destila o texto relevante para
// análise. A extração tenta primeiro o go-readability; quando ele não
// reconhece artigo na página, cai para uma varredura simples com goquery.
type Fetcher interface {
	ExtractText(ctx context.Context, rawURL string) (string, error)
}

type fetcher struct {
	httpClient *http.Client
}

func New() Fetcher {
	return &fetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (f *fetcher) ExtractText(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar a página: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler a página: %w", err)
	}

	html := string(body)

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err == nil {
		text := strings.TrimSpace(article.TextContent)
		if text != "" {
			return text, nil
		}
	}

	return extractWithGoquery(html)
}

// extractWithGoquery varre título, meta description e os blocos de texto
// visíveis do documento.
func extractWithGoquery(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("erro ao interpretar o HTML: %w", err)
	}

	var parts []string

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		parts = append(parts, title)
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		if desc = strings.TrimSpace(desc); desc != "" {
			parts = append(parts, desc)
		}
	}

	doc.Find("h1,h2,h3,p,li").Each(func(i int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		return "", fmt.Errorf("nenhum texto relevante encontrado na página")
	}

	return strings.Join(parts, "\n"), nil
}
