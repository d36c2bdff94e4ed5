package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/config"
	"github.com/adgenius/adgenius-api/pkg/utils"
)

// Client encapsula a API de chat completions da OpenAI.
type Client interface {
	ChatCompletion(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion envia o par sistema/usuário e devolve o texto da primeira
// escolha. Resposta sem escolhas devolve um texto padrão, não um erro.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	if c.config.OpenAI.APIKey == "" {
		return "", fmt.Errorf("chave da API da OpenAI não configurada")
	}

	endpoint, err := url.Parse(c.config.OpenAI.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/chat/completions")

	payload, err := json.Marshal(chatCompletionRequest{
		Model: c.config.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao montar a requisição: %w", err)
	}

	logrus.Debugf("Payload enviado à OpenAI: %s", utils.PrettyJson(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.OpenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("requisição à OpenAI falhou com status %s: %s", resp.Status, string(body))
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(response.Choices) == 0 {
		return "No analysis generated.", nil
	}

	return response.Choices[0].Message.Content, nil
}
