package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/adgenius/adgenius-api/internal/config"
)

// ErrNotConfigured indica que a chave secreta do Stripe não foi definida.
var ErrNotConfigured = errors.New("stripe não configurado")

// Client encapsula a API de Checkout do Stripe. A API aceita corpo
// form-encoded, não JSON.
type Client interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

type StripeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type CheckoutParams struct {
	Quantity int
	// Price é o valor unitário em centavos de dólar.
	Price int
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int               `json:"amount_total"`
	Metadata      map[string]string `json:"metadata"`
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	if c.config.Stripe.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint, err := url.Parse(c.config.Stripe.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/checkout/sessions")

	form := url.Values{}
	form.Set("payment_method_types[0]", "card")
	form.Set("mode", "payment")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][product_data][name]", fmt.Sprintf("AdGenius Analyses (%d)", params.Quantity))
	form.Set("line_items[0][price_data][product_data][description]", fmt.Sprintf("Unlock %d more ad analyses", params.Quantity))
	form.Set("line_items[0][price_data][unit_amount]", strconv.Itoa(params.Price))
	form.Set("line_items[0][quantity]", "1")
	// A quantidade comprada viaja nos metadados para que a confirmação
	// saiba quantos créditos conceder.
	form.Set("metadata[credits]", strconv.Itoa(params.Quantity))
	form.Set("success_url", c.config.App.BaseURL+c.config.Stripe.SuccessURL)
	form.Set("cancel_url", c.config.App.BaseURL+c.config.Stripe.CancelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.config.Stripe.SecretKey, "")

	return c.doSession(req)
}

func (c *StripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	if c.config.Stripe.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint, err := url.Parse(c.config.Stripe.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/checkout/sessions/", sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.SetBasicAuth(c.config.Stripe.SecretKey, "")

	return c.doSession(req)
}

func (c *StripeClient) doSession(req *http.Request) (*CheckoutSession, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao Stripe falhou com status: %s", resp.Status)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &session, nil
}
