package billing

import (
	"context"
	"errors"
	"strconv"

	"github.com/adgenius/adgenius-api/infrastructure/integrator/stripe"
	"github.com/adgenius/adgenius-api/infrastructure/repository"
	"github.com/adgenius/adgenius-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingQuantityOrPrice = errors.New("quantity e price são obrigatórios")
	ErrMissingSessionID       = errors.New("o identificador da sessão é obrigatório")
	ErrSessionNotPaid         = errors.New("a sessão de pagamento ainda não foi concluída")
	ErrBillingUnavailable     = errors.New("provedor de pagamento não configurado")
)

// CheckoutRequest descreve a compra de créditos: quantidade de análises
// e o valor unitário em centavos de dólar.
type CheckoutRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
	Price    int `json:"price" validate:"required,gt=0"`
}

// CheckoutResponse devolve a sessão criada no Stripe. O cliente redireciona
// o usuário para a URL e confirma a compra depois do retorno.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ConfirmResponse informa quantos créditos foram concedidos na confirmação.
type ConfirmResponse struct {
	Credited int `json:"credited"`
}

type Biller interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
	ConfirmCheckout(ctx context.Context, userID int, sessionID string) (*ConfirmResponse, error)
}

type Service struct {
	stripeClient stripe.Client
	userRepo     repository.UserRepository
}

func NewService(stripeClient stripe.Client, userRepo repository.UserRepository) Biller {
	return &Service{
		stripeClient: stripeClient,
		userRepo:     userRepo,
	}
}

// CreateCheckout abre uma sessão de pagamento no Stripe para a compra de
// créditos de análise.
func (s *Service) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, ErrMissingQuantityOrPrice
	}

	session, err := s.stripeClient.CreateCheckoutSession(ctx, stripe.CheckoutParams{
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		if errors.Is(err, stripe.ErrNotConfigured) {
			return nil, ErrBillingUnavailable
		}
		return nil, err
	}

	return &CheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// ConfirmCheckout consulta a sessão no Stripe e, quando o pagamento foi
// concluído, concede ao usuário os créditos registrados nos metadados
// da própria sessão.
func (s *Service) ConfirmCheckout(ctx context.Context, userID int, sessionID string) (*ConfirmResponse, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	session, err := s.stripeClient.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stripe.ErrNotConfigured) {
			return nil, ErrBillingUnavailable
		}
		return nil, err
	}

	if session.PaymentStatus != "paid" {
		return nil, ErrSessionNotPaid
	}

	credits, err := strconv.Atoi(session.Metadata["credits"])
	if err != nil || credits <= 0 {
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
			"metadata":   session.Metadata,
		}).Error("Sessão paga sem quantidade de créditos nos metadados")
		return nil, errors.New("sessão de pagamento sem quantidade de créditos")
	}

	if err := s.userRepo.AddCredits(userID, credits); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"session_id": sessionID,
		"credits":    credits,
	}).Info("Créditos de análise concedidos após pagamento")

	return &ConfirmResponse{Credited: credits}, nil
}
