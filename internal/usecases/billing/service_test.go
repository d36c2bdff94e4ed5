package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adgenius/adgenius-api/infrastructure/integrator/stripe"
	stripemocks "github.com/adgenius/adgenius-api/infrastructure/integrator/stripe/mocks"
	"github.com/adgenius/adgenius-api/infrastructure/repository/mocks"
)

func TestCreateCheckout(t *testing.T) {
	tests := []struct {
		name     string
		req      CheckoutRequest
		setup    func(stripeClient *stripemocks.MockClient)
		validate func(t *testing.T, resp *CheckoutResponse, err error)
	}{
		{
			name: "Sessão criada com quantidade e preço válidos",
			req:  CheckoutRequest{Quantity: 10, Price: 500},
			setup: func(stripeClient *stripemocks.MockClient) {
				stripeClient.EXPECT().
					CreateCheckoutSession(gomock.Any(), stripe.CheckoutParams{Quantity: 10, Price: 500}).
					Return(&stripe.CheckoutSession{
						ID:  "cs_test_123",
						URL: "https://checkout.stripe.com/pay/cs_test_123",
					}, nil)
			},
			validate: func(t *testing.T, resp *CheckoutResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "cs_test_123", resp.SessionID)
				assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", resp.URL)
			},
		},
		{
			name:  "Quantidade ausente retorna erro de validação",
			req:   CheckoutRequest{Price: 500},
			setup: func(stripeClient *stripemocks.MockClient) {},
			validate: func(t *testing.T, resp *CheckoutResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrMissingQuantityOrPrice)
			},
		},
		{
			name:  "Preço ausente retorna erro de validação",
			req:   CheckoutRequest{Quantity: 10},
			setup: func(stripeClient *stripemocks.MockClient) {},
			validate: func(t *testing.T, resp *CheckoutResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrMissingQuantityOrPrice)
			},
		},
		{
			name: "Stripe não configurado retorna erro de cobrança",
			req:  CheckoutRequest{Quantity: 10, Price: 500},
			setup: func(stripeClient *stripemocks.MockClient) {
				stripeClient.EXPECT().
					CreateCheckoutSession(gomock.Any(), gomock.Any()).
					Return(nil, stripe.ErrNotConfigured)
			},
			validate: func(t *testing.T, resp *CheckoutResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrBillingUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stripeClient := stripemocks.NewMockClient(ctrl)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(stripeClient)

			service := NewService(stripeClient, userRepo)
			resp, err := service.CreateCheckout(context.Background(), tt.req)
			tt.validate(t, resp, err)
		})
	}
}

func TestConfirmCheckout(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		setup     func(stripeClient *stripemocks.MockClient, userRepo *mocks.MockUserRepository)
		validate  func(t *testing.T, resp *ConfirmResponse, err error)
	}{
		{
			name:      "Sessão paga concede os créditos dos metadados",
			sessionID: "cs_test_123",
			setup: func(stripeClient *stripemocks.MockClient, userRepo *mocks.MockUserRepository) {
				stripeClient.EXPECT().
					GetCheckoutSession(gomock.Any(), "cs_test_123").
					Return(&stripe.CheckoutSession{
						ID:            "cs_test_123",
						PaymentStatus: "paid",
						Metadata:      map[string]string{"credits": "10"},
					}, nil)
				userRepo.EXPECT().AddCredits(7, 10).Return(nil)
			},
			validate: func(t *testing.T, resp *ConfirmResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 10, resp.Credited)
			},
		},
		{
			name:      "Sessão não paga não concede créditos",
			sessionID: "cs_test_123",
			setup: func(stripeClient *stripemocks.MockClient, userRepo *mocks.MockUserRepository) {
				stripeClient.EXPECT().
					GetCheckoutSession(gomock.Any(), "cs_test_123").
					Return(&stripe.CheckoutSession{
						ID:            "cs_test_123",
						PaymentStatus: "unpaid",
						Metadata:      map[string]string{"credits": "10"},
					}, nil)
			},
			validate: func(t *testing.T, resp *ConfirmResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrSessionNotPaid)
			},
		},
		{
			name:      "Sessão sem identificador retorna erro de validação",
			sessionID: "",
			setup:     func(stripeClient *stripemocks.MockClient, userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, resp *ConfirmResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrMissingSessionID)
			},
		},
		{
			name:      "Sessão paga sem metadados de créditos retorna erro",
			sessionID: "cs_test_123",
			setup: func(stripeClient *stripemocks.MockClient, userRepo *mocks.MockUserRepository) {
				stripeClient.EXPECT().
					GetCheckoutSession(gomock.Any(), "cs_test_123").
					Return(&stripe.CheckoutSession{
						ID:            "cs_test_123",
						PaymentStatus: "paid",
					}, nil)
			},
			validate: func(t *testing.T, resp *ConfirmResponse, err error) {
				assert.Nil(t, resp)
				assert.Error(t, err)
			},
		},
		{
			name:      "Falha ao creditar é propagada",
			sessionID: "cs_test_123",
			setup: func(stripeClient *stripemocks.MockClient, userRepo *mocks.MockUserRepository) {
				stripeClient.EXPECT().
					GetCheckoutSession(gomock.Any(), "cs_test_123").
					Return(&stripe.CheckoutSession{
						ID:            "cs_test_123",
						PaymentStatus: "paid",
						Metadata:      map[string]string{"credits": "10"},
					}, nil)
				userRepo.EXPECT().AddCredits(7, 10).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, resp *ConfirmResponse, err error) {
				assert.Nil(t, resp)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stripeClient := stripemocks.NewMockClient(ctrl)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(stripeClient, userRepo)

			service := NewService(stripeClient, userRepo)
			resp, err := service.ConfirmCheckout(context.Background(), 7, tt.sessionID)
			tt.validate(t, resp, err)
		})
	}
}
