package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/usecases/billing"
	"github.com/adgenius/adgenius-api/pkg/apiErrors"
)

type ConfirmCheckoutRequest struct {
	SessionID string `json:"sessionId"`
}

// CreateCheckout abre uma sessão de pagamento para a compra de créditos
// de análise.
func CreateCheckout(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req billing.CheckoutRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.CreateCheckout(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, billing.ErrMissingQuantityOrPrice):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Quantity e price são obrigatórios", nil)
			case errors.Is(err, billing.ErrBillingUnavailable):
				apiErrors.WriteError(w, apiErrors.ErrBillingUnavailable, "Provedor de pagamento não configurado", nil)
			default:
				logrus.WithError(err).Error("Erro ao criar sessão de pagamento")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao criar sessão de pagamento", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// ConfirmCheckout confirma uma sessão paga e concede os créditos ao
// usuário autenticado.
func ConfirmCheckout(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		if userID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ConfirmCheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.ConfirmCheckout(r.Context(), userID, req.SessionID)
		if err != nil {
			switch {
			case errors.Is(err, billing.ErrMissingSessionID):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O identificador da sessão é obrigatório", nil)
			case errors.Is(err, billing.ErrSessionNotPaid):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A sessão de pagamento ainda não foi concluída", nil)
			case errors.Is(err, billing.ErrBillingUnavailable):
				apiErrors.WriteError(w, apiErrors.ErrBillingUnavailable, "Provedor de pagamento não configurado", nil)
			default:
				logrus.WithError(err).Error("Erro ao confirmar sessão de pagamento")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao confirmar sessão de pagamento", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
