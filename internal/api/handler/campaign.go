package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/usecases/campaign"
	"github.com/adgenius/adgenius-api/pkg/apiErrors"
)

// AnalyzeCampaign envia os detalhes da campanha para a análise da IA.
func AnalyzeCampaign(service campaign.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req campaign.CampaignRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		analysis, err := service.AnalyzeCampaign(r.Context(), userIDFromContext(r), req)
		if err != nil {
			if errors.Is(err, campaign.ErrMissingCampaign) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os detalhes da campanha são obrigatórios", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao analisar campanha")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao analisar campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analysis)
	}
}

// AnalyzeLink analisa o texto de um anúncio, extraindo-o da página quando
// apenas a URL é informada.
func AnalyzeLink(service campaign.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req campaign.LinkRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		analysis, err := service.AnalyzeLink(r.Context(), userIDFromContext(r), req)
		if err != nil {
			if errors.Is(err, campaign.ErrMissingAdText) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O texto do anúncio ou a URL são obrigatórios", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao analisar link de anúncio")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao analisar link de anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analysis)
	}
}

// GenerateAd pede um anúncio novo à IA para o produto informado.
func GenerateAd(service campaign.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req campaign.GenerateAdRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		generated, err := service.GenerateAd(r.Context(), req)
		if err != nil {
			if errors.Is(err, campaign.ErrMissingProduct) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O produto é obrigatório", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao gerar anúncio")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generated)
	}
}
