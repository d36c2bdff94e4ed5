package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/domain"
	"github.com/adgenius/adgenius-api/internal/usecases/analyzing"
	"github.com/adgenius/adgenius-api/pkg/apiErrors"
)

// AnalyzeAd gera a narrativa de análise para um anúncio escolhido pelo
// usuário. Consome um crédito de análise.
func AnalyzeAd(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		if userID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var input domain.AdAnalysisInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		analysis, err := service.AnalyzeAd(userID, input)
		if err != nil {
			switch {
			case errors.Is(err, analyzing.ErrMissingAdData):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título e copy do anúncio são obrigatórios", nil)
			case errors.Is(err, analyzing.ErrInsufficientCredits):
				apiErrors.WriteError(w, apiErrors.ErrInsufficientCredits, "Créditos de análise esgotados", nil)
			default:
				logrus.WithError(err).Error("Erro ao analisar anúncio")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao analisar anúncio", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analysis)
	}
}
