package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/domain"
	"github.com/adgenius/adgenius-api/internal/usecases/activity"
	"github.com/adgenius/adgenius-api/pkg/apiErrors"
	"github.com/adgenius/adgenius-api/pkg/utils"
)

// GetHistory devolve a linha do tempo unificada de atividades do usuário,
// opcionalmente filtrada por start_date e end_date (YYYY-MM-DD).
func GetHistory(service activity.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		if userID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		history, err := service.GetHistory(userID, domain.HistoryFilters{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
			}).Error("Erro ao buscar histórico de atividades")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar histórico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"history": history,
		})
	}
}
