package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/scheduler"
	"github.com/adgenius/adgenius-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeHistoryCleanup = "history-cleanup"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	HistoryCleanupService *scheduler.HistoryCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userIDFromContext(r) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeHistoryCleanup:
			if services.HistoryCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de histórico não disponível", nil)
				return
			}
			services.HistoryCleanupService.TriggerManualCleanup()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"cron_type": cronType,
		}).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs configuradas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userIDFromContext(r) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		status := map[string]any{}
		if services.HistoryCleanupService != nil {
			status[CronJobTypeHistoryCleanup] = services.HistoryCleanupService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
