package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/domain"
	"github.com/adgenius/adgenius-api/internal/usecases/discovering"
	"github.com/adgenius/adgenius-api/pkg/apiErrors"
	"github.com/adgenius/adgenius-api/pkg/middleware"
)

// userIDFromContext devolve o ID do usuário autenticado ou zero quando a
// requisição é anônima.
func userIDFromContext(r *http.Request) int {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return 0
	}
	return userClaims.UserID
}

// DiscoverInspirations agrega anúncios de todas as fontes para o produto
// pedido. O token é opcional: sem ele a busca funciona, mas nada é salvo
// no histórico.
func DiscoverInspirations(service discovering.Discoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.DiscoveryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Discover(r.Context(), userIDFromContext(r), req)
		if err != nil {
			if errors.Is(err, discovering.ErrMissingProduct) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O produto é obrigatório", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao buscar inspirações de anúncios")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar inspirações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// GetInspiration relê uma inspiração persistida do usuário autenticado.
func GetInspiration(service discovering.Discoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da inspiração não informado", nil)
			return
		}

		result, err := service.GetInspiration(userIDFromContext(r), id)
		if err != nil {
			if errors.Is(err, discovering.ErrInspirationNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Inspiração não encontrada", nil)
				return
			}

			logrus.WithError(err).WithFields(logrus.Fields{
				"inspiration_id": id,
			}).Error("Erro ao buscar inspiração")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar inspiração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
