package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-guardian/internal/usecases/monitoring"
	"github.com/vfg2006/campaign-guardian/internal/usecases/registry"
	"github.com/vfg2006/campaign-guardian/pkg/apiErrors"
	"github.com/vfg2006/campaign-guardian/pkg/log"
)

// GetDecisionHistory retorna o histórico cronológico de decisões de uma entidade
func GetDecisionHistory(entities registry.EntityRegistry, monitor monitoring.Monitor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("entity_id", id).Info("decisions: fetching decision history for entity")

		if _, err := entities.GetEntity(id); err != nil {
			writeRegistryError(w, err, "Erro ao consultar entidade")
			return
		}

		decisions, err := monitor.History(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("decisions: failed to get decision history for entity")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de decisões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(decisions); err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("decisions: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetEntityRisk retorna o risco mais recente calculado para a entidade
func GetEntityRisk(entities registry.EntityRegistry, monitor monitoring.Monitor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("entity_id", id).Info("decisions: fetching latest risk for entity")

		if _, err := entities.GetEntity(id); err != nil {
			writeRegistryError(w, err, "Erro ao consultar entidade")
			return
		}

		decision, err := monitor.LatestDecision(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("decisions: failed to get latest decision for entity")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar última decisão", nil)
			return
		}

		if decision == nil || decision.Risk == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoDecisionHistory, "Entidade ainda não possui decisões registradas", map[string]interface{}{
				"entity_id": id,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(decision.Risk); err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("decisions: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
