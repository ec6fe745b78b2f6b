package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"github.com/vfg2006/campaign-guardian/internal/usecases/registry"
	"github.com/vfg2006/campaign-guardian/pkg/apiErrors"
)

func EntityList(service registry.EntityRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		statuses := make([]domain.EntityStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				statuses = append(statuses, domain.EntityStatus(status))
			}
		}

		entities, err := service.ListEntities(statuses)
		if err != nil {
			logrus.Error("Error listing entities:", err)
			writeRegistryError(w, err, "Erro ao listar entidades")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(entities); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetEntity(service registry.EntityRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entity, err := service.GetEntity(id)
		if err != nil {
			writeRegistryError(w, err, "Erro ao consultar entidade")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(entity); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func RegisterEntity(service registry.EntityRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterEntity")

		var request domain.RegisterEntityRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		entity, err := service.RegisterEntity(&request)
		if err != nil {
			logrus.Error("Error registering entity:", err)
			writeRegistryError(w, err, "Erro ao cadastrar entidade")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(entity); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateEntity(service registry.EntityRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEntity")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entidade é obrigatório", nil)
			return
		}

		var request domain.UpdateEntityRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		request.ID = id

		entity, err := service.UpdateEntity(&request)
		if err != nil {
			logrus.Error("Error updating entity:", err)
			writeRegistryError(w, err, "Erro ao atualizar entidade")
			return
		}

		if err := json.NewEncoder(w).Encode(entity); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeRegistryError traduz erros do cadastro de entidades para a resposta da API
func writeRegistryError(w http.ResponseWriter, err error, fallback string) {
	var registryErr *registry.RegistryError
	if errors.As(err, &registryErr) {
		var details map[string]interface{}
		if registryErr.EntityID != "" {
			details = map[string]interface{}{
				"entity_id": registryErr.EntityID,
			}
		}
		apiErrors.WriteError(w, registryErr.Code, registryErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
