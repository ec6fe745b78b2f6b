package registry

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian/infrastructure/repository"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"github.com/vfg2006/campaign-guardian/pkg/apiErrors"
	"github.com/vfg2006/campaign-guardian/pkg/utils"
)

// EntityRegistry gerencia o cadastro das entidades sob monitoramento
type EntityRegistry interface {
	ListEntities(statuses []domain.EntityStatus) ([]*domain.MonitoredEntity, error)
	GetEntity(id string) (*domain.MonitoredEntity, error)
	RegisterEntity(request *domain.RegisterEntityRequest) (*domain.MonitoredEntity, error)
	UpdateEntity(request *domain.UpdateEntityRequest) (*domain.MonitoredEntity, error)
}

type Service struct {
	entityRepository repository.MonitoredEntityRepository
}

func NewService(entityRepository repository.MonitoredEntityRepository) EntityRegistry {
	return &Service{
		entityRepository: entityRepository,
	}
}

func (s *Service) ListEntities(statuses []domain.EntityStatus) ([]*domain.MonitoredEntity, error) {
	entities, err := s.entityRepository.ListEntities(statuses)
	if err != nil {
		return nil, NewRegistryError(ErrFetchEntities, apiErrors.ErrDatabaseOperation, "Falha ao listar entidades no banco de dados")
	}

	return entities, nil
}

func (s *Service) GetEntity(id string) (*domain.MonitoredEntity, error) {
	if id == "" {
		return nil, NewRegistryError(ErrEntityIDRequired, apiErrors.ErrMissingRequiredData, "ID da entidade é obrigatório")
	}

	entity, err := s.entityRepository.GetByID(id)
	if err != nil {
		return nil, NewRegistryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao consultar entidade no banco de dados")
	}

	if entity == nil {
		return nil, NewRegistryErrorWithID(ErrEntityNotFound, apiErrors.ErrEntityNotFound, id, "Entidade não encontrada")
	}

	return entity, nil
}

// RegisterEntity cadastra uma nova entidade e a coloca sob monitoramento
func (s *Service) RegisterEntity(request *domain.RegisterEntityRequest) (*domain.MonitoredEntity, error) {
	if request.ExternalID == "" || request.Name == "" {
		return nil, NewRegistryError(ErrEntityIDRequired, apiErrors.ErrMissingRequiredData, "external_id e name são obrigatórios")
	}

	if !domain.IsValidEntityType(request.Type) {
		return nil, NewRegistryError(ErrInvalidEntityType, apiErrors.ErrInvalidRequest, "Tipo de entidade inválido. Valores aceitos: campaign, ad_set, ad")
	}

	entityID, err := utils.GenerateID()
	if err != nil {
		return nil, NewRegistryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para entidade")
	}

	entity := &domain.MonitoredEntity{
		ID:          entityID,
		ExternalID:  request.ExternalID,
		AccountID:   request.AccountID,
		Name:        request.Name,
		Type:        request.Type,
		Status:      domain.EntityStatusActive,
		DailyBudget: request.DailyBudget,
	}

	if err := s.entityRepository.SaveOrUpdate(entity); err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": request.ExternalID,
			"error":       err.Error(),
		}).Error("Erro ao salvar entidade no banco de dados")
		return nil, NewRegistryErrorWithID(ErrSaveEntity, apiErrors.ErrDatabaseOperation, entityID, "Falha ao salvar entidade no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"entity_id":   entity.ID,
		"external_id": entity.ExternalID,
		"entity_type": string(entity.Type),
	}).Info("Entidade cadastrada para monitoramento")

	return entity, nil
}

// UpdateEntity aplica uma atualização parcial na entidade cadastrada
func (s *Service) UpdateEntity(request *domain.UpdateEntityRequest) (*domain.MonitoredEntity, error) {
	entity, err := s.GetEntity(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Status != nil {
		switch *request.Status {
		case domain.EntityStatusActive, domain.EntityStatusPaused, domain.EntityStatusArchived:
		default:
			return nil, NewRegistryErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, entity.ID, "Status inválido. Valores aceitos: ACTIVE, PAUSED, ARCHIVED")
		}
		entity.Status = *request.Status
	}

	if request.Name != nil {
		entity.Name = *request.Name
	}

	if request.DailyBudget != nil {
		entity.DailyBudget = *request.DailyBudget
	}

	if err := s.entityRepository.SaveOrUpdate(entity); err != nil {
		return nil, NewRegistryErrorWithID(ErrSaveEntity, apiErrors.ErrDatabaseOperation, entity.ID, "Falha ao atualizar entidade no banco de dados")
	}

	return entity, nil
}
