package meta

import (
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-guardian/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-guardian/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-guardian/internal/config"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"github.com/vfg2006/campaign-guardian/pkg/utils"
)

// MetaIntegrator adapta a Graph API do Meta para o motor de decisão:
// busca a performance das entidades monitoradas e executa os comandos
// emitidos pelas regras.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchPerformance busca os insights da entidade na janela informada e os
// normaliza no registro de performance consumido pelo motor
func (s *MetaIntegrator) FetchPerformance(entity *domain.MonitoredEntity, window domain.Window) (*domain.PerformanceRecord, error) {
	insight, err := s.Client.GetEntityInsights(entity.ExternalID, entity.Type, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":   entity.ID,
			"external_id": entity.ExternalID,
			"error":       err.Error(),
		}).Error("insights: falha ao buscar insights da entidade na API")
		return nil, fmt.Errorf("erro ao buscar insights da entidade %s: %w", entity.ID, err)
	}

	return s.factoryPerformanceRecord(entity, window, insight), nil
}

func (s *MetaIntegrator) factoryPerformanceRecord(entity *domain.MonitoredEntity, window domain.Window, insight *metadomain.EntityInsight) *domain.PerformanceRecord {
	record := &domain.PerformanceRecord{
		EntityID:     entity.ID,
		EntityType:   entity.Type,
		WindowStart:  window.Start,
		WindowEnd:    window.End,
		Spend:        metadomain.ParsedFloat("spend", insight.Spend),
		Revenue:      insight.Revenue(),
		Impressions:  metadomain.ParsedInt("impressions", insight.Impressions),
		Clicks:       metadomain.ParsedInt("clicks", insight.Clicks),
		Conversions:  insight.Conversions(),
		Frequency:    metadomain.ParsedFloat("frequency", insight.Frequency),
		QualityScore: insight.QualityScore(),
		DailyBudget:  entity.DailyBudget,
	}

	// Idade e estagnação derivam do cadastro da entidade, não da API
	now := window.End
	if !entity.CreatedAt.IsZero() {
		record.EntityAgeDays = int(now.Sub(entity.CreatedAt).Hours() / 24)
	}
	if !entity.UpdatedAt.IsZero() {
		record.DaysSinceOptimization = int(now.Sub(entity.UpdatedAt).Hours() / 24)
	}

	return record
}

// Execute aplica um comando do motor na entidade correspondente via Graph API.
// Comandos que não alteram estado (noop, alert, require_approval) não geram
// chamadas à API.
func (s *MetaIntegrator) Execute(entity *domain.MonitoredEntity, command domain.Command) error {
	switch command.Type {
	case domain.CommandPause:
		return s.pauseEntity(entity, command)
	case domain.CommandAdjustBudget:
		return s.adjustBudget(entity, command)
	case domain.CommandNoOp, domain.CommandAlert, domain.CommandRequireApproval:
		return nil
	default:
		return fmt.Errorf("comando desconhecido: %s", command.Type)
	}
}

func (s *MetaIntegrator) pauseEntity(entity *domain.MonitoredEntity, command domain.Command) error {
	if err := s.Client.UpdateEntityStatus(entity.ExternalID, string(domain.EntityStatusPaused)); err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":   entity.ID,
			"external_id": entity.ExternalID,
			"error":       err.Error(),
		}).Error("command: falha ao pausar entidade na API")
		return fmt.Errorf("erro ao pausar entidade %s: %w", entity.ID, err)
	}

	logrus.WithFields(logrus.Fields{
		"entity_id": entity.ID,
		"severity":  command.Severity,
	}).Info("command: entidade pausada com sucesso")

	return nil
}

func (s *MetaIntegrator) adjustBudget(entity *domain.MonitoredEntity, command domain.Command) error {
	current, err := s.Client.GetEntityDailyBudget(entity.ExternalID)
	if err != nil {
		return fmt.Errorf("erro ao buscar orçamento atual da entidade %s: %w", entity.ID, err)
	}

	if current <= 0 {
		return fmt.Errorf("entidade %s não possui orçamento diário próprio para ajustar", entity.ID)
	}

	newBudget := utils.RoundWithTwoDecimalPlace(current * (1 + command.BudgetDeltaPct/100))
	if err := s.Client.UpdateEntityDailyBudget(entity.ExternalID, newBudget); err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":  entity.ID,
			"delta_pct":  command.BudgetDeltaPct,
			"new_budget": newBudget,
			"error":      err.Error(),
		}).Error("command: falha ao ajustar orçamento da entidade na API")
		return fmt.Errorf("erro ao ajustar orçamento da entidade %s: %w", entity.ID, err)
	}

	logrus.WithFields(logrus.Fields{
		"entity_id":       entity.ID,
		"delta_pct":       command.BudgetDeltaPct,
		"previous_budget": current,
		"new_budget":      newBudget,
	}).Info("command: orçamento diário ajustado com sucesso")

	return nil
}
