package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian/infrastructure/repository"
	"github.com/vfg2006/campaign-guardian/internal/config"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"github.com/vfg2006/campaign-guardian/internal/usecases/monitoring"
)

// DecisionCycleConfig representa a configuração do agendador de ciclos de decisão
type DecisionCycleConfig struct {
	CronSchedule        string
	LookbackHours       int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	CycleEnabled        bool
}

// DecisionCycleService gerencia o agendamento e execução dos ciclos de decisão
// das entidades monitoradas. Cada entidade é processada por um único worker por
// rodada, então nunca há duas decisões concorrentes para a mesma entidade.
type DecisionCycleService struct {
	scheduler            *gocron.Scheduler
	config               DecisionCycleConfig
	appConfig            *config.Config
	entityRepo           repository.MonitoredEntityRepository
	monitor              monitoring.Monitor
	cycleRunning         bool
	cycleMutex           sync.Mutex
	lastCycleStartedAt   time.Time
	lastCycleCompletedAt time.Time
}

// NewDecisionCycleService cria uma nova instância do serviço de ciclos de decisão
func NewDecisionCycleService(
	entityRepo repository.MonitoredEntityRepository,
	monitor monitoring.Monitor,
	appConfig *config.Config,
) *DecisionCycleService {
	cycleConfig := DecisionCycleConfig{
		CronSchedule:        appConfig.DecisionCycle.CronSchedule,
		LookbackHours:       appConfig.DecisionCycle.LookbackHours,
		RequestDelaySeconds: appConfig.DecisionCycle.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.DecisionCycle.MaxConcurrentJobs,
		CycleEnabled:        appConfig.DecisionCycle.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         cycleConfig.CronSchedule,
		"lookback_hours":        cycleConfig.LookbackHours,
		"request_delay_seconds": cycleConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   cycleConfig.MaxConcurrentJobs,
		"cycle_enabled":         cycleConfig.CycleEnabled,
	}).Info("Configuração do agendador de ciclos de decisão carregada")

	return &DecisionCycleService{
		scheduler:    scheduler,
		config:       cycleConfig,
		appConfig:    appConfig,
		entityRepo:   entityRepo,
		monitor:      monitor,
		cycleRunning: false,
	}
}

// Start inicia o agendador
func (s *DecisionCycleService) Start(ctx context.Context) error {
	if !s.config.CycleEnabled {
		logrus.Info("Ciclos de decisão desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ciclos de decisão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAllDecisionCycles(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclos de decisão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ciclos de decisão")
		s.scheduler.Stop()
	}()

	return nil
}

// runAllDecisionCycles executa um ciclo de decisão para cada entidade ativa
func (s *DecisionCycleService) runAllDecisionCycles(ctx context.Context) {
	startTime := time.Now()

	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Info("Rodada de ciclos de decisão já em andamento, ignorando")
		return
	}
	s.cycleRunning = true
	s.lastCycleStartedAt = startTime
	s.cycleMutex.Unlock()

	defer func() {
		s.cycleMutex.Lock()
		s.cycleRunning = false
		s.cycleMutex.Unlock()
	}()

	logrus.Info("Iniciando rodada de ciclos de decisão para todas as entidades ativas")

	activeEntities, err := s.getActiveEntities()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de entidades para a rodada de ciclos de decisão")
		return
	}

	if len(activeEntities) == 0 {
		logrus.Info("Nenhuma entidade ativa encontrada para a rodada de ciclos de decisão")
		return
	}

	window := domain.LastHours(startTime, s.config.LookbackHours)
	logrus.WithFields(logrus.Fields{
		"window_start": window.Start.Format(time.RFC3339),
		"window_end":   window.End.Format(time.RFC3339),
	}).Info("Janela de avaliação da rodada de ciclos de decisão")

	s.processEntities(ctx, activeEntities, window)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"entities": len(activeEntities),
	}).Info("Rodada de ciclos de decisão concluída")

	s.cycleMutex.Lock()
	s.lastCycleCompletedAt = time.Now()
	s.cycleMutex.Unlock()
}

// getActiveEntities busca e filtra entidades ativas
func (s *DecisionCycleService) getActiveEntities() ([]*domain.MonitoredEntity, error) {
	activeEntities, err := s.entityRepo.ListEntities([]domain.EntityStatus{domain.EntityStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeEntities) == 0 {
		logrus.Info("Nenhuma entidade encontrada para a rodada de ciclos de decisão")
		return []*domain.MonitoredEntity{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_entities": len(activeEntities),
	}).Info("Entidades encontradas para a rodada de ciclos de decisão")

	return activeEntities, nil
}

// processEntities processa os ciclos de decisão com workers limitados por semáforo
func (s *DecisionCycleService) processEntities(ctx context.Context, entities []*domain.MonitoredEntity, window domain.Window) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, entity := range entities {
		if entity.ExternalID == "" {
			logrus.WithField("entity_id", entity.ID).Warn("Entidade sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(ent *domain.MonitoredEntity) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.processEntityCycle(ctx, ent, window)

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(entity)
	}

	wg.Wait()
}

// processEntityCycle executa o ciclo de decisão de uma entidade e reflete o
// desfecho no cadastro quando um pause é confirmado pela plataforma
func (s *DecisionCycleService) processEntityCycle(ctx context.Context, entity *domain.MonitoredEntity, window domain.Window) {
	logrus.WithFields(logrus.Fields{
		"entity_id":   entity.ID,
		"external_id": entity.ExternalID,
		"entity_name": entity.Name,
	}).Info("Processando ciclo de decisão para entidade")

	result, err := s.monitor.RunCycle(ctx, entity, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":   entity.ID,
			"external_id": entity.ExternalID,
			"error":       err.Error(),
		}).Error("Erro ao executar ciclo de decisão para entidade")
		return
	}

	logrus.WithFields(logrus.Fields{
		"entity_id":     entity.ID,
		"decision_id":   result.Decision.ID,
		"chosen_action": string(result.Decision.ChosenAction.Type),
		"recorded":      result.Recorded,
	}).Info("Ciclo de decisão concluído para entidade")

	if result.Execution == nil || result.Execution.Status != domain.ExecutionStatusAcked {
		return
	}

	if result.Command.Type == domain.CommandPause {
		if err := s.entityRepo.UpdateStatus(entity.ID, domain.EntityStatusPaused); err != nil {
			logrus.WithFields(logrus.Fields{
				"entity_id": entity.ID,
				"error":     err.Error(),
			}).Error("Erro ao refletir pausa da entidade no cadastro")
		}
	}
}

// TriggerManualCycle inicia manualmente uma rodada de ciclos de decisão
func (s *DecisionCycleService) TriggerManualCycle(ctx context.Context) {
	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Info("Rodada de ciclos de decisão já em andamento, ignorando solicitação manual")
		return
	}
	s.cycleMutex.Unlock()

	logrus.Info("Iniciando rodada manual de ciclos de decisão")
	go s.runAllDecisionCycles(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *DecisionCycleService) GetStatus() map[string]any {
	s.cycleMutex.Lock()
	lastStartedAt := s.lastCycleStartedAt
	lastCompletedAt := s.lastCycleCompletedAt
	s.cycleMutex.Unlock()

	return map[string]any{
		"cycle_enabled":           s.config.CycleEnabled,
		"cycle_cron":              s.config.CronSchedule,
		"cycle_lookback_hours":    s.config.LookbackHours,
		"cycle_max_concurrent":    s.config.MaxConcurrentJobs,
		"cycle_request_delay_s":   s.config.RequestDelaySeconds,
		"auto_actions_enabled":    s.appConfig.Engine.AutoActionsEnabled,
		"retention_policy":        "decisões mantidas permanentemente",
		"last_cycle_started_at":   lastStartedAt,
		"last_cycle_completed_at": lastCompletedAt,
	}
}
