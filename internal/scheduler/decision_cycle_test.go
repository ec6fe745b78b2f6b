package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-guardian/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-guardian/internal/config"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	monitoringmocks "github.com/vfg2006/campaign-guardian/internal/usecases/monitoring/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(entityRepo *mocks.MockMonitoredEntityRepository, monitor *monitoringmocks.MockMonitor) *DecisionCycleService {
	return &DecisionCycleService{
		config: DecisionCycleConfig{
			LookbackHours:       24,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			CycleEnabled:        true,
		},
		appConfig:  &config.Config{},
		entityRepo: entityRepo,
		monitor:    monitor,
	}
}

func activeEntity(id, externalID string) *domain.MonitoredEntity {
	return &domain.MonitoredEntity{
		ID:         id,
		ExternalID: externalID,
		Name:       "Campanha " + id,
		Type:       domain.EntityTypeCampaign,
		Status:     domain.EntityStatusActive,
	}
}

func TestDecisionCycleService_runAllDecisionCycles(t *testing.T) {
	tests := []struct {
		name  string
		setup func(entityRepo *mocks.MockMonitoredEntityRepository, monitor *monitoringmocks.MockMonitor)
	}{
		{
			name: "Duas entidades ativas - um ciclo por entidade",
			setup: func(entityRepo *mocks.MockMonitoredEntityRepository, monitor *monitoringmocks.MockMonitor) {
				entityRepo.EXPECT().
					ListEntities([]domain.EntityStatus{domain.EntityStatusActive}).
					Return([]*domain.MonitoredEntity{
						activeEntity("ENT001", "act_111"),
						activeEntity("ENT002", "act_222"),
					}, nil)

				monitor.EXPECT().
					RunCycle(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.CycleResult{
						Decision: &domain.Decision{ID: "DEC001", ChosenAction: domain.Action{Type: domain.ActionNone}},
						Recorded: true,
					}, nil).
					Times(2)
			},
		},
		{
			name: "Entidade sem external_id - pulada sem rodar ciclo",
			setup: func(entityRepo *mocks.MockMonitoredEntityRepository, monitor *monitoringmocks.MockMonitor) {
				entityRepo.EXPECT().
					ListEntities([]domain.EntityStatus{domain.EntityStatusActive}).
					Return([]*domain.MonitoredEntity{
						activeEntity("ENT001", ""),
						activeEntity("ENT002", "act_222"),
					}, nil)

				monitor.EXPECT().
					RunCycle(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.CycleResult{
						Decision: &domain.Decision{ID: "DEC001", ChosenAction: domain.Action{Type: domain.ActionNone}},
						Recorded: true,
					}, nil).
					Times(1)
			},
		},
		{
			name: "Erro em uma entidade - as demais seguem processadas",
			setup: func(entityRepo *mocks.MockMonitoredEntityRepository, monitor *monitoringmocks.MockMonitor) {
				entityRepo.EXPECT().
					ListEntities([]domain.EntityStatus{domain.EntityStatusActive}).
					Return([]*domain.MonitoredEntity{
						activeEntity("ENT001", "act_111"),
						activeEntity("ENT002", "act_222"),
					}, nil)

				monitor.EXPECT().
					RunCycle(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, entity *domain.MonitoredEntity, window domain.Window) (*domain.CycleResult, error) {
						if entity.ID == "ENT001" {
							return nil, errors.New("token de acesso expirado")
						}
						return &domain.CycleResult{
							Decision: &domain.Decision{ID: "DEC002", ChosenAction: domain.Action{Type: domain.ActionNone}},
							Recorded: true,
						}, nil
					}).
					Times(2)
			},
		},
		{
			name: "Nenhuma entidade ativa - rodada termina sem ciclos",
			setup: func(entityRepo *mocks.MockMonitoredEntityRepository, monitor *monitoringmocks.MockMonitor) {
				entityRepo.EXPECT().
					ListEntities([]domain.EntityStatus{domain.EntityStatusActive}).
					Return([]*domain.MonitoredEntity{}, nil)
			},
		},
		{
			name: "Falha ao listar entidades - rodada abortada",
			setup: func(entityRepo *mocks.MockMonitoredEntityRepository, monitor *monitoringmocks.MockMonitor) {
				entityRepo.EXPECT().
					ListEntities([]domain.EntityStatus{domain.EntityStatusActive}).
					Return(nil, errors.New("conexão recusada"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			entityRepo := mocks.NewMockMonitoredEntityRepository(ctrl)
			monitor := monitoringmocks.NewMockMonitor(ctrl)

			tt.setup(entityRepo, monitor)

			service := newTestService(entityRepo, monitor)
			service.runAllDecisionCycles(context.Background())

			assert.False(t, service.cycleRunning)
		})
	}
}

func TestDecisionCycleService_GetStatusDuranteRodada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entityRepo := mocks.NewMockMonitoredEntityRepository(ctrl)
	monitor := monitoringmocks.NewMockMonitor(ctrl)

	entityRepo.EXPECT().
		ListEntities([]domain.EntityStatus{domain.EntityStatusActive}).
		Return([]*domain.MonitoredEntity{
			activeEntity("ENT001", "act_111"),
			activeEntity("ENT002", "act_222"),
			activeEntity("ENT003", "act_333"),
		}, nil)

	monitor.EXPECT().
		RunCycle(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.CycleResult{
			Decision: &domain.Decision{ID: "DEC001", ChosenAction: domain.Action{Type: domain.ActionNone}},
			Recorded: true,
		}, nil).
		Times(3)

	service := newTestService(entityRepo, monitor)

	// Consultas de status concorrentes com a rodada não podem corromper os
	// carimbos de início e fim
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.runAllDecisionCycles(context.Background())
	}()

	for i := 0; i < 100; i++ {
		_ = service.GetStatus()
	}
	wg.Wait()

	status := service.GetStatus()
	startedAt := status["last_cycle_started_at"].(time.Time)
	completedAt := status["last_cycle_completed_at"].(time.Time)

	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
	assert.False(t, completedAt.Before(startedAt))
}

func TestDecisionCycleService_processEntityCycle_PauseRefletidoNoCadastro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entityRepo := mocks.NewMockMonitoredEntityRepository(ctrl)
	monitor := monitoringmocks.NewMockMonitor(ctrl)

	entity := activeEntity("ENT001", "act_111")
	window := domain.LastHours(entity.CreatedAt, 24)

	monitor.EXPECT().
		RunCycle(gomock.Any(), entity, window).
		Return(&domain.CycleResult{
			Decision: &domain.Decision{ID: "DEC001", ChosenAction: domain.Action{Type: domain.ActionPause}},
			Command:  domain.Command{Type: domain.CommandPause, EntityID: "ENT001"},
			Execution: &domain.CommandExecution{
				DecisionID: "DEC001",
				EntityID:   "ENT001",
				Command:    domain.Command{Type: domain.CommandPause, EntityID: "ENT001"},
				Status:     domain.ExecutionStatusAcked,
			},
			Recorded: true,
		}, nil)

	// Pause confirmado pela plataforma vira PAUSED no cadastro
	entityRepo.EXPECT().
		UpdateStatus("ENT001", domain.EntityStatusPaused).
		Return(nil)

	service := newTestService(entityRepo, monitor)
	service.processEntityCycle(context.Background(), entity, window)
}

func TestDecisionCycleService_processEntityCycle_ExecucaoFalhaNaoAlteraCadastro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entityRepo := mocks.NewMockMonitoredEntityRepository(ctrl)
	monitor := monitoringmocks.NewMockMonitor(ctrl)

	entity := activeEntity("ENT001", "act_111")
	window := domain.LastHours(entity.CreatedAt, 24)

	monitor.EXPECT().
		RunCycle(gomock.Any(), entity, window).
		Return(&domain.CycleResult{
			Decision: &domain.Decision{ID: "DEC001", ChosenAction: domain.Action{Type: domain.ActionPause}},
			Command:  domain.Command{Type: domain.CommandPause, EntityID: "ENT001"},
			Execution: &domain.CommandExecution{
				DecisionID: "DEC001",
				Status:     domain.ExecutionStatusFailed,
				Error:      "limite de requisições da API atingido",
			},
			Recorded: true,
		}, nil)

	service := newTestService(entityRepo, monitor)
	service.processEntityCycle(context.Background(), entity, window)
}
