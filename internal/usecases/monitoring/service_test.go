package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-guardian/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"github.com/vfg2006/campaign-guardian/internal/usecases/evaluating"
	"github.com/vfg2006/campaign-guardian/internal/usecases/scoring"
	monitoringmocks "github.com/vfg2006/campaign-guardian/internal/usecases/monitoring/mocks"
	"go.uber.org/mock/gomock"
)

var windowEnd = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

func testEntity() *domain.MonitoredEntity {
	return &domain.MonitoredEntity{
		ID:          "ENT001",
		ExternalID:  "act_123456",
		AccountID:   "ACC001",
		Name:        "Campanha Remarketing",
		Type:        domain.EntityTypeCampaign,
		Status:      domain.EntityStatusActive,
		DailyBudget: 15000.0,
	}
}

func healthyRecord() *domain.PerformanceRecord {
	return &domain.PerformanceRecord{
		EntityID:              "ENT001",
		EntityType:            domain.EntityTypeCampaign,
		WindowStart:           windowEnd.Add(-24 * time.Hour),
		WindowEnd:             windowEnd,
		Spend:                 500.0,
		Revenue:               2200.0,
		Impressions:           100000,
		Clicks:                1200,
		Conversions:           30,
		Frequency:             1.8,
		QualityScore:          8.0,
		DailyBudget:           1000.0,
		EntityAgeDays:         10,
		DaysSinceOptimization: 5,
	}
}

func losingMoneyRecord() *domain.PerformanceRecord {
	record := healthyRecord()
	record.Spend = 14500.0
	record.Revenue = 10150.0
	record.DailyBudget = 15000.0
	return record
}

func TestService_RunCycle(t *testing.T) {
	window := domain.LastHours(windowEnd, 24)

	tests := []struct {
		name        string
		autoActions bool
		setup       func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository)
		validate    func(t *testing.T, result *domain.CycleResult, err error)
	}{
		{
			name:        "Campanha saudável - nenhuma regra casa, nada é executado",
			autoActions: true,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(healthyRecord(), nil)

				decisionRepo.EXPECT().
					Save(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.Decision.ID)
				assert.Equal(t, domain.ActionNone, result.Decision.ChosenAction.Type)
				assert.True(t, result.Command.IsNoOp())
				assert.Nil(t, result.Execution)
				assert.True(t, result.Recorded)
			},
		},
		{
			name:        "ROAS 0.70 com ações automáticas - pausa executada e confirmada",
			autoActions: true,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(losingMoneyRecord(), nil)

				adsClient.EXPECT().
					Execute(gomock.Any(), gomock.Any()).
					DoAndReturn(func(entity *domain.MonitoredEntity, command domain.Command) error {
						assert.Equal(t, domain.CommandPause, command.Type)
						assert.Equal(t, "ENT001", command.EntityID)
						return nil
					})

				decisionRepo.EXPECT().
					Save(gomock.Any()).
					Return(nil)

				decisionRepo.EXPECT().
					SaveExecution(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "emergency_stop_roas", result.Decision.ChosenRuleID)
				assert.Equal(t, domain.CommandPause, result.Command.Type)
				assert.NotNil(t, result.Execution)
				assert.Equal(t, domain.ExecutionStatusAcked, result.Execution.Status)
				assert.Equal(t, result.Decision.ID, result.Execution.DecisionID)
				assert.True(t, result.Recorded)
			},
		},
		{
			name:        "ROAS 0.70 sem ações automáticas - comando pulado, nunca chega na plataforma",
			autoActions: false,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(losingMoneyRecord(), nil)

				decisionRepo.EXPECT().
					Save(gomock.Any()).
					Return(nil)

				decisionRepo.EXPECT().
					SaveExecution(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result.Execution)
				assert.Equal(t, domain.ExecutionStatusSkipped, result.Execution.Status)
				assert.Equal(t, "ações automáticas desabilitadas por configuração", result.Execution.Error)
			},
		},
		{
			name:        "Falha na plataforma - execução registrada como failed, decisão não aplicada",
			autoActions: true,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(losingMoneyRecord(), nil)

				adsClient.EXPECT().
					Execute(gomock.Any(), gomock.Any()).
					Return(errors.New("limite de requisições da API atingido"))

				decisionRepo.EXPECT().
					Save(gomock.Any()).
					Return(nil)

				decisionRepo.EXPECT().
					SaveExecution(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ExecutionStatusFailed, result.Execution.Status)
				assert.Contains(t, result.Execution.Error, "limite de requisições")
				assert.True(t, result.Recorded)
			},
		},
		{
			name:        "Gravador indisponível - ciclo completa com recorded false",
			autoActions: false,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(healthyRecord(), nil)

				decisionRepo.EXPECT().
					Save(gomock.Any()).
					Return(errors.New("conexão com o banco recusada"))
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result.Decision)
				assert.False(t, result.Recorded)
			},
		},
		{
			name:        "Entidade sem entrega - alerta notificado, sem execução na plataforma",
			autoActions: true,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				record := healthyRecord()
				record.Spend = 0
				record.Revenue = 0
				record.Impressions = 0
				record.Clicks = 0
				record.Conversions = 0
				record.Frequency = 0

				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(record, nil)

				decisionRepo.EXPECT().
					Save(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "not_delivering", result.Decision.ChosenRuleID)
				assert.Equal(t, domain.CommandAlert, result.Command.Type)
				assert.Nil(t, result.Execution)
			},
		},
		{
			name:        "Falha na coleta de desempenho - ciclo aborta com erro",
			autoActions: true,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(nil, errors.New("token de acesso expirado"))
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.Nil(t, result)
				assert.ErrorContains(t, err, "erro ao buscar desempenho da entidade ENT001")
			},
		},
		{
			name:        "Registro malformado rejeitado na ingestão - ciclo pulado sem gravação",
			autoActions: true,
			setup: func(adsClient *monitoringmocks.MockAdsClient, decisionRepo *mocks.MockDecisionRepository) {
				record := healthyRecord()
				record.Spend = -10.0

				adsClient.EXPECT().
					FetchPerformance(gomock.Any(), window).
					Return(record, nil)
			},
			validate: func(t *testing.T, result *domain.CycleResult, err error) {
				assert.Nil(t, result)
				assert.ErrorContains(t, err, "registro de desempenho inválido")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adsClient := monitoringmocks.NewMockAdsClient(ctrl)
			decisionRepo := mocks.NewMockDecisionRepository(ctrl)

			tt.setup(adsClient, decisionRepo)

			service := NewService(
				adsClient,
				scoring.NewServiceWithThresholds(scoring.DefaultThresholds(), domain.DefaultRiskWeights()),
				evaluating.NewService(evaluating.DefaultRules()),
				decisionRepo,
				tt.autoActions,
			)

			result, err := service.RunCycle(context.Background(), testEntity(), window)

			tt.validate(t, result, err)
		})
	}
}

func TestDispatch(t *testing.T) {
	decision := &domain.Decision{
		ID:               "DEC001",
		EntityID:         "ENT001",
		Rationale:        "Regra losing_money (critical): ROAS abaixo de 1.0.",
		BudgetAtDecision: 15000.0,
		Risk:             &domain.RiskScore{Level: domain.RiskLevelHigh},
	}

	tests := []struct {
		name     string
		action   domain.Action
		validate func(t *testing.T, command domain.Command)
	}{
		{
			name:   "Ação none - comando noop",
			action: domain.Action{Type: domain.ActionNone},
			validate: func(t *testing.T, command domain.Command) {
				assert.True(t, command.IsNoOp())
			},
		},
		{
			name:   "Alerta - carrega justificativa e severidade do nível de risco",
			action: domain.Action{Type: domain.ActionAlert},
			validate: func(t *testing.T, command domain.Command) {
				assert.Equal(t, domain.CommandAlert, command.Type)
				assert.Equal(t, domain.SeverityHigh, command.Severity)
				assert.Equal(t, decision.Rationale, command.Message)
			},
		},
		{
			name:   "Ajuste de orçamento - propaga a variação percentual",
			action: domain.Action{Type: domain.ActionAdjustBudget, BudgetDeltaPct: -15},
			validate: func(t *testing.T, command domain.Command) {
				assert.Equal(t, domain.CommandAdjustBudget, command.Type)
				assert.Equal(t, -15.0, command.BudgetDeltaPct)
			},
		},
		{
			name:   "Pausa - endereça a entidade da decisão",
			action: domain.Action{Type: domain.ActionPause},
			validate: func(t *testing.T, command domain.Command) {
				assert.Equal(t, domain.CommandPause, command.Type)
				assert.Equal(t, "ENT001", command.EntityID)
			},
		},
		{
			name:   "Aprovação manual - carrega o orçamento vigente como valor de referência",
			action: domain.Action{Type: domain.ActionRequireApproval},
			validate: func(t *testing.T, command domain.Command) {
				assert.Equal(t, domain.CommandRequireApproval, command.Type)
				assert.Equal(t, 15000.0, command.RequestedAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := *decision
			d.ChosenAction = tt.action

			tt.validate(t, Dispatch(&d))
		})
	}
}

func TestDispatch_NilDecision(t *testing.T) {
	command := Dispatch(nil)

	assert.Equal(t, domain.CommandNoOp, command.Type)
}

func TestDispatch_Idempotent(t *testing.T) {
	decision := &domain.Decision{
		ID:           "DEC001",
		EntityID:     "ENT001",
		ChosenAction: domain.Action{Type: domain.ActionAdjustBudget, BudgetDeltaPct: 20},
	}

	assert.Equal(t, Dispatch(decision), Dispatch(decision))
}
