package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian/infrastructure/repository"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"github.com/vfg2006/campaign-guardian/internal/usecases/evaluating"
	"github.com/vfg2006/campaign-guardian/internal/usecases/scoring"
	"github.com/vfg2006/campaign-guardian/pkg/log"
	"github.com/vfg2006/campaign-guardian/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/monitor.go -package=mocks

// Monitor executa o ciclo completo de avaliação de uma entidade:
// ingestão -> pontuação -> avaliação de regras -> despacho -> gravação
type Monitor interface {
	RunCycle(ctx context.Context, entity *domain.MonitoredEntity, window domain.Window) (*domain.CycleResult, error)
	History(entityID string) ([]*domain.Decision, error)
	LatestDecision(entityID string) (*domain.Decision, error)
}

type Service struct {
	adsClient    AdsClient
	scorer       scoring.Scorer
	evaluator    evaluating.Evaluator
	decisionRepo repository.DecisionRepository

	// autoActions libera a execução automática de pause/adjust_budget.
	// Alertas e pedidos de aprovação nunca são executados contra a plataforma.
	autoActions bool
}

func NewService(
	adsClient AdsClient,
	scorer scoring.Scorer,
	evaluator evaluating.Evaluator,
	decisionRepo repository.DecisionRepository,
	autoActions bool,
) *Service {
	return &Service{
		adsClient:    adsClient,
		scorer:       scorer,
		evaluator:    evaluator,
		decisionRepo: decisionRepo,
		autoActions:  autoActions,
	}
}

// RunCycle processa um ciclo de avaliação para a entidade. O ciclo completa e
// grava uma decisão, ou falha e é repetido na próxima invocação agendada: não
// há cancelamento parcial.
func (s *Service) RunCycle(ctx context.Context, entity *domain.MonitoredEntity, window domain.Window) (*domain.CycleResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity_id":   entity.ID,
		"entity_type": entity.Type,
	})

	record, err := s.adsClient.FetchPerformance(entity, window)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar desempenho da entidade %s: %w", entity.ID, err)
	}

	// Ingestão: registro malformado é rejeitado com aviso, o ciclo é pulado e
	// o processo segue vivo
	if err := record.Validate(); err != nil {
		logger.WithError(err).Warn("Registro de desempenho rejeitado na ingestão")
		return nil, fmt.Errorf("registro de desempenho inválido: %w", err)
	}

	score := s.scorer.Score(record)
	decision := s.evaluator.Evaluate(record, score)

	decisionID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da decisão: %w", err)
	}
	decision.ID = decisionID

	command := Dispatch(decision)

	logger.WithFields(log.Fields{
		"decision_id":     decision.ID,
		"chosen_action":   string(decision.ChosenAction.Type),
		"chosen_rule":     decision.ChosenRuleID,
		"triggered_rules": len(decision.TriggeredRules),
		"risk_overall":    score.Overall,
		"risk_level":      string(score.Level),
	}).Info("Ciclo de avaliação concluído")

	result := &domain.CycleResult{
		Decision: decision,
		Command:  command,
	}

	result.Execution = s.execute(entity, decision, command)

	// A falha do gravador não bloqueia a decisão: o ciclo segue com
	// recorded=false para reconciliação posterior
	result.Recorded = true
	if err := s.decisionRepo.Save(decision); err != nil {
		result.Recorded = false
		logger.WithError(err).Error("Erro ao gravar decisão no histórico, ciclo segue sem gravação")
	}

	if result.Execution != nil {
		if err := s.decisionRepo.SaveExecution(result.Execution); err != nil {
			logger.WithError(err).Error("Erro ao gravar desfecho de execução do comando")
		}
	}

	return result, nil
}

// execute aplica o comando na plataforma via Ads Client quando a ação é
// auto-executável e as ações automáticas estão liberadas. O desfecho é sempre
// registrado separado da decisão.
func (s *Service) execute(entity *domain.MonitoredEntity, decision *domain.Decision, command domain.Command) *domain.CommandExecution {
	if command.IsNoOp() {
		return nil
	}

	if command.Type == domain.CommandAlert {
		// Alertas são notificados, nunca executados contra a plataforma
		logrus.WithFields(logrus.Fields{
			"entity_id": command.EntityID,
			"severity":  string(command.Severity),
		}).Warn(command.Message)
		return nil
	}

	if command.Type == domain.CommandRequireApproval {
		logrus.WithFields(logrus.Fields{
			"entity_id":        command.EntityID,
			"requested_amount": command.RequestedAmount,
		}).Warn("Entidade sinalizada para aprovação manual")
		return nil
	}

	execution := &domain.CommandExecution{
		DecisionID: decision.ID,
		EntityID:   command.EntityID,
		Command:    command,
		ExecutedAt: time.Now(),
	}

	if !s.autoActions {
		execution.Status = domain.ExecutionStatusSkipped
		execution.Error = "ações automáticas desabilitadas por configuração"

		logrus.WithFields(logrus.Fields{
			"entity_id": command.EntityID,
			"command":   command.String(),
		}).Info("Comando não executado: ações automáticas desabilitadas")

		return execution
	}

	if err := s.adsClient.Execute(entity, command); err != nil {
		// A decisão nunca é marcada como aplicada quando a execução falha
		execution.Status = domain.ExecutionStatusFailed
		execution.Error = err.Error()

		logrus.WithFields(logrus.Fields{
			"entity_id": command.EntityID,
			"command":   command.String(),
		}).WithError(err).Error("Erro ao executar comando na plataforma")

		return execution
	}

	execution.Status = domain.ExecutionStatusAcked

	logrus.WithFields(logrus.Fields{
		"entity_id": command.EntityID,
		"command":   command.String(),
	}).Info("Comando executado com sucesso na plataforma")

	return execution
}

// History devolve o histórico cronológico de decisões da entidade
func (s *Service) History(entityID string) ([]*domain.Decision, error) {
	return s.decisionRepo.History(entityID)
}

// LatestDecision devolve a decisão mais recente da entidade, nil sem histórico
func (s *Service) LatestDecision(entityID string) (*domain.Decision, error) {
	return s.decisionRepo.LatestByEntityID(entityID)
}
