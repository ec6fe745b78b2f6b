package evaluating

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

// Evaluator casa o registro de desempenho e o score de risco contra a tabela
// ordenada de regras e produz a decisão do ciclo
type Evaluator interface {
	Evaluate(record *domain.PerformanceRecord, score *domain.RiskScore) *domain.Decision
}

type Service struct {
	rules []domain.Rule
}

// NewService cria o avaliador com uma tabela de regras imutável. A fatia é
// copiada: mudanças externas não afetam avaliações em andamento.
func NewService(rules []domain.Rule) *Service {
	owned := make([]domain.Rule, len(rules))
	copy(owned, rules)

	return &Service{rules: owned}
}

// Evaluate percorre as regras na ordem de declaração, coleta todas que casam e
// escolhe exatamente uma ação: a da regra de maior severidade, com empate
// resolvido pela primeira declarada. Regras com erro de avaliação são puladas
// e registradas como diagnóstico, nunca propagadas como fatais.
func (s *Service) Evaluate(record *domain.PerformanceRecord, score *domain.RiskScore) *domain.Decision {
	decision := &domain.Decision{
		EntityID:         record.EntityID,
		EntityType:       record.EntityType,
		Timestamp:        record.WindowEnd,
		TriggeredRules:   []string{},
		ChosenAction:     domain.Action{Type: domain.ActionNone},
		Risk:             score,
		BudgetAtDecision: record.DailyBudget,
	}

	var winner *domain.Rule

	for i := range s.rules {
		rule := &s.rules[i]

		matched, err := matches(rule, record, score)
		if err != nil {
			diagnostic := fmt.Sprintf("regra %s pulada: %v", rule.ID, err)
			decision.Diagnostics = append(decision.Diagnostics, diagnostic)

			logrus.WithFields(logrus.Fields{
				"entity_id": record.EntityID,
				"rule_id":   rule.ID,
			}).WithError(err).Warn("Regra pulada por erro de avaliação")
			continue
		}

		if !matched {
			continue
		}

		decision.TriggeredRules = append(decision.TriggeredRules, rule.ID)

		// Maior severidade vence; empate fica com a primeira declarada
		if winner == nil || rule.Severity.Rank() > winner.Severity.Rank() {
			winner = rule
		}
	}

	if winner != nil {
		decision.ChosenAction = winner.Action
		decision.ChosenRuleID = winner.ID
	}

	decision.Rationale = buildRationale(decision, winner)

	return decision
}

// Rules devolve uma cópia da tabela de regras em uso
func (s *Service) Rules() []domain.Rule {
	out := make([]domain.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// matches testa todas as cláusulas da condição (combinadas com AND) contra o
// registro e o score
func matches(rule *domain.Rule, record *domain.PerformanceRecord, score *domain.RiskScore) (bool, error) {
	if len(rule.Condition) == 0 {
		return false, fmt.Errorf("condição vazia")
	}

	for _, clause := range rule.Condition {
		value, err := metricValue(clause.Metric, record, score)
		if err != nil {
			return false, err
		}

		ok, err := compare(value, clause.Op, clause.Value)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// metricValue resolve o nome declarativo de uma métrica para o valor corrente.
// Métricas desconhecidas invalidam a regra, não o ciclo.
func metricValue(name string, record *domain.PerformanceRecord, score *domain.RiskScore) (float64, error) {
	switch name {
	case "spend":
		return record.Spend, nil
	case "revenue":
		return record.Revenue, nil
	case "roas":
		return record.ROAS(), nil
	case "ctr":
		return record.CTR(), nil
	case "impressions":
		return float64(record.Impressions), nil
	case "clicks":
		return float64(record.Clicks), nil
	case "conversions":
		return float64(record.Conversions), nil
	case "frequency":
		return record.Frequency, nil
	case "quality_score":
		return record.QualityScore, nil
	case "budget_utilization":
		return record.BudgetUtilization(), nil
	case "entity_age_days":
		return float64(record.EntityAgeDays), nil
	case "days_since_optimization":
		return float64(record.DaysSinceOptimization), nil
	case "delivering":
		if record.IsDelivering() {
			return 1, nil
		}
		return 0, nil
	case "risk_overall":
		return score.Overall, nil
	case "risk_financial":
		return score.Financial, nil
	case "risk_performance":
		return score.Performance, nil
	case "risk_operational":
		return score.Operational, nil
	case "risk_market":
		return score.Market, nil
	default:
		return 0, fmt.Errorf("métrica desconhecida: %q", name)
	}
}

func compare(value float64, op domain.Operator, threshold float64) (bool, error) {
	switch op {
	case domain.OpLessThan:
		return value < threshold, nil
	case domain.OpLessThanOrEqual:
		return value <= threshold, nil
	case domain.OpGreaterThan:
		return value > threshold, nil
	case domain.OpGreaterThanOrEqual:
		return value >= threshold, nil
	case domain.OpEqual:
		return value == threshold, nil
	default:
		return false, fmt.Errorf("operador desconhecido: %q", op)
	}
}

// buildRationale monta a justificativa textual da decisão para o histórico
func buildRationale(decision *domain.Decision, winner *domain.Rule) string {
	if winner == nil {
		if decision.Risk != nil {
			return fmt.Sprintf("Nenhuma regra casou; risco geral %.2f (%s)", decision.Risk.Overall, decision.Risk.Level)
		}
		return "Nenhuma regra casou"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Regra %s (%s): %s.", winner.ID, winner.Severity, winner.Description)

	if len(decision.TriggeredRules) > 1 {
		fmt.Fprintf(&b, " Regras casadas: %s.", strings.Join(decision.TriggeredRules, ", "))
	}

	if decision.Risk != nil {
		fmt.Fprintf(&b, " Risco geral %.2f (%s).", decision.Risk.Overall, decision.Risk.Level)
	}

	return b.String()
}
