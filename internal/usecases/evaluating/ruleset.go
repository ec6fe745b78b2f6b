package evaluating

import (
	"fmt"
	"os"

	"github.com/vfg2006/campaign-guardian/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultRules é a tabela de regras padrão do motor, na ordem de declaração.
// A ordem importa: empates de severidade são resolvidos pela primeira regra
// declarada. Limiares herdados da operação manual.
func DefaultRules() []domain.Rule {
	return []domain.Rule{
		{
			ID:          "emergency_stop_roas",
			Severity:    domain.SeverityCritical,
			Action:      domain.Action{Type: domain.ActionPause},
			Description: "ROAS abaixo do limite de emergência, pausar imediatamente",
			Condition: []domain.Clause{
				{Metric: "delivering", Op: domain.OpEqual, Value: 1},
				{Metric: "roas", Op: domain.OpLessThan, Value: 0.8},
			},
		},
		{
			ID:          "losing_money",
			Severity:    domain.SeverityCritical,
			Action:      domain.Action{Type: domain.ActionPause},
			Description: "ROAS abaixo de 1.0, campanha gastando mais do que retorna",
			Condition: []domain.Clause{
				{Metric: "delivering", Op: domain.OpEqual, Value: 1},
				{Metric: "roas", Op: domain.OpLessThan, Value: 1.0},
			},
		},
		{
			ID:          "critical_risk_score",
			Severity:    domain.SeverityCritical,
			Action:      domain.Action{Type: domain.ActionRequireApproval},
			Description: "Score de risco crítico, exige revisão manual",
			Condition: []domain.Clause{
				{Metric: "risk_overall", Op: domain.OpGreaterThanOrEqual, Value: 85},
			},
		},
		{
			ID:          "scale_down_low_roas",
			Severity:    domain.SeverityHigh,
			Action:      domain.Action{Type: domain.ActionAdjustBudget, BudgetDeltaPct: -15},
			Description: "ROAS abaixo da faixa saudável, reduzir orçamento em 15%",
			Condition: []domain.Clause{
				{Metric: "delivering", Op: domain.OpEqual, Value: 1},
				{Metric: "roas", Op: domain.OpLessThan, Value: 3.5},
				{Metric: "conversions", Op: domain.OpGreaterThanOrEqual, Value: 5},
			},
		},
		{
			ID:          "budget_overrun",
			Severity:    domain.SeverityHigh,
			Action:      domain.Action{Type: domain.ActionAlert},
			Description: "Utilização crítica do orçamento diário",
			Condition: []domain.Clause{
				{Metric: "budget_utilization", Op: domain.OpGreaterThan, Value: 95},
			},
		},
		{
			ID:          "high_risk_score",
			Severity:    domain.SeverityHigh,
			Action:      domain.Action{Type: domain.ActionRequireApproval},
			Description: "Score de risco alto, exige revisão manual",
			Condition: []domain.Clause{
				{Metric: "risk_overall", Op: domain.OpGreaterThanOrEqual, Value: 70},
			},
		},
		{
			ID:          "audience_fatigue",
			Severity:    domain.SeverityMedium,
			Action:      domain.Action{Type: domain.ActionAlert},
			Description: "Frequência indica fadiga de audiência",
			Condition: []domain.Clause{
				{Metric: "frequency", Op: domain.OpGreaterThan, Value: 3.0},
			},
		},
		{
			ID:          "low_ctr",
			Severity:    domain.SeverityMedium,
			Action:      domain.Action{Type: domain.ActionAlert},
			Description: "CTR abaixo do benchmark",
			Condition: []domain.Clause{
				{Metric: "delivering", Op: domain.OpEqual, Value: 1},
				{Metric: "impressions", Op: domain.OpGreaterThan, Value: 0},
				{Metric: "ctr", Op: domain.OpLessThan, Value: 0.8},
			},
		},
		{
			ID:          "quality_score_drop",
			Severity:    domain.SeverityMedium,
			Action:      domain.Action{Type: domain.ActionAlert},
			Description: "Quality score abaixo do mínimo aceitável",
			Condition: []domain.Clause{
				{Metric: "quality_score", Op: domain.OpGreaterThan, Value: 0},
				{Metric: "quality_score", Op: domain.OpLessThan, Value: 6.0},
			},
		},
		{
			ID:          "scale_up_high_roas",
			Severity:    domain.SeverityLow,
			Action:      domain.Action{Type: domain.ActionAdjustBudget, BudgetDeltaPct: 20},
			Description: "ROAS excelente, escalar orçamento em 20%",
			Condition: []domain.Clause{
				{Metric: "delivering", Op: domain.OpEqual, Value: 1},
				{Metric: "roas", Op: domain.OpGreaterThanOrEqual, Value: 5.0},
				{Metric: "conversions", Op: domain.OpGreaterThanOrEqual, Value: 5},
			},
		},
		{
			ID:          "not_delivering",
			Severity:    domain.SeverityLow,
			Action:      domain.Action{Type: domain.ActionAlert},
			Description: "Entidade sem entrega na janela, verificar aprovação e segmentação",
			Condition: []domain.Clause{
				{Metric: "delivering", Op: domain.OpEqual, Value: 0},
			},
		},
	}
}

// rulesFile é o formato do arquivo YAML de regras
type rulesFile struct {
	Rules []domain.Rule `yaml:"rules"`
}

// LoadRulesFile carrega a tabela de regras de um arquivo YAML, preservando a
// ordem de declaração
func LoadRulesFile(path string) ([]domain.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de regras: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao interpretar arquivo de regras: %w", err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("arquivo de regras vazio: %s", path)
	}

	for i, rule := range file.Rules {
		if err := validateRule(rule); err != nil {
			return nil, fmt.Errorf("regra %d inválida: %w", i, err)
		}
	}

	return file.Rules, nil
}

func validateRule(rule domain.Rule) error {
	if rule.ID == "" {
		return fmt.Errorf("regra sem id")
	}

	switch rule.Severity {
	case domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical:
	default:
		return fmt.Errorf("severidade desconhecida na regra %s: %q", rule.ID, rule.Severity)
	}

	switch rule.Action.Type {
	case domain.ActionNone, domain.ActionAlert, domain.ActionAdjustBudget, domain.ActionPause, domain.ActionRequireApproval:
	default:
		return fmt.Errorf("ação desconhecida na regra %s: %q", rule.ID, rule.Action.Type)
	}

	if len(rule.Condition) == 0 {
		return fmt.Errorf("regra %s sem condição", rule.ID)
	}

	return nil
}
