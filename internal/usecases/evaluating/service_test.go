package evaluating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

var windowEnd = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

func baseRecord() *domain.PerformanceRecord {
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

func baseScore() *domain.RiskScore {
	return &domain.RiskScore{
		EntityID:  "ENT001",
		Timestamp: windowEnd,
		Overall:   12.5,
		Level:     domain.RiskLevelLow,
	}
}

func TestService_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		record   func() *domain.PerformanceRecord
		score    func() *domain.RiskScore
		validate func(t *testing.T, decision *domain.Decision)
	}{
		{
			name:   "Campanha saudável - nenhuma regra casa, ação none",
			record: baseRecord,
			score:  baseScore,
			validate: func(t *testing.T, decision *domain.Decision) {
				assert.Empty(t, decision.TriggeredRules)
				assert.Equal(t, domain.ActionNone, decision.ChosenAction.Type)
				assert.Empty(t, decision.ChosenRuleID)
				assert.Equal(t, "Nenhuma regra casou; risco geral 12.50 (low)", decision.Rationale)
			},
		},
		{
			name: "ROAS 0.70 queimando orçamento - pausa de emergência vence",
			record: func() *domain.PerformanceRecord {
				record := baseRecord()
				record.Spend = 14500.0
				record.Revenue = 10150.0
				record.DailyBudget = 15000.0
				return record
			},
			score: baseScore,
			validate: func(t *testing.T, decision *domain.Decision) {
				// Todas na ordem de declaração, não só a vencedora
				assert.Equal(t, []string{"emergency_stop_roas", "losing_money", "scale_down_low_roas", "budget_overrun"}, decision.TriggeredRules)
				assert.Equal(t, "emergency_stop_roas", decision.ChosenRuleID)
				assert.Equal(t, domain.ActionPause, decision.ChosenAction.Type)
				assert.Equal(t, 15000.0, decision.BudgetAtDecision)
			},
		},
		{
			name: "ROAS 0.9 - perdendo dinheiro sem ser emergência",
			record: func() *domain.PerformanceRecord {
				record := baseRecord()
				record.Revenue = 450.0
				record.Conversions = 2
				return record
			},
			score: baseScore,
			validate: func(t *testing.T, decision *domain.Decision) {
				assert.Equal(t, []string{"losing_money"}, decision.TriggeredRules)
				assert.Equal(t, domain.ActionPause, decision.ChosenAction.Type)
			},
		},
		{
			name: "Entidade sem entrega - alerta informacional, nunca pausa",
			record: func() *domain.PerformanceRecord {
				record := baseRecord()
				record.Spend = 0
				record.Revenue = 0
				record.Impressions = 0
				record.Clicks = 0
				record.Conversions = 0
				record.Frequency = 0
				return record
			},
			score: func() *domain.RiskScore {
				score := baseScore()
				score.Overall = 8.0
				return score
			},
			validate: func(t *testing.T, decision *domain.Decision) {
				assert.Equal(t, []string{"not_delivering"}, decision.TriggeredRules)
				assert.Equal(t, "not_delivering", decision.ChosenRuleID)
				assert.Equal(t, domain.ActionAlert, decision.ChosenAction.Type)
			},
		},
		{
			name:   "Score de risco crítico - exige aprovação manual",
			record: baseRecord,
			score: func() *domain.RiskScore {
				score := baseScore()
				score.Overall = 88.0
				score.Level = domain.RiskLevelCritical
				return score
			},
			validate: func(t *testing.T, decision *domain.Decision) {
				assert.Equal(t, []string{"critical_risk_score", "high_risk_score"}, decision.TriggeredRules)
				assert.Equal(t, "critical_risk_score", decision.ChosenRuleID)
				assert.Equal(t, domain.ActionRequireApproval, decision.ChosenAction.Type)
			},
		},
		{
			name: "ROAS excelente com volume de conversões - escala orçamento",
			record: func() *domain.PerformanceRecord {
				record := baseRecord()
				record.Revenue = 3000.0
				return record
			},
			score: baseScore,
			validate: func(t *testing.T, decision *domain.Decision) {
				assert.Equal(t, "scale_up_high_roas", decision.ChosenRuleID)
				assert.Equal(t, domain.ActionAdjustBudget, decision.ChosenAction.Type)
				assert.Equal(t, 20.0, decision.ChosenAction.BudgetDeltaPct)
			},
		},
		{
			name: "ROAS exatamente no limiar de escala - regra gte casa na borda",
			record: func() *domain.PerformanceRecord {
				record := baseRecord()
				record.Revenue = 2500.0 // ROAS 5.0
				return record
			},
			score: baseScore,
			validate: func(t *testing.T, decision *domain.Decision) {
				assert.Equal(t, []string{"scale_up_high_roas"}, decision.TriggeredRules)
				assert.Equal(t, domain.ActionAdjustBudget, decision.ChosenAction.Type)
			},
		},
		{
			name: "Fadiga de audiência e CTR baixo - empate de severidade fica com a primeira declarada",
			record: func() *domain.PerformanceRecord {
				record := baseRecord()
				record.Clicks = 500 // CTR 0.5%
				record.Frequency = 3.5
				return record
			},
			score: baseScore,
			validate: func(t *testing.T, decision *domain.Decision) {
				assert.Equal(t, []string{"audience_fatigue", "low_ctr"}, decision.TriggeredRules)
				assert.Equal(t, "audience_fatigue", decision.ChosenRuleID)
				assert.Equal(t, domain.ActionAlert, decision.ChosenAction.Type)
			},
		},
	}

	service := NewService(DefaultRules())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := service.Evaluate(tt.record(), tt.score())

			assert.Equal(t, "ENT001", decision.EntityID)
			assert.Equal(t, domain.EntityTypeCampaign, decision.EntityType)
			assert.Equal(t, windowEnd, decision.Timestamp)
			assert.Empty(t, decision.Diagnostics)
			tt.validate(t, decision)
		})
	}
}

func TestService_Evaluate_Determinism(t *testing.T) {
	service := NewService(DefaultRules())

	record := baseRecord()
	record.Revenue = 300.0
	score := baseScore()

	first := service.Evaluate(record, score)
	second := service.Evaluate(record, score)

	assert.Equal(t, first, second)
}

func TestService_Evaluate_SeverityArbitration(t *testing.T) {
	rules := []domain.Rule{
		{
			ID:       "alerta_menor",
			Severity: domain.SeverityLow,
			Action:   domain.Action{Type: domain.ActionAlert},
			Condition: []domain.Clause{
				{Metric: "spend", Op: domain.OpGreaterThan, Value: 0},
			},
		},
		{
			ID:       "pausa_critica",
			Severity: domain.SeverityCritical,
			Action:   domain.Action{Type: domain.ActionPause},
			Condition: []domain.Clause{
				{Metric: "spend", Op: domain.OpGreaterThan, Value: 0},
			},
		},
	}

	service := NewService(rules)
	decision := service.Evaluate(baseRecord(), baseScore())

	// A severidade maior vence mesmo declarada depois
	assert.Equal(t, []string{"alerta_menor", "pausa_critica"}, decision.TriggeredRules)
	assert.Equal(t, "pausa_critica", decision.ChosenRuleID)
	assert.Equal(t, domain.ActionPause, decision.ChosenAction.Type)
}

func TestService_Evaluate_TieBreakByDeclarationOrder(t *testing.T) {
	rules := []domain.Rule{
		{
			ID:       "primeira_declarada",
			Severity: domain.SeverityHigh,
			Action:   domain.Action{Type: domain.ActionAlert},
			Condition: []domain.Clause{
				{Metric: "spend", Op: domain.OpGreaterThan, Value: 0},
			},
		},
		{
			ID:       "segunda_declarada",
			Severity: domain.SeverityHigh,
			Action:   domain.Action{Type: domain.ActionPause},
			Condition: []domain.Clause{
				{Metric: "spend", Op: domain.OpGreaterThan, Value: 0},
			},
		},
	}

	service := NewService(rules)
	decision := service.Evaluate(baseRecord(), baseScore())

	assert.Equal(t, "primeira_declarada", decision.ChosenRuleID)
	assert.Equal(t, domain.ActionAlert, decision.ChosenAction.Type)
}

func TestService_Evaluate_UnknownMetricSkipsRuleOnly(t *testing.T) {
	rules := []domain.Rule{
		{
			ID:       "regra_quebrada",
			Severity: domain.SeverityCritical,
			Action:   domain.Action{Type: domain.ActionPause},
			Condition: []domain.Clause{
				{Metric: "metrica_inexistente", Op: domain.OpGreaterThan, Value: 0},
			},
		},
		{
			ID:       "regra_valida",
			Severity: domain.SeverityMedium,
			Action:   domain.Action{Type: domain.ActionAlert},
			Condition: []domain.Clause{
				{Metric: "spend", Op: domain.OpGreaterThan, Value: 0},
			},
		},
	}

	service := NewService(rules)
	decision := service.Evaluate(baseRecord(), baseScore())

	// A regra quebrada vira diagnóstico, o ciclo segue com as demais
	assert.Len(t, decision.Diagnostics, 1)
	assert.Contains(t, decision.Diagnostics[0], "regra_quebrada")
	assert.Equal(t, []string{"regra_valida"}, decision.TriggeredRules)
	assert.Equal(t, "regra_valida", decision.ChosenRuleID)
}

func TestService_Evaluate_RationaleListsAllTriggeredRules(t *testing.T) {
	service := NewService(DefaultRules())

	record := baseRecord()
	record.Spend = 14500.0
	record.Revenue = 10150.0
	record.DailyBudget = 15000.0

	decision := service.Evaluate(record, baseScore())

	assert.Contains(t, decision.Rationale, "Regra emergency_stop_roas (critical)")
	assert.Contains(t, decision.Rationale, "losing_money")
	assert.Contains(t, decision.Rationale, "Risco geral 12.50 (low)")
}

func TestService_Rules_ReturnsCopy(t *testing.T) {
	service := NewService(DefaultRules())

	rules := service.Rules()
	rules[0].ID = "mutada"

	assert.Equal(t, "emergency_stop_roas", service.Rules()[0].ID)
}
