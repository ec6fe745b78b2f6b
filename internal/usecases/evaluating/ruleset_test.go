package evaluating

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	expectedOrder := []string{
		"emergency_stop_roas",
		"losing_money",
		"critical_risk_score",
		"scale_down_low_roas",
		"budget_overrun",
		"high_risk_score",
		"audience_fatigue",
		"low_ctr",
		"quality_score_drop",
		"scale_up_high_roas",
		"not_delivering",
	}

	assert.Len(t, rules, len(expectedOrder))

	for i, rule := range rules {
		assert.Equal(t, expectedOrder[i], rule.ID)
		assert.NoError(t, validateRule(rule))
	}
}

func TestLoadRulesFile(t *testing.T) {
	writeRules := func(t *testing.T, content string) string {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		err := os.WriteFile(path, []byte(content), 0644)
		assert.NoError(t, err)
		return path
	}

	t.Run("Arquivo válido - carrega regras na ordem de declaração", func(t *testing.T) {
		path := writeRules(t, `
rules:
  - id: pausa_roas_baixo
    severity: critical
    action:
      type: pause
    condition:
      - metric: roas
        op: lt
        value: 0.9
  - id: reduzir_orcamento
    severity: high
    action:
      type: adjust_budget
      budget_delta_pct: -20
    condition:
      - metric: roas
        op: lt
        value: 2.0
      - metric: conversions
        op: gte
        value: 10
`)

		rules, err := LoadRulesFile(path)

		assert.NoError(t, err)
		assert.Len(t, rules, 2)

		assert.Equal(t, "pausa_roas_baixo", rules[0].ID)
		assert.Equal(t, domain.SeverityCritical, rules[0].Severity)
		assert.Equal(t, domain.ActionPause, rules[0].Action.Type)

		assert.Equal(t, "reduzir_orcamento", rules[1].ID)
		assert.Equal(t, -20.0, rules[1].Action.BudgetDeltaPct)
		assert.Len(t, rules[1].Condition, 2)
		assert.Equal(t, domain.OpGreaterThanOrEqual, rules[1].Condition[1].Op)
	})

	t.Run("Arquivo inexistente - erro de leitura", func(t *testing.T) {
		rules, err := LoadRulesFile("/caminho/que/nao/existe.yaml")

		assert.Nil(t, rules)
		assert.ErrorContains(t, err, "erro ao ler arquivo de regras")
	})

	t.Run("YAML malformado - erro de interpretação", func(t *testing.T) {
		path := writeRules(t, "rules: [o que é isso")

		rules, err := LoadRulesFile(path)

		assert.Nil(t, rules)
		assert.ErrorContains(t, err, "erro ao interpretar arquivo de regras")
	})

	t.Run("Arquivo sem regras - erro", func(t *testing.T) {
		path := writeRules(t, "rules: []")

		rules, err := LoadRulesFile(path)

		assert.Nil(t, rules)
		assert.ErrorContains(t, err, "arquivo de regras vazio")
	})

	t.Run("Regra sem id - erro de validação", func(t *testing.T) {
		path := writeRules(t, `
rules:
  - severity: high
    action:
      type: alert
    condition:
      - metric: roas
        op: lt
        value: 1.0
`)

		_, err := LoadRulesFile(path)

		assert.ErrorContains(t, err, "regra 0 inválida")
	})

	t.Run("Severidade desconhecida - erro de validação", func(t *testing.T) {
		path := writeRules(t, `
rules:
  - id: regra_invalida
    severity: gravissima
    action:
      type: alert
    condition:
      - metric: roas
        op: lt
        value: 1.0
`)

		_, err := LoadRulesFile(path)

		assert.ErrorContains(t, err, "severidade desconhecida")
	})

	t.Run("Ação desconhecida - erro de validação", func(t *testing.T) {
		path := writeRules(t, `
rules:
  - id: regra_invalida
    severity: high
    action:
      type: explodir
    condition:
      - metric: roas
        op: lt
        value: 1.0
`)

		_, err := LoadRulesFile(path)

		assert.ErrorContains(t, err, "ação desconhecida")
	})

	t.Run("Regra sem condição - erro de validação", func(t *testing.T) {
		path := writeRules(t, `
rules:
  - id: regra_sem_condicao
    severity: high
    action:
      type: alert
`)

		_, err := LoadRulesFile(path)

		assert.ErrorContains(t, err, "sem condição")
	})
}
