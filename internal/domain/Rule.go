package domain

type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank arbitra conflitos entre regras: critical > high > medium > low > none
var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
	SeverityNone:     0,
}

// Rank retorna a ordem de precedência da severidade
func (s Severity) Rank() int {
	return severityRank[s]
}

type ActionType string

const (
	ActionNone            ActionType = "none"
	ActionAlert           ActionType = "alert"
	ActionAdjustBudget    ActionType = "adjust_budget"
	ActionPause           ActionType = "pause"
	ActionRequireApproval ActionType = "require_approval"
)

// Action é a ação associada a uma regra. BudgetDeltaPct só é relevante para
// adjust_budget: positivo escala, negativo reduz.
type Action struct {
	Type           ActionType `json:"type" yaml:"type"`
	BudgetDeltaPct float64    `json:"budget_delta_pct,omitempty" yaml:"budget_delta_pct,omitempty"`
}

// IsAutoExecutable indica se a ação é executada automaticamente contra a
// plataforma de anúncios. Alertas e aprovações nunca são auto-executados.
func (a Action) IsAutoExecutable() bool {
	return a.Type == ActionPause || a.Type == ActionAdjustBudget
}

type Operator string

const (
	OpLessThan           Operator = "lt"
	OpLessThanOrEqual    Operator = "lte"
	OpGreaterThan        Operator = "gt"
	OpGreaterThanOrEqual Operator = "gte"
	OpEqual              Operator = "eq"
)

// Clause é um predicado declarativo sobre uma métrica do registro de desempenho
// ou do score de risco. As cláusulas de uma condição são combinadas com AND.
type Clause struct {
	Metric string   `json:"metric" yaml:"metric"`
	Op     Operator `json:"op" yaml:"op"`
	Value  float64  `json:"value" yaml:"value"`
}

// Rule é uma regra de limiar do motor de decisão. As regras são configuração
// estática: carregadas uma vez, imutáveis durante a execução, avaliadas na
// ordem de declaração.
type Rule struct {
	ID        string   `json:"id" yaml:"id"`
	Severity  Severity `json:"severity" yaml:"severity"`
	Action    Action   `json:"action" yaml:"action"`
	Condition []Clause `json:"condition" yaml:"condition"`

	// Description aparece na justificativa da decisão
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
