package domain

import "time"

// Decision é o resultado de um ciclo de avaliação para uma entidade.
// Histórico append-only: uma decisão por entidade por ciclo, nunca mutada.
type Decision struct {
	ID         string     `json:"id"`
	EntityID   string     `json:"entity_id"`
	EntityType EntityType `json:"entity_type"`
	Timestamp  time.Time  `json:"timestamp"`

	// TriggeredRules lista, na ordem de declaração, os IDs de todas as regras
	// que casaram no ciclo, não só a vencedora
	TriggeredRules []string `json:"triggered_rules"`

	// ChosenAction é a única ação escolhida no ciclo: a da regra de maior
	// severidade, desempate pela ordem de declaração
	ChosenAction Action `json:"chosen_action"`

	// ChosenRuleID identifica a regra vencedora (vazio quando nenhuma casou)
	ChosenRuleID string `json:"chosen_rule_id,omitempty"`

	Rationale string `json:"rationale"`

	Risk *RiskScore `json:"risk,omitempty"`

	// BudgetAtDecision é o orçamento diário vigente no momento da decisão,
	// usado como valor de referência em pedidos de aprovação
	BudgetAtDecision float64 `json:"budget_at_decision,omitempty"`

	// Diagnostics registra regras puladas por erro de avaliação
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// ExecutionStatus é o desfecho da execução de um comando na plataforma
type ExecutionStatus string

const (
	ExecutionStatusAcked   ExecutionStatus = "acked"
	ExecutionStatusFailed  ExecutionStatus = "failed"
	ExecutionStatusSkipped ExecutionStatus = "skipped"
)

// CommandExecution registra o desfecho da execução de um comando, separado da
// decisão que o originou: uma execução falha nunca marca a decisão como aplicada.
type CommandExecution struct {
	DecisionID string          `json:"decision_id"`
	EntityID   string          `json:"entity_id"`
	Command    Command         `json:"command"`
	Status     ExecutionStatus `json:"status"`
	Error      string          `json:"error,omitempty"`
	ExecutedAt time.Time       `json:"executed_at"`
}

// CycleResult agrega o desfecho completo de um ciclo de avaliação
type CycleResult struct {
	Decision  *Decision         `json:"decision"`
	Command   Command           `json:"command"`
	Execution *CommandExecution `json:"execution,omitempty"`

	// Recorded indica se a persistência da decisão teve sucesso. A falha do
	// gravador não bloqueia a tomada de decisão: o ciclo segue com
	// recorded=false para reconciliação posterior.
	Recorded bool `json:"recorded"`
}
