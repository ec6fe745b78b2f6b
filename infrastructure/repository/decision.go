package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-guardian/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

const (
	decisionsTable  = "decisions d"
	executionsTable = "command_executions"
)

//go:generate mockgen -source=decision.go -destination=mocks/decision.go -package=mocks

// RecordingError indica que o meio de persistência do histórico está
// indisponível. O chamador decide se tenta de novo ou segue sem gravar: a
// tomada de decisão nunca bloqueia na falha do gravador.
type RecordingError struct {
	Op  string
	Err error
}

func (e *RecordingError) Error() string {
	return fmt.Sprintf("falha de gravação do histórico (%s): %v", e.Op, e.Err)
}

func (e *RecordingError) Unwrap() error {
	return e.Err
}

// DecisionRepository é o gravador de memória do motor: histórico append-only
// de decisões por entidade, com replay cronológico. Entradas passadas nunca
// são mutadas ou removidas.
type DecisionRepository interface {
	Save(decision *domain.Decision) error
	SaveExecution(execution *domain.CommandExecution) error
	History(entityID string) ([]*domain.Decision, error)
	LatestByEntityID(entityID string) (*domain.Decision, error)
}

type decisionRepository struct {
	conn *postgres.Connection
}

func NewDecisionRepository(conn *postgres.Connection) DecisionRepository {
	return &decisionRepository{
		conn: conn,
	}
}

// Save grava uma decisão no histórico. Só insere: o histórico é append-only,
// sem ON CONFLICT.
func (r *decisionRepository) Save(decision *domain.Decision) error {
	riskJSON, err := json.Marshal(decision.Risk)
	if err != nil {
		return fmt.Errorf("erro ao serializar RiskScore para JSON: %w", err)
	}

	actionJSON, err := json.Marshal(decision.ChosenAction)
	if err != nil {
		return fmt.Errorf("erro ao serializar ação para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("decisions").
		Columns(
			"id", "entity_id", "entity_type", "decided_at", "triggered_rules",
			"chosen_rule_id", "chosen_action", "rationale", "risk", "budget_at_decision",
		).
		Values(
			decision.ID,
			decision.EntityID,
			string(decision.EntityType),
			decision.Timestamp,
			pq.Array(decision.TriggeredRules),
			decision.ChosenRuleID,
			actionJSON,
			decision.Rationale,
			riskJSON,
			decision.BudgetAtDecision,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return &RecordingError{Op: "save", Err: fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)}
		}
		return &RecordingError{Op: "save", Err: err}
	}

	return nil
}

// SaveExecution grava o desfecho da execução de um comando, separado da
// decisão: uma execução falha nunca marca a decisão como aplicada
func (r *decisionRepository) SaveExecution(execution *domain.CommandExecution) error {
	commandJSON, err := json.Marshal(execution.Command)
	if err != nil {
		return fmt.Errorf("erro ao serializar comando para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(executionsTable).
		Columns("decision_id", "entity_id", "command", "status", "error", "executed_at").
		Values(
			execution.DecisionID,
			execution.EntityID,
			commandJSON,
			string(execution.Status),
			execution.Error,
			execution.ExecutedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return &RecordingError{Op: "save_execution", Err: err}
	}

	return nil
}

// History devolve as decisões da entidade em ordem cronológica. Chamável
// repetidamente sem efeitos colaterais.
func (r *decisionRepository) History(entityID string) ([]*domain.Decision, error) {
	query, args, err := squirrel.
		Select("d.id, d.entity_id, d.entity_type, d.decided_at, d.triggered_rules, d.chosen_rule_id, d.chosen_action, d.rationale, d.risk, d.budget_at_decision").
		From(decisionsTable).
		Where(squirrel.Eq{"d.entity_id": entityID}).
		OrderBy("d.decided_at ASC, d.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	decisions := make([]*domain.Decision, 0)
	for rows.Next() {
		decision, err := r.scanDecision(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear decisão: %w", err)
		}
		decisions = append(decisions, decision)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return decisions, nil
}

// LatestByEntityID devolve a decisão mais recente da entidade, nil se não há histórico
func (r *decisionRepository) LatestByEntityID(entityID string) (*domain.Decision, error) {
	query, args, err := squirrel.
		Select("d.id, d.entity_id, d.entity_type, d.decided_at, d.triggered_rules, d.chosen_rule_id, d.chosen_action, d.rationale, d.risk, d.budget_at_decision").
		From(decisionsTable).
		Where(squirrel.Eq{"d.entity_id": entityID}).
		OrderBy("d.decided_at DESC, d.id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	decision, err := r.scanDecision(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear decisão: %w", err)
	}

	return decision, nil
}

func (r *decisionRepository) scanDecision(rows *sql.Rows) (*domain.Decision, error) {
	decision := &domain.Decision{}
	var (
		entityType string
		decidedAt  time.Time
		rules      pq.StringArray
		actionJSON []byte
		riskJSON   []byte
	)

	err := rows.Scan(
		&decision.ID,
		&decision.EntityID,
		&entityType,
		&decidedAt,
		&rules,
		&decision.ChosenRuleID,
		&actionJSON,
		&decision.Rationale,
		&riskJSON,
		&decision.BudgetAtDecision,
	)
	if err != nil {
		return nil, err
	}

	decision.EntityType = domain.EntityType(entityType)
	decision.Timestamp = decidedAt
	decision.TriggeredRules = []string(rules)

	if actionJSON != nil {
		if err := json.Unmarshal(actionJSON, &decision.ChosenAction); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de chosen_action: %w", err)
		}
	}

	if riskJSON != nil && string(riskJSON) != "null" {
		risk := &domain.RiskScore{}
		if err := json.Unmarshal(riskJSON, risk); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de risk: %w", err)
		}
		decision.Risk = risk
	}

	return decision, nil
}
