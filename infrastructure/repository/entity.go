package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-guardian/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

const (
	monitoredEntitiesTable = "monitored_entities me"
)

// MonitoredEntityRepository mantém o cadastro das entidades sob monitoramento
type MonitoredEntityRepository interface {
	ListEntities(statuses []domain.EntityStatus) ([]*domain.MonitoredEntity, error)
	GetByID(id string) (*domain.MonitoredEntity, error)
	SaveOrUpdate(entity *domain.MonitoredEntity) error
	UpdateStatus(id string, status domain.EntityStatus) error
	UpdateDailyBudget(id string, dailyBudget float64) error
}

type monitoredEntityRepository struct {
	conn *postgres.Connection
}

func NewMonitoredEntityRepository(conn *postgres.Connection) MonitoredEntityRepository {
	return &monitoredEntityRepository{
		conn: conn,
	}
}

func (r *monitoredEntityRepository) ListEntities(statuses []domain.EntityStatus) ([]*domain.MonitoredEntity, error) {
	builder := squirrel.
		Select("me.id, me.external_id, me.account_id, me.name, me.type, me.status, me.daily_budget, me.created_at, me.updated_at").
		From(monitoredEntitiesTable).
		OrderBy("me.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, status := range statuses {
			values[i] = string(status)
		}
		builder = builder.Where(squirrel.Eq{"me.status": values})
	}

	query, args, err := builder.ToSql()
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

	entities := make([]*domain.MonitoredEntity, 0)
	for rows.Next() {
		entity, err := r.scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entidade monitorada: %w", err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entities, nil
}

func (r *monitoredEntityRepository) GetByID(id string) (*domain.MonitoredEntity, error) {
	query, args, err := squirrel.
		Select("me.id, me.external_id, me.account_id, me.name, me.type, me.status, me.daily_budget, me.created_at, me.updated_at").
		From(monitoredEntitiesTable).
		Where(squirrel.Eq{"me.id": id}).
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

	entity, err := r.scanEntity(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear entidade monitorada: %w", err)
	}

	return entity, nil
}

func (r *monitoredEntityRepository) SaveOrUpdate(entity *domain.MonitoredEntity) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monitored_entities").
		Columns("id", "external_id", "account_id", "name", "type", "status", "daily_budget").
		Values(
			entity.ID,
			entity.ExternalID,
			entity.AccountID,
			entity.Name,
			string(entity.Type),
			string(entity.Status),
			entity.DailyBudget,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				external_id = EXCLUDED.external_id,
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				type = EXCLUDED.type,
				status = EXCLUDED.status,
				daily_budget = EXCLUDED.daily_budget,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monitoredEntityRepository) UpdateStatus(id string, status domain.EntityStatus) error {
	query, args, err := squirrel.StatementBuilder.
		Update("monitored_entities").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monitoredEntityRepository) UpdateDailyBudget(id string, dailyBudget float64) error {
	query, args, err := squirrel.StatementBuilder.
		Update("monitored_entities").
		Set("daily_budget", dailyBudget).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monitoredEntityRepository) scanEntity(rows *sql.Rows) (*domain.MonitoredEntity, error) {
	entity := &domain.MonitoredEntity{}
	var entityType, status string

	err := rows.Scan(
		&entity.ID,
		&entity.ExternalID,
		&entity.AccountID,
		&entity.Name,
		&entityType,
		&status,
		&entity.DailyBudget,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entity.Type = domain.EntityType(entityType)
	entity.Status = domain.EntityStatus(status)

	return entity, nil
}
