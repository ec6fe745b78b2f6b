package repository

import (
	"sync"

	"github.com/vfg2006/campaign-guardian/internal/domain"
)

// InMemoryDecisionRepository é a implementação em memória do gravador de
// decisões: útil para rodar o motor sem banco e para testes. O append por
// entidade é serializado pelo mutex; leituras devolvem cópias das fatias.
type InMemoryDecisionRepository struct {
	mu         sync.RWMutex
	byEntity   map[string][]*domain.Decision
	executions []*domain.CommandExecution
}

func NewInMemoryDecisionRepository() *InMemoryDecisionRepository {
	return &InMemoryDecisionRepository{
		byEntity: make(map[string][]*domain.Decision),
	}
}

func (r *InMemoryDecisionRepository) Save(decision *domain.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byEntity[decision.EntityID] = append(r.byEntity[decision.EntityID], decision)
	return nil
}

func (r *InMemoryDecisionRepository) SaveExecution(execution *domain.CommandExecution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.executions = append(r.executions, execution)
	return nil
}

// History devolve as decisões na ordem de inserção, que é a ordem cronológica
// garantida pela disciplina de escritor único por entidade
func (r *InMemoryDecisionRepository) History(entityID string) ([]*domain.Decision, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byEntity[entityID]
	out := make([]*domain.Decision, len(history))
	copy(out, history)

	return out, nil
}

func (r *InMemoryDecisionRepository) LatestByEntityID(entityID string) (*domain.Decision, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byEntity[entityID]
	if len(history) == 0 {
		return nil, nil
	}

	return history[len(history)-1], nil
}

// Executions devolve os desfechos de execução registrados
func (r *InMemoryDecisionRepository) Executions() []*domain.CommandExecution {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.CommandExecution, len(r.executions))
	copy(out, r.executions)

	return out
}
