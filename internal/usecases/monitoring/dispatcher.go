package monitoring

import (
	"fmt"

	"github.com/vfg2006/campaign-guardian/internal/domain"
)

// Dispatch traduz a ação escolhida da decisão em um comando abstrato para o
// colaborador de execução. Mapeamento puro e idempotente: a mesma decisão
// sempre produz o mesmo comando, e nenhuma chamada de rede acontece aqui.
func Dispatch(decision *domain.Decision) domain.Command {
	if decision == nil {
		return domain.Command{Type: domain.CommandNoOp}
	}

	switch decision.ChosenAction.Type {
	case domain.ActionAlert:
		severity := domain.SeverityLow
		if decision.Risk != nil {
			severity = domain.Severity(decision.Risk.Level)
		}

		return domain.Command{
			Type:     domain.CommandAlert,
			EntityID: decision.EntityID,
			Severity: severity,
			Message:  decision.Rationale,
		}

	case domain.ActionAdjustBudget:
		return domain.Command{
			Type:           domain.CommandAdjustBudget,
			EntityID:       decision.EntityID,
			BudgetDeltaPct: decision.ChosenAction.BudgetDeltaPct,
		}

	case domain.ActionPause:
		return domain.Command{
			Type:     domain.CommandPause,
			EntityID: decision.EntityID,
		}

	case domain.ActionRequireApproval:
		return domain.Command{
			Type:            domain.CommandRequireApproval,
			EntityID:        decision.EntityID,
			RequestedAmount: decision.BudgetAtDecision,
			Message:         fmt.Sprintf("Aprovação manual necessária: %s", decision.Rationale),
		}

	default:
		return domain.Command{Type: domain.CommandNoOp, EntityID: decision.EntityID}
	}
}
